package layout

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bnema/remotenav/internal/logging"
)

//go:embed demo.yaml
var demoYAML []byte

// maxParallelLoads bounds the number of files parsed at once by LoadDir.
const maxParallelLoads = 4

// Demo returns the built-in demo layout: a top bar, a poster grid with a hole
// and a bottom bar.
func Demo() *Layout {
	l, err := Parse(demoYAML, "yaml")
	if err != nil {
		panic("demo.yaml: " + err.Error())
	}
	l.Path = "demo.yaml"
	return l
}

// Parse decodes data in format ("toml", "yaml", "yml" or "json") and builds
// the layout.
func Parse(data []byte, format string) (*Layout, error) {
	var f File
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&f)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidLayout, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return Build(f)
}

// Load reads and parses a layout file. The format is taken from the
// extension; a layout without a name is named after the file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	l.Path = path
	return l, nil
}

func isLayoutFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadDir loads every layout file in dir concurrently and returns them
// sorted by name. The first error cancels the remaining loads.
func LoadDir(ctx context.Context, dir string) ([]*Layout, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isLayoutFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	layouts := make([]*Layout, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := Load(path)
			if err != nil {
				return err
			}
			layouts[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Name < layouts[j].Name })
	logging.FromContext(ctx).Debug().Str("dir", dir).Int("layouts", len(layouts)).Msg("layouts loaded")
	return layouts, nil
}
