package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// WriteConfigOrdered writes the configuration as TOML with deterministic
// ordering: fields in definition order, tables sorted by name.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := MarshalTOML(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalTOML encodes cfg the way WriteConfigOrdered stores it.
func MarshalTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// sortTOMLSections reorders the tables of a TOML document by name. Keys
// before the first table stay on top.
func sortTOMLSections(content string) string {
	type table struct {
		name  string
		lines []string
	}

	var head []string
	var tables []table
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, table{name: m[1]})
		}
		if len(tables) == 0 {
			head = append(head, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].name < tables[j].name
	})

	chunks := make([]string, 0, len(tables)+1)
	if h := strings.TrimSpace(strings.Join(head, "\n")); h != "" {
		chunks = append(chunks, h)
	}
	for _, t := range tables {
		chunks = append(chunks, strings.TrimRight(strings.Join(t.lines, "\n"), "\n "))
	}

	out := strings.Join(chunks, "\n\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
