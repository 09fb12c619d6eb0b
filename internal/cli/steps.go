// Package cli holds helpers shared by the CLI commands.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/ui/focus"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 3

// ErrInvalidStep is returned for a step that is neither an action nor a delay.
var ErrInvalidStep = errors.New("invalid step")

// ParseSteps converts command-line steps into an injection sequence.
//
// A step is an action name ("up", "select"), an action repeated with a
// count ("right*3"), a delay in milliseconds ("500", "-10") or a Go duration
// ("1.5s"). When gap is positive it is inserted between two consecutive
// actions that have no explicit delay between them.
func ParseSteps(args []string, gap time.Duration) ([]focus.Step, error) {
	var steps []focus.Step
	lastWasAction := false

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if d, ok := parseDelay(arg); ok {
			steps = append(steps, focus.Pause(d))
			lastWasAction = false
			continue
		}

		name, count, err := splitRepeat(arg)
		if err != nil {
			return nil, err
		}
		action, err := entity.ParseAction(name)
		if err != nil {
			if suggestion := SuggestAction(name); suggestion != "" {
				return nil, fmt.Errorf("%w %q: did you mean %q?", ErrInvalidStep, arg, suggestion)
			}
			return nil, fmt.Errorf("%w %q", ErrInvalidStep, arg)
		}

		for range count {
			if lastWasAction && gap > 0 {
				steps = append(steps, focus.Pause(gap))
			}
			steps = append(steps, focus.Press(action))
			lastWasAction = true
		}
	}
	return steps, nil
}

func parseDelay(arg string) (time.Duration, bool) {
	if ms, err := strconv.Atoi(arg); err == nil {
		return time.Duration(ms) * time.Millisecond, true
	}
	if d, err := time.ParseDuration(arg); err == nil {
		return d, true
	}
	return 0, false
}

func splitRepeat(arg string) (string, int, error) {
	name, rawCount, found := strings.Cut(arg, "*")
	if !found {
		return arg, 1, nil
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil || count < 1 {
		return "", 0, fmt.Errorf("%w %q: repeat count must be a positive integer", ErrInvalidStep, arg)
	}
	return name, count, nil
}

// SuggestAction returns the known action closest to name, or "" when none
// is close enough.
func SuggestAction(name string) string {
	name = strings.ToLower(name)
	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, action := range entity.KnownActions() {
		if d := levenshtein.ComputeDistance(name, string(action)); d < bestDistance {
			best, bestDistance = string(action), d
		}
	}
	return best
}
