package input

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/remotenav/internal/domain/entity"
)

// Platform is the key mapping profile of one device family. It implements
// port.KeyMapper; Remap is installed on the focus manager.
type Platform struct {
	Name            string
	KeyMap          map[int]entity.Action
	Remap           map[entity.Action]entity.Action
	DeferBackToHost bool
}

var baseKeyMap = map[int]entity.Action{
	KeycodeLeft:        entity.ActionLeft,
	KeycodeUp:          entity.ActionUp,
	KeycodeRight:       entity.ActionRight,
	KeycodeDown:        entity.ActionDown,
	KeycodeEnter:       entity.ActionSelect,
	KeycodeBackspace:   entity.ActionBack,
	KeycodeEscape:      entity.ActionBack,
	KeycodePause:       entity.ActionPause,
	KeycodePlay:        entity.ActionPlay,
	KeycodeStop:        entity.ActionStop,
	KeycodeRewind:      entity.ActionRewind,
	KeycodeFastForward: entity.ActionFastForward,
	KeycodeMediaToggle: entity.ActionPlayPause,
	KeycodeInfo:        entity.ActionInfo,
}

func withKeys(extra map[int]entity.Action) map[int]entity.Action {
	out := maps.Clone(baseKeyMap)
	maps.Copy(out, extra)
	return out
}

var platforms = map[string]Platform{
	"generic": {
		Name:   "generic",
		KeyMap: withKeys(nil),
	},
	"tizen": {
		Name: "tizen",
		KeyMap: withKeys(map[int]entity.Action{
			KeycodeTizenBack:   entity.ActionBack,
			KeycodeTizenExit:   entity.ActionExit,
			KeycodeTizenToggle: entity.ActionPlayPause,
		}),
	},
	"webos": {
		Name: "webos",
		KeyMap: withKeys(map[int]entity.Action{
			KeycodeWebOSBack: entity.ActionBack,
		}),
		// webOS raises its own history navigation on back; the guard handles it.
		DeferBackToHost: true,
	},
	"xbox": {
		Name: "xbox",
		KeyMap: withKeys(map[int]entity.Action{
			KeycodeGamepadA:         entity.ActionButtonA,
			KeycodeGamepadB:         entity.ActionButtonB,
			KeycodeGamepadX:         entity.ActionButtonX,
			KeycodeGamepadY:         entity.ActionButtonY,
			KeycodeGamepadMenu:      entity.ActionMenu,
			KeycodeGamepadDPadUp:    entity.ActionUp,
			KeycodeGamepadDPadDown:  entity.ActionDown,
			KeycodeGamepadDPadLeft:  entity.ActionLeft,
			KeycodeGamepadDPadRight: entity.ActionRight,
		}),
		Remap: map[entity.Action]entity.Action{
			entity.ActionButtonA: entity.ActionSelect,
			entity.ActionButtonB: entity.ActionBack,
			entity.ActionButtonX: entity.ActionPlayPause,
			entity.ActionButtonY: entity.ActionInfo,
		},
	},
	"playstation": {
		Name: "playstation",
		KeyMap: withKeys(map[int]entity.Action{
			KeycodeGamepadA:         entity.ActionCross,
			KeycodeGamepadB:         entity.ActionCircle,
			KeycodeGamepadX:         entity.ActionSquare,
			KeycodeGamepadY:         entity.ActionTriangle,
			KeycodeGamepadMenu:      entity.ActionMenu,
			KeycodeGamepadDPadUp:    entity.ActionUp,
			KeycodeGamepadDPadDown:  entity.ActionDown,
			KeycodeGamepadDPadLeft:  entity.ActionLeft,
			KeycodeGamepadDPadRight: entity.ActionRight,
		}),
		Remap: map[entity.Action]entity.Action{
			entity.ActionCross:    entity.ActionSelect,
			entity.ActionCircle:   entity.ActionBack,
			entity.ActionSquare:   entity.ActionPlayPause,
			entity.ActionTriangle: entity.ActionInfo,
		},
	},
}

// PlatformNames lists the known platform profiles.
func PlatformNames() []string {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlatformByName returns a copy of a known platform profile.
func PlatformByName(name string) (Platform, error) {
	p, ok := platforms[name]
	if !ok {
		return Platform{}, fmt.Errorf("unknown platform %q (known: %v)", name, PlatformNames())
	}
	p.KeyMap = maps.Clone(p.KeyMap)
	p.Remap = maps.Clone(p.Remap)
	return p, nil
}

// WithOverrides returns a copy of p with extra key bindings applied on top.
func (p Platform) WithOverrides(overrides map[int]entity.Action) Platform {
	p.KeyMap = maps.Clone(p.KeyMap)
	if p.KeyMap == nil {
		p.KeyMap = make(map[int]entity.Action, len(overrides))
	}
	maps.Copy(p.KeyMap, overrides)
	return p
}

// MapKeyCode implements port.KeyMapper.
func (p Platform) MapKeyCode(code int) (entity.Action, bool) {
	action, ok := p.KeyMap[code]
	return action, ok
}

// ShouldDeferBackToHost implements port.KeyMapper.
func (p Platform) ShouldDeferBackToHost() bool {
	return p.DeferBackToHost
}

// ParseKeyOverrides converts configured bindings (key code or key name ->
// action name) into a key map usable with WithOverrides.
func ParseKeyOverrides(bindings map[string]string) (map[int]entity.Action, error) {
	out := make(map[int]entity.Action, len(bindings))
	for key, name := range bindings {
		code, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		action, err := entity.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[code] = action
	}
	return out, nil
}

func parseKey(key string) (int, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if code, ok := KeycodeByName(key); ok {
		return code, nil
	}
	code, err := strconv.Atoi(key)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("unknown key %q: expected a key code or one of the key names", key)
	}
	return code, nil
}
