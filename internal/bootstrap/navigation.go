// Package bootstrap assembles the navigation stack from configuration: key
// mapping, throttle, focus manager, back guard and layout.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/infrastructure/config"
	"github.com/bnema/remotenav/internal/infrastructure/layout"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/history"
	"github.com/bnema/remotenav/internal/ui/input"
)

// Navigation is the wired input pipeline of one screen. Like the focus
// manager it belongs to the goroutine running the host loop.
type Navigation struct {
	Layout   *layout.Layout
	Manager  *focus.Manager
	Throttle *input.KeyThrottle
	Keyboard *input.KeyboardHandler
	Platform input.Platform
	History  port.History
	Guard    *history.BackGuard

	poster port.Poster
	ctx    context.Context
}

// ResolvePlatform builds the key mapper described by cfg: the named platform
// profile plus configured key overrides.
func ResolvePlatform(cfg config.InputConfig) (input.Platform, error) {
	platform, err := input.PlatformByName(cfg.Platform)
	if err != nil {
		return input.Platform{}, err
	}
	overrides, err := input.ParseKeyOverrides(cfg.KeyMap)
	if err != nil {
		return input.Platform{}, fmt.Errorf("input.key_map: %w", err)
	}
	platform = platform.WithOverrides(overrides)
	platform.DeferBackToHost = platform.DeferBackToHost || cfg.DeferBackToHost
	return platform, nil
}

// NewNavigation wires l into a new focus manager. hist may be nil when the
// host has no history stack; the back guard is then unavailable. Deferred
// work is posted to poster.
func NewNavigation(
	ctx context.Context,
	cfg *config.Config,
	l *layout.Layout,
	hist port.History,
	poster port.Poster,
) (*Navigation, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if l == nil {
		return nil, fmt.Errorf("create navigation: layout is nil")
	}

	platform, err := ResolvePlatform(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("create navigation: %w", err)
	}

	manager, err := focus.NewManager(l)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithManagerID(ctx, manager.ID())

	manager.SetRemap(platform.Remap)
	manager.SetHandleAllInputs(cfg.Input.HandleAllInputs)

	throttle := input.NewKeyThrottle(cfg.Input.ThrottleDelay())
	n := &Navigation{
		Layout:   l,
		Manager:  manager,
		Throttle: throttle,
		Keyboard: input.NewKeyboardHandler(ctx, manager, platform, throttle),
		Platform: platform,
		History:  hist,
		poster:   poster,
		ctx:      ctx,
	}

	if hist != nil && poster != nil {
		n.Guard, err = history.NewBackGuard(ctx, manager.ID(), hist, poster)
		if err != nil {
			return nil, fmt.Errorf("create navigation: %w", err)
		}
		if cfg.History.BackGuard {
			n.Guard.Block(n.dispatchBack)
		}
	}

	if err := l.Apply(ctx, manager); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("layout", l.Name).
		Str("platform", platform.Name).
		Dur("throttle", throttle.Delay()).
		Bool("back_guard", n.Guard != nil && n.Guard.Active()).
		Str("focus", manager.Describe()).
		Msg("navigation ready")
	return n, nil
}

// Context returns the context carrying the manager-scoped logger.
func (n *Navigation) Context() context.Context {
	return n.ctx
}

func (n *Navigation) dispatchBack(ctx context.Context) bool {
	return n.Manager.Dispatch(ctx, entity.ActionBack, nil)
}

// PressKey feeds a key code through the keyboard handler. A back key left to
// the host, or unhandled while no guard is armed, runs the host default: one
// step back in history. With an armed guard that step would come back as a
// second back action, so a back key the focus already saw skips it.
func (n *Navigation) PressKey(ev entity.KeyEvent) bool {
	if n.Keyboard.HandleKey(ev) {
		return true
	}
	if n.History == nil {
		return false
	}
	action, ok := n.Platform.MapKeyCode(ev.Code)
	if !ok || action != entity.ActionBack {
		return false
	}
	guarded := n.Guard != nil && n.Guard.Active()
	if n.Platform.ShouldDeferBackToHost() || !guarded {
		logging.FromContext(n.ctx).Debug().Int("keycode", ev.Code).Msg("host history back")
		n.History.Back(1)
	}
	return false
}

// ApplyConfig installs the input settings of cfg. On error the previous
// settings stay in place.
func (n *Navigation) ApplyConfig(cfg *config.Config) error {
	platform, err := ResolvePlatform(cfg.Input)
	if err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	n.Platform = platform
	n.Throttle.SetDelay(cfg.Input.ThrottleDelay())
	n.Keyboard.SetMapper(platform)
	n.Manager.SetRemap(platform.Remap)
	n.Manager.SetHandleAllInputs(cfg.Input.HandleAllInputs)

	if n.Guard != nil {
		if cfg.History.BackGuard {
			n.Guard.Block(n.dispatchBack)
		} else {
			n.Guard.Restore()
		}
	}

	logging.FromContext(n.ctx).Info().
		Str("platform", platform.Name).
		Dur("throttle", n.Throttle.Delay()).
		Bool("back_guard", cfg.History.BackGuard).
		Msg("input configuration applied")
	return nil
}

// WatchConfig applies every configuration change reported by m. Changes
// arrive on the watcher goroutine and are posted to the host loop.
func (n *Navigation) WatchConfig(m *config.Manager) {
	m.OnConfigChange(func(cfg *config.Config) {
		n.poster.Post(func() {
			if err := n.ApplyConfig(cfg); err != nil {
				logging.FromContext(n.ctx).Warn().Err(err).Msg("config change ignored")
			}
		})
	})
}

// Close disarms the back guard.
func (n *Navigation) Close() {
	if n.Guard != nil {
		n.Guard.Restore()
	}
}
