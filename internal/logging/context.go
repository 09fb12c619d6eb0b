package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. Components built without
// one, such as a focus manager in a unit test, get a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through ctx with the emitting
// component, e.g. "back-guard".
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithManagerID tags entries with the focus manager identity. The same
// identity is stamped into the back guard history markers, so a trapped back
// press can be traced to its manager.
func WithManagerID(ctx context.Context, managerID string) context.Context {
	return withField(ctx, "manager_id", managerID)
}

func withField(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return child.WithContext(ctx)
}
