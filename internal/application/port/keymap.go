package port

import "github.com/bnema/remotenav/internal/domain/entity"

// KeyMapper translates host key codes into abstract actions.
type KeyMapper interface {
	// MapKeyCode returns the action bound to code, if any.
	MapKeyCode(code int) (entity.Action, bool)
	// ShouldDeferBackToHost reports that back key events must be left to the
	// host history because the platform cannot reliably override them.
	ShouldDeferBackToHost() bool
}
