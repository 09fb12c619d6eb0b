package port

// MarkerKind distinguishes the two guard entries pushed on the history stack.
type MarkerKind string

const (
	MarkerBlock MarkerKind = "block"
	MarkerStub  MarkerKind = "stub"
)

// HistoryMarker is the state stamped into a pushed history entry. Owner
// carries the identity of the guard that pushed it.
type HistoryMarker struct {
	Kind  MarkerKind
	Owner string
}

// History is the host navigation-history stack. Browser targets back it with
// pushState/popstate; other targets can supply a native or no-op equivalent.
type History interface {
	// Push adds a marker entry on top of the stack.
	Push(marker HistoryMarker)
	// Back moves the current position back by steps entries.
	Back(steps int)
	// Current returns the marker at the current position. The second return
	// is false when the entry carries no marker.
	Current() (HistoryMarker, bool)
	// OnPositionChanged registers fn to run whenever the position changes
	// because of an external back/forward signal. The returned func removes it.
	OnPositionChanged(fn func()) (unsubscribe func())
}
