package port

// Poster defers work to the next turn of the host event loop.
type Poster interface {
	Post(fn func())
}

// PostFunc adapts a function to Poster.
type PostFunc func(fn func())

// Post implements Poster.
func (p PostFunc) Post(fn func()) {
	p(fn)
}
