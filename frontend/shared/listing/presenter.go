package listing

import "context"

// State is what the table body should render. Exactly one state applies at
// a time; precedence is loading, then error, then empty, then rows.
type State int

const (
	StateLoading State = iota
	StateError
	StateEmpty
	StatePopulated
)

// Presenter drives one list screen: it owns the items collection, the
// loading flag, and the error slot. A fresh presenter starts in the loading
// state and is expected to Load once on mount.
//
// Overlapping loads are not guarded: there is no cancellation and no
// sequence counter, so the last response to resolve wins. That matches the
// backing screens and is intentional.
type Presenter[T any] struct {
	fetch func(context.Context) ([]T, error)

	Items   []T
	Loading bool
	Err     string
}

// New builds a presenter around a fetch function.
func New[T any](fetch func(context.Context) ([]T, error)) *Presenter[T] {
	return &Presenter[T]{fetch: fetch, Loading: true}
}

// Load replaces the items collection from a fresh fetch. The error slot is
// cleared up front, a failure fills it, and the loading flag is always
// cleared last regardless of outcome. Loads replace wholesale, never merge.
func (p *Presenter[T]) Load(ctx context.Context) {
	p.Loading = true
	p.Err = ""
	items, err := p.fetch(ctx)
	if err != nil {
		p.Err = err.Error()
	} else {
		p.Items = items
	}
	p.Loading = false
}

// Delete runs an already-confirmed row delete and then reloads,
// unconditionally: the displayed collection is only trusted after a round
// trip, never adjusted locally. The delete error, if any, is returned for
// the caller to surface.
func (p *Presenter[T]) Delete(ctx context.Context, del func(context.Context) error) error {
	err := del(ctx)
	p.Load(ctx)
	return err
}

// State resolves the single render state by precedence.
func (p *Presenter[T]) State() State {
	switch {
	case p.Loading:
		return StateLoading
	case p.Err != "":
		return StateError
	case len(p.Items) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}
