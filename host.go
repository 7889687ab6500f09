package gopages

import (
	"slices"

	"github.com/samber/lo"
)

// Source is an ordered collection of items. Pagination only reads its
// length.
type Source interface {
	Len() int
}

// Destination receives the outputs of a pass. Attach must append; it is
// never asked to remove or reorder.
type Destination interface {
	Attach(out *Output) error
}

// Dependencies looks sources up by name. It is implemented by the host
// pipeline.
type Dependencies interface {
	Dependency(name string) (Source, bool)
	Names() []string
}

// Collection adapts a plain slice to Source.
type Collection[T any] []T

// Len - implements Source.
func (c Collection[T]) Len() int {
	return len(c)
}

// Outputs is an in-memory Destination.
type Outputs []*Output

// Attach - implements Destination.
func (o *Outputs) Attach(out *Output) error {
	*o = append(*o, out)

	return nil
}

// Paths returns the output paths in attach order.
func (o Outputs) Paths() []string {
	return lo.Map(o, func(out *Output, _ int) string {
		return out.Path
	})
}

// Deps is a map-backed Dependencies.
type Deps map[string]Source

// Dependency - implements Dependencies.
func (d Deps) Dependency(name string) (Source, bool) {
	src, ok := d[name]
	if !ok || src == nil {
		return nil, false
	}

	return src, true
}

// Names - implements Dependencies. Names are sorted.
func (d Deps) Names() []string {
	names := lo.Keys(d)
	slices.Sort(names)

	return names
}

var (
	_ Source       = Collection[any](nil)
	_ Destination  = (*Outputs)(nil)
	_ Dependencies = Deps(nil)
)
