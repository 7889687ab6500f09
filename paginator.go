package gopages

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Paginator is a pipeline step that paginates a named dependency into a
// destination. It is configured once and may handle any number of passes;
// each pass routes through its own cache.
type Paginator struct {
	target string
	factor int
	router Router
	logger zerolog.Logger
}

// NewPaginator validates the configuration and returns a Paginator.
//
// Usage:
//
//	p, err := gopages.NewPaginator("notes", 10, gopages.PatternRouter("notes/{n}/index.html"))
func NewPaginator(target string, factor int, router Router) (*Paginator, error) {
	if target == "" {
		return nil, fmt.Errorf("cannot create paginator: %w", ErrEmptyTarget)
	}
	if err := ValidateFactor(factor); err != nil {
		return nil, fmt.Errorf("cannot create paginator for '%s': %w", target, err)
	}
	if router == nil {
		return nil, fmt.Errorf("cannot create paginator for '%s': %w", target, ErrNilRouter)
	}

	return &Paginator{
		target: target,
		factor: factor,
		router: router,
		logger: zerolog.Nop(),
	}, nil
}

// WithLogger sets the logger used to report passes. The logger is tagged
// with the paginator's target.
func (p *Paginator) WithLogger(logger zerolog.Logger) *Paginator {
	if p == nil {
		p = new(Paginator)
	}

	p.logger = logger.With().Str("target", p.target).Logger()

	return p
}

// GetTarget returns the name of the paginated dependency.
func (p *Paginator) GetTarget() string {
	if p == nil {
		return ""
	}

	return p.target
}

// GetFactor returns the page size.
func (p *Paginator) GetFactor() int {
	if p == nil {
		return 0
	}

	return p.factor
}

// Handle runs one pass: resolves the target among deps and attaches one
// output per page to dst. When the target is missing nothing is attached
// and the error wraps ErrMissingDependency.
func (p *Paginator) Handle(deps Dependencies, dst Destination) error {
	if err := p.validate(); err != nil {
		return fmt.Errorf("cannot paginate: %w", err)
	}

	src, ok := deps.Dependency(p.target)
	if !ok {
		return fmt.Errorf(
			"cannot paginate: %w '%s'. closest: '%s'",
			ErrMissingDependency, p.target, closestName(p.target, deps.Names()),
		)
	}

	postCount := src.Len()
	p.logger.Debug().
		Int("post_count", postCount).
		Int("page_count", PageCount(postCount, p.factor)).
		Int("factor", p.factor).
		Msg("paginating")

	if err := Pages(dst, postCount, p.factor, p.router); err != nil {
		return fmt.Errorf("cannot paginate '%s': %w", p.target, err)
	}

	return nil
}

func (p *Paginator) validate() error {
	if p == nil {
		return fmt.Errorf("paginator is nil")
	}
	if p.target == "" {
		return ErrEmptyTarget
	}
	if p.router == nil {
		return ErrNilRouter
	}

	return ValidateFactor(p.factor)
}
