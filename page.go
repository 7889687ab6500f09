package gopages

import (
	"fmt"

	"github.com/samber/lo"
)

// Link references a page by its number and output path. Links are plain
// values; pages never point at each other.
type Link struct {
	Number int    `json:"number"`
	Path   string `json:"path"`
}

// Range is a half-open interval [Start, End) of indices into the source
// collection.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Page is one paginated unit of a pass.
//
// IMPORTANT:
// Range is only meaningful against the ordering the source had when the
// pass ran. Reordering the source afterwards makes it stale.
type Page struct {
	First Link  `json:"first"`
	Prev  *Link `json:"prev,omitempty"`
	Curr  Link  `json:"curr"`
	Next  *Link `json:"next,omitempty"`
	Last  Link  `json:"last"`

	Range Range `json:"range"`

	PageCount    int `json:"pageCount"`
	PostCount    int `json:"postCount"`
	PostsPerPage int `json:"postsPerPage"`
}

// IsFirst returns true if the page has no previous page.
func (p Page) IsFirst() bool {
	return p.Prev == nil
}

// IsLast returns true if the page has no next page.
func (p Page) IsLast() bool {
	return p.Next == nil
}

// Compute splits postCount items into pages of factor items and links them
// together. Every path is obtained through a cache local to this call, so
// router is invoked at most once per page number.
//
// Returns nil without calling router when postCount is 0.
func Compute(postCount int, factor int, router Router) ([]Page, error) {
	if err := ValidateFactor(factor); err != nil {
		return nil, fmt.Errorf("cannot compute pages: %w", err)
	}
	if router == nil {
		return nil, fmt.Errorf("cannot compute pages: %w", ErrNilRouter)
	}

	pageCount := PageCount(postCount, factor)
	if pageCount == 0 {
		return nil, nil
	}

	lastIndex := pageCount - 1
	routes := newRouteCache(router)

	first := routes.link(FirstPage)
	last := routes.link(lastIndex)

	pages := make([]Page, 0, pageCount)
	for current := 0; current < pageCount; current++ {
		var prev, next *Link
		if current != 0 {
			prev = lo.ToPtr(routes.link(current - 1))
		}
		if current != lastIndex {
			next = lo.ToPtr(routes.link(current + 1))
		}

		pages = append(pages, Page{
			First: first,
			Prev:  prev,
			Curr:  routes.link(current),
			Next:  next,
			Last:  last,

			Range: Range{
				Start: current * factor,
				End:   min(postCount, (current+1)*factor),
			},

			PageCount:    pageCount,
			PostCount:    postCount,
			PostsPerPage: factor,
		})
	}

	return pages, nil
}
