package gopages

import "github.com/samber/lo"

// Window returns the items of a page. items must be in the same order as
// the source the page was computed from; bounds outside items are clamped.
func Window[T any](items []T, r Range) []T {
	return lo.Slice(items, r.Start, r.End)
}

// PageItems returns the items covered by page.
func PageItems[T any](items []T, page Page) []T {
	return Window(items, page.Range)
}
