package gopages

import "fmt"

// Output is a writable output record produced for one page. Path is the
// page's own route and Page carries its navigation metadata.
type Output struct {
	Path string `json:"path"`
	Page Page   `json:"page"`
}

// Emit attaches one Output per page to dst, in the order of pages. It stops
// at the first Attach failure and returns it wrapped; outputs attached
// before the failure stay in dst.
func Emit(dst Destination, pages []Page) error {
	for _, page := range pages {
		out := &Output{
			Path: page.Curr.Path,
			Page: page,
		}

		if err := dst.Attach(out); err != nil {
			return fmt.Errorf("cannot attach page %d at '%s': %w", page.Curr.Number, out.Path, err)
		}
	}

	return nil
}

// Pages runs a full pass: computes the pages of postCount items and emits
// them into dst. Nothing is attached when postCount is 0.
func Pages(dst Destination, postCount int, factor int, router Router) error {
	pages, err := Compute(postCount, factor, router)
	if err != nil {
		return err
	}

	return Emit(dst, pages)
}
