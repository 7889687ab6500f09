// Package gopages splits an ordered collection into fixed-size pages and
// emits one output record per page, for static site and content-build
// pipelines that generate "page 1 of N" index pages.
//
// Overview
//
// A pass takes the number of items in a source, a page size (factor) and a
// Router mapping page numbers to output paths. For every page it computes:
//   - First/Last: links to the first and last page, equal on every page.
//   - Prev/Next: links to the neighbouring pages, nil at the boundaries.
//   - Curr: the page's own link; the emitted Output lives at Curr.Path.
//   - Range: the half-open index interval of source items on the page.
//
// Pages are numbered from FirstPage (0). Within a pass the Router is called
// at most once per page number, so every link to the same page carries the
// same path.
//
// Key concepts
//   - Paginator: a pipeline step bound to a target dependency name, a factor
//     and a Router. Configuration is validated when it is created.
//   - Source, Destination, Dependencies: the host pipeline collaborators.
//     Collection, Outputs and Deps are in-memory implementations.
//   - QuerySource and Range.Apply: count a gorm query and load a page of it
//     with OFFSET/LIMIT.
//   - Config: the YAML form of a Paginator, used by cmd/gopages.
//
// Ranges are only valid against the ordering of the source at the time of
// the pass. Sorting or filtering the source is up to the caller.
package gopages
