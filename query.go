package gopages

import (
	"fmt"

	"gorm.io/gorm"
)

// QuerySource is a Source backed by a gorm query. The rows are counted once,
// when the source is created.
type QuerySource struct {
	count int
}

// NewQuerySource counts the rows matched by db.
//
// IMPORTANT:
// db must carry the same filters and ordering that will later be used to
// load the pages, otherwise page ranges will not line up with the rows.
//
// Usage:
//
//	src, err := gopages.NewQuerySource(db.Model(&Post{}).Where("published = ?", true))
func NewQuerySource(db *gorm.DB) (*QuerySource, error) {
	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, fmt.Errorf("cannot count source rows: %w", err)
	}

	return &QuerySource{
		count: int(count),
	}, nil
}

// Len - implements Source.
func (s *QuerySource) Len() int {
	if s == nil {
		return 0
	}

	return s.count
}

var _ Source = (*QuerySource)(nil)

// Apply applies the range to a gorm query as OFFSET/LIMIT. The query must
// already be ordered the way the source was when the range was computed.
//
// Usage:
//
//	var posts []Post
//	err := page.Range.Apply(db.Model(&Post{}).Order("id ASC")).Find(&posts).Error
func (r Range) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(r.Start).Limit(r.Len())
}

// Apply applies the page's range to a gorm query. See Range.Apply.
func (p Page) Apply(db *gorm.DB) *gorm.DB {
	return p.Range.Apply(db)
}
