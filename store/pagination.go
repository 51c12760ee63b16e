package store

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const (
	// DefaultLimit is the page size used when the caller does not ask
	// for one.
	DefaultLimit = 10
	// MaxLimit caps caller-supplied page sizes.
	MaxLimit = 100
)

// Page describes one backward page of a feed: everything strictly older
// than Before (when set), at most Limit rows. It is a pure description
// of query shape; nothing server-side is retained between pages, so a
// page stays stable while new rows are appended concurrently. Callers
// detect the end of a feed by receiving fewer rows than they asked for.
type Page struct {
	Before *time.Time
	Limit  int
}

// ParsePage builds a Page from raw query parameters. The cursor must be
// RFC 3339, the limit a positive integer; anything else is rejected
// before any query runs.
func ParsePage(beforeRaw, limitRaw string) (Page, error) {
	var p Page
	if beforeRaw != "" {
		t, err := time.Parse(time.RFC3339, beforeRaw)
		if err != nil {
			return Page{}, E(KindInvalidArgument, "store.ParsePage", fmt.Errorf("cursor %q: %w", beforeRaw, err))
		}
		p.Before = &t
	}
	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil || n <= 0 {
			return Page{}, E(KindInvalidArgument, "store.ParsePage", fmt.Errorf("limit %q is not a positive integer", limitRaw))
		}
		p.Limit = n
	}
	return p, nil
}

// ParseID parses a path or query identifier.
func ParseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, E(KindInvalidArgument, "store.ParseID", fmt.Errorf("id %q is not a valid identifier", raw))
	}
	return uint(n), nil
}

func (p Page) limit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// scope applies the cursor, ordering, and limit for the given table.
// Ties between rows created in the same instant are broken by id, which
// is monotonic and distinct, so consecutive pages never repeat a row.
func (p Page) scope(table string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if p.Before != nil {
			tx = tx.Where(table+".created_at < ?", *p.Before)
		}
		return tx.Order(table + ".id DESC").Limit(p.limit())
	}
}
