package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestParsePage(t *testing.T) {
	t.Run("empty parameters give defaults", func(t *testing.T) {
		page, err := ParsePage("", "")
		require.NoError(t, err)
		require.Nil(t, page.Before)
		require.Equal(t, DefaultLimit, page.limit())
	})

	t.Run("valid cursor and limit", func(t *testing.T) {
		page, err := ParsePage("2026-08-30T12:00:00Z", "25")
		require.NoError(t, err)
		require.NotNil(t, page.Before)
		require.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), page.Before.UTC())
		require.Equal(t, 25, page.limit())
	})

	t.Run("malformed cursor rejected before any query", func(t *testing.T) {
		_, err := ParsePage("yesterday", "")
		require.Error(t, err)
		require.Equal(t, KindInvalidArgument, KindOf(err))
	})

	t.Run("non-integer limit rejected", func(t *testing.T) {
		_, err := ParsePage("", "ten")
		require.Error(t, err)
		require.Equal(t, KindInvalidArgument, KindOf(err))
	})

	t.Run("non-positive limit rejected", func(t *testing.T) {
		for _, raw := range []string{"0", "-5"} {
			_, err := ParsePage("", raw)
			require.Error(t, err, "limit %s", raw)
			require.Equal(t, KindInvalidArgument, KindOf(err))
		}
	})

	t.Run("limit capped", func(t *testing.T) {
		page, err := ParsePage("", "5000")
		require.NoError(t, err)
		require.Equal(t, MaxLimit, page.limit())
	})
}

// scopedSQL builds the feed query against a dry-run dialector so the
// generated SQL can be inspected without a database.
func scopedSQL(t *testing.T, page Page) (string, []interface{}) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var rows []map[string]interface{}
	stmt := db.Table("posts").Scopes(page.scope("posts")).Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestPageScope(t *testing.T) {
	t.Run("cursor page", func(t *testing.T) {
		before := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		sql, vars := scopedSQL(t, Page{Before: &before, Limit: 5})

		require.Contains(t, sql, "posts.created_at < ?", "cursor rows must be strictly older")
		require.NotContains(t, sql, "<=")
		require.Contains(t, sql, "ORDER BY posts.id DESC")
		require.NotContains(t, sql, "ASC")
		require.Contains(t, vars, before)
		require.Contains(t, vars, 5)
	})

	t.Run("first page has no cursor filter", func(t *testing.T) {
		sql, vars := scopedSQL(t, Page{})

		require.NotContains(t, sql, "created_at")
		require.Contains(t, sql, "ORDER BY posts.id DESC")
		require.Contains(t, vars, DefaultLimit)
	})

	t.Run("oversized limit is capped in the query", func(t *testing.T) {
		_, vars := scopedSQL(t, Page{Limit: 5000})

		require.Contains(t, vars, MaxLimit)
		require.NotContains(t, vars, 5000)
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	require.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "u1", "1.5"} {
		_, err := ParseID(raw)
		require.Error(t, err, "id %q", raw)
		require.Equal(t, KindInvalidArgument, KindOf(err))
	}
}
