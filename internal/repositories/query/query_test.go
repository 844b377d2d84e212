package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	t.Run("single expression", func(t *testing.T) {
		filters, err := ParseFilters([]string{"title:eq:Maintenance"})
		require.NoError(t, err)
		require.Len(t, filters, 1)
		assert.Equal(t, Filter{Field: "title", Op: OpEq, Value: "Maintenance"}, filters[0])
	})

	t.Run("value may contain colons", func(t *testing.T) {
		filters, err := ParseFilters([]string{"issue_date:gte:2024-01-01T00:00"})
		require.NoError(t, err)
		require.Len(t, filters, 1)
		assert.Equal(t, "2024-01-01T00:00", filters[0].Value)
	})

	t.Run("like wraps the value", func(t *testing.T) {
		filters, err := ParseFilters([]string{"title:like:water"})
		require.NoError(t, err)
		require.Len(t, filters, 1)
		assert.Equal(t, "%water%", filters[0].Value)
	})

	t.Run("malformed expression", func(t *testing.T) {
		_, err := ParseFilters([]string{"title:eq"})
		assert.ErrorIs(t, err, ErrBadExpression)
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := ParseFilters([]string{"title:contains:x"})
		assert.ErrorIs(t, err, ErrBadExpression)
	})

	t.Run("empty expressions skipped", func(t *testing.T) {
		filters, err := ParseFilters([]string{"", "title:eq:x"})
		require.NoError(t, err)
		assert.Len(t, filters, 1)
	})
}

func TestParseSorts(t *testing.T) {
	sorts := ParseSorts("-created_at, title")
	require.Len(t, sorts, 2)
	assert.Equal(t, Sort{Field: "created_at", Desc: true}, sorts[0])
	assert.Equal(t, Sort{Field: "title", Desc: false}, sorts[1])

	assert.Empty(t, ParseSorts(""))
}

func TestApplyFiltersRejectsUnknownField(t *testing.T) {
	allowed := map[string]bool{"title": true}

	_, err := ApplyFilters(nil, []Filter{{Field: "password", Op: OpEq, Value: "x"}}, allowed)
	assert.ErrorIs(t, err, ErrBadExpression)

	_, err = ApplyFilters(nil, []Filter{{Field: "title", Op: Op("regex"), Value: "x"}}, allowed)
	assert.ErrorIs(t, err, ErrBadExpression)
}

func TestApplySortsRejectsUnknownField(t *testing.T) {
	allowed := map[string]bool{"created_at": true}

	_, err := ApplySorts(nil, []Sort{{Field: "secret"}}, allowed)
	assert.ErrorIs(t, err, ErrBadExpression)
}
