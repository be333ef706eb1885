package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSort(t *testing.T) {
	assert.Equal(t, []SortField{{Field: "price", Desc: true}, {Field: "name"}}, ParseSort("-price, name"))
	assert.Equal(t, []SortField{{Field: "name"}}, ParseSort("+name,,-"))
	assert.Empty(t, ParseSort(""))
}

func TestParseInclude(t *testing.T) {
	assert.Equal(t, []string{"genres", "platforms"}, ParseInclude("genres, platforms,"))
	assert.Empty(t, ParseInclude(" "))
}

func TestCriteriaBuildersDoNotAlias(t *testing.T) {
	base := QueryCriteria{}.Where("name", OpLike, "a")
	left := base.Where("price", OpGt, 10)
	right := base.Where("price", OpLt, 5)

	assert.Len(t, base.Conditions, 1)
	assert.Equal(t, OpGt, left.Conditions[1].Op)
	assert.Equal(t, OpLt, right.Conditions[1].Op)

	withInclude := base.With("genres").OrderBy(SortField{Field: "name"})
	assert.Equal(t, []string{"genres"}, withInclude.Include)
	assert.Empty(t, base.Include)
}
