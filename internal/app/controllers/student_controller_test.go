package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompareQuery(t *testing.T) {
	ids, ok := parseCompareQuery("", "1", "2")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, ids)

	ids, ok = parseCompareQuery("3,4,5", "", "")
	require.True(t, ok)
	assert.Equal(t, []int64{3, 4, 5}, ids)

	// The ids parameter wins when both forms are present
	ids, ok = parseCompareQuery("7,8", "1", "2")
	require.True(t, ok)
	assert.Equal(t, []int64{7, 8}, ids)

	_, ok = parseCompareQuery("", "1", "")
	assert.False(t, ok)

	_, ok = parseCompareQuery("", "", "")
	assert.False(t, ok)

	_, ok = parseCompareQuery("", "1", "abc")
	assert.False(t, ok)
}

func TestParseCollegeIDs(t *testing.T) {
	ids, ok := parseCollegeIDs("1, 2")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, ids)

	// Duplicates collapse; a single distinct id is not a comparison
	_, ok = parseCollegeIDs("1,1")
	assert.False(t, ok)

	_, ok = parseCollegeIDs("1")
	assert.False(t, ok)

	_, ok = parseCollegeIDs("1,-2")
	assert.False(t, ok)
}
