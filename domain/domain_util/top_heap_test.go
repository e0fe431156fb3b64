package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopTags_DescendingByCount(t *testing.T) {
	counts := map[string]int{
		"#ootd":     12,
		"#vintage":  3,
		"#workwear": 7,
		"#boho":     1,
	}

	top := TopTags(counts, 3)

	require.Len(t, top, 3)
	assert.Equal(t, TagCount{Tag: "#ootd", Count: 12}, top[0])
	assert.Equal(t, TagCount{Tag: "#workwear", Count: 7}, top[1])
	assert.Equal(t, TagCount{Tag: "#vintage", Count: 3}, top[2])
}

func TestTopTags_TieBreakByTagName(t *testing.T) {
	counts := map[string]int{
		"#b": 5,
		"#a": 5,
		"#c": 5,
	}

	top := TopTags(counts, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "#a", top[0].Tag)
	assert.Equal(t, "#b", top[1].Tag)
	assert.Equal(t, "#c", top[2].Tag)
}

func TestTopTags_FewerTagsThanN(t *testing.T) {
	counts := map[string]int{"#only": 2}

	top := TopTags(counts, 10)

	require.Len(t, top, 1)
	assert.Equal(t, "#only", top[0].Tag)
}

func TestTopTags_EmptyAndNonPositiveN(t *testing.T) {
	assert.Empty(t, TopTags(map[string]int{}, 5))
	assert.Empty(t, TopTags(map[string]int{"#a": 1}, 0))
	assert.Empty(t, TopTags(map[string]int{"#a": 1}, -1))
}
