package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmpl/league-api/utils"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"The Duke of Kent", "the-duke-of-kent"},
		{"  Q's Pool Hall  ", "q-s-pool-hall"},
		{"Caffe 83, Carlton", "caffe-83-carlton"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, utils.Slugify(tc.title), "title %q", tc.title)
	}
}

func TestParseID(t *testing.T) {
	id, ok := utils.ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = utils.ParseID("not-a-number")
	assert.False(t, ok)

	_, ok = utils.ParseID("-1")
	assert.False(t, ok)
}
