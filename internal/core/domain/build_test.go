package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewestBuild(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	builds := []Build{
		{ID: "b2", UploadedDate: t2},
		{ID: "b1", UploadedDate: t1},
		{ID: "b3", UploadedDate: t3},
	}

	newest := NewestBuild(builds)

	require.NotNil(t, newest)
	assert.Equal(t, "b3", newest.ID)
}

func TestNewestBuild_Empty(t *testing.T) {
	assert.Nil(t, NewestBuild(nil))
	assert.Nil(t, NewestBuild([]Build{}))
}
