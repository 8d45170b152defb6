package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveGroupUpdate(t *testing.T) {
	t.Run("omitted field leaves group untouched", func(t *testing.T) {
		group, changed, err := resolveGroupUpdate(nil)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Nil(t, group)
	})

	t.Run("empty string clears the group", func(t *testing.T) {
		group, changed, err := resolveGroupUpdate(strPtr(""))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, group)
	})

	t.Run("uuid moves to that group", func(t *testing.T) {
		id := uuid.New()
		group, changed, err := resolveGroupUpdate(strPtr(id.String()))
		require.NoError(t, err)
		assert.True(t, changed)
		require.NotNil(t, group)
		assert.Equal(t, id, *group)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, _, err := resolveGroupUpdate(strPtr("not-a-uuid"))
		assert.Error(t, err)
	})
}
