package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	cfg, ok := Get("executive")
	require.True(t, ok)
	assert.Equal(t, "Executive", cfg.Name)
	assert.Equal(t, "#3D2E5C", cfg.Colors.Primary)
	assert.Equal(t, "#FFD700", cfg.Colors.Secondary)
	assert.Nil(t, cfg.Colors.Gradient)

	cfg, ok = Get("darkModern")
	require.True(t, ok)
	assert.Equal(t, "#0F172A", cfg.Colors.Background)
	require.NotNil(t, cfg.Colors.Gradient)
	assert.Equal(t, "#0EA5E9", cfg.Colors.Gradient.Start)

	_, ok = Get("doesNotExist")
	assert.False(t, ok)
}

func TestAllStableOrder(t *testing.T) {
	first := All()
	second := All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.GreaterOrEqual(t, len(first), 2)
}

func TestByCategory(t *testing.T) {
	professional := ByCategory("professional")
	require.NotEmpty(t, professional)
	for _, cfg := range professional {
		assert.Equal(t, "professional", cfg.Category)
	}
	assert.Empty(t, ByCategory("nonexistent"))
}

func TestFreeAndPremium(t *testing.T) {
	free := Free()
	premium := Premium()
	assert.Equal(t, len(All()), len(free)+len(premium))
	for _, cfg := range free {
		assert.False(t, cfg.IsPremium)
	}
	for _, cfg := range premium {
		assert.True(t, cfg.IsPremium)
	}
}
