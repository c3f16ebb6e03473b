package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logo-banner/models"
)

func TestPresetProvider_MatchIsPrefixBased(t *testing.T) {
	presets := NewPresetProvider(nil)

	assert.True(t, presets.Match("react"))
	assert.True(t, presets.Match("react-query"))
	assert.True(t, presets.Match("vercel-wordmark-dark"))
	assert.False(t, presets.Match("acme"))
	assert.False(t, presets.Match("zeta-labs"))
}

func TestPresetProvider_FilterKeepsCandidateOrder(t *testing.T) {
	presets := NewPresetProvider(nil)

	got := presets.Filter(testItems())
	assert.Equal(t, []string{"react", "vue", "docker"}, models.ItemIDs(got))
}

func TestPresetProvider_Override(t *testing.T) {
	presets := NewPresetProvider([]string{" acme ", ""})

	assert.Equal(t, []string{"acme"}, presets.Prefixes())
	assert.Equal(t, []string{"acme"}, models.ItemIDs(presets.Filter(testItems())))
}

func TestPresetProvider_EmptyOverrideFallsBack(t *testing.T) {
	presets := NewPresetProvider([]string{"  "})
	assert.Equal(t, DefaultPresetPrefixes, presets.Prefixes())
}
