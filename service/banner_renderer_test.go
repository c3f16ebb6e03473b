package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo-banner/models"
)

func TestBannerRenderer_RenderHTML(t *testing.T) {
	renderer, err := NewBannerRenderer(1584, 396)
	require.NoError(t, err)

	items := testItems()[:2]
	items[1].Title = `Vue "<script>"`

	html, err := renderer.RenderHTML(BannerView{Items: items, Width: 60, Background: DefaultBackground})
	require.NoError(t, err)

	assert.Contains(t, html, "width: 1584px")
	assert.Contains(t, html, "height: 396px")
	assert.Contains(t, html, "width: 60%")
	assert.Contains(t, html, "background: "+DefaultBackground)
	assert.Equal(t, 2, strings.Count(html, testSVG))
	assert.Contains(t, html, `data-id="react"`)
	assert.NotContains(t, html, `"<script>"`)

	// Composition order is kept
	assert.Less(t, strings.Index(html, `data-id="react"`), strings.Index(html, `data-id="vue"`))
}

func TestBannerRenderer_RejectsInvalidView(t *testing.T) {
	renderer, err := NewBannerRenderer(1584, 396)
	require.NoError(t, err)

	_, err = renderer.RenderHTML(BannerView{Width: 0, Background: DefaultBackground})
	assert.ErrorIs(t, err, models.ErrInvalidWidth)

	_, err = renderer.RenderHTML(BannerView{Width: 50, Background: "expression(alert(1))"})
	assert.ErrorIs(t, err, models.ErrInvalidBackground)
}

func TestBannerRenderer_EmptyComposition(t *testing.T) {
	renderer, err := NewBannerRenderer(1584, 396)
	require.NoError(t, err)

	html, err := renderer.RenderHTML(BannerView{Width: 100, Background: "#000"})
	require.NoError(t, err)
	assert.Contains(t, html, `class="banner-inner"`)
	assert.NotContains(t, html, `class="logo"`)
}
