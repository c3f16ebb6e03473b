package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo-banner/models"
)

func TestParseCatalog_FlatArray(t *testing.T) {
	data := `[
		{"id": "react", "title": "React", "category": "Library", "path": "/assets/svgl/react.svg", "svgContent": "<svg/>"},
		{"id": "vercel-dark", "title": "Vercel", "category": ["Hosting", "Vercel"], "path": "/assets/svgl/vercel_dark.svg"}
	]`

	items, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "react", items[0].ID)
	assert.Equal(t, models.Categories{"Library"}, items[0].Category)
	assert.Equal(t, models.Categories{"Hosting", "Vercel"}, items[1].Category)
	assert.Equal(t, []string{"hosting", "vercel"}, items[1].Category.IDs())
}

func TestParseCatalog_GroupedDeduplicates(t *testing.T) {
	data := `[
		{"id": "framework", "title": "Framework", "count": 2, "items": [
			{"id": "astro", "title": "Astro", "category": ["Framework"], "path": "/a.svg"},
			{"id": "nuxt", "title": "Nuxt", "category": ["Framework", "Vercel"], "path": "/n.svg"}
		]},
		{"id": "vercel", "title": "Vercel", "count": 1, "items": [
			{"id": "nuxt", "title": "Nuxt duplicate", "category": ["Vercel"], "path": "/n2.svg"}
		]}
	]`

	items, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"astro", "nuxt"}, models.ItemIDs(items))
	assert.Equal(t, "Nuxt", items[1].Title, "first occurrence wins")
}

func TestParseCatalog_SkipsMalformedEntries(t *testing.T) {
	data := `[
		{"id": "ok", "title": "Ok", "path": "/ok.svg"},
		{"id": "bad", "title": "Bad", "category": 42},
		{"id": "ok2", "title": "Ok2", "path": "/ok2.svg"}
	]`

	items, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "ok2"}, models.ItemIDs(items))
}

func TestParseCatalog_GroupedSkipsMalformedEntries(t *testing.T) {
	data := `[
		{"id": "library", "title": "Library", "count": 2, "items": [
			{"id": "react", "title": "React", "category": "Library", "path": "/r.svg"},
			{"id": "bad", "title": "Bad", "category": 42}
		]},
		{"id": "framework", "title": "Framework", "count": 1, "items": [
			{"id": "astro", "title": "Astro", "category": ["Framework"], "path": "/a.svg"}
		]}
	]`

	items, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"react", "astro"}, models.ItemIDs(items))
}

func TestParseCatalog_RejectsNonArray(t *testing.T) {
	_, err := ParseCatalog([]byte(`{"id": "react"}`))
	assert.Error(t, err)
}

func TestParseCatalog_Empty(t *testing.T) {
	items, err := ParseCatalog([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileCatalogRepository_LoadItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "go", "title": "Go", "path": "/go.svg"}]`), 0o644))

	repo := NewFileCatalogRepository(path)
	items, err := repo.LoadItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, models.ItemIDs(items))

	_, err = NewFileCatalogRepository(filepath.Join(t.TempDir(), "missing.json")).LoadItems(context.Background())
	assert.Error(t, err)
}

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, models.Categories{"Library", "Framework"}, SplitCategories("Library, Framework"))
	assert.Equal(t, models.Categories{"Home Automation"}, SplitCategories(" Home Automation ,"))
	assert.Nil(t, SplitCategories(""))
}
