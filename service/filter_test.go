package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logo-banner/models"
)

func TestFilter_EmptySearchIsIdentity(t *testing.T) {
	items := testItems()

	for _, text := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, items, Filter(items, text, nil))
		assert.Equal(t, items, Filter(items, text, []string{}))
	}
}

func TestSearch_MultiTermRanking(t *testing.T) {
	a := logo("a", "Item1")
	b := logo("b", "Item2", "Library")

	got := Search([]models.LogoItem{a, b}, "Item1 Library")
	assert.Equal(t, []string{"a", "b"}, models.ItemIDs(got))

	// Term order decides rank
	got = Search([]models.LogoItem{a, b}, "Library Item1")
	assert.Equal(t, []string{"b", "a"}, models.ItemIDs(got))
}

func TestSearch_NoDuplicates(t *testing.T) {
	got := Search(testItems(), "react REACT library")
	assert.Equal(t, []string{"react"}, models.ItemIDs(got))
}

func TestSearch_MatchesDescriptionAndCategory(t *testing.T) {
	described := logo("tool", "Tool")
	described.Description = "Logo for Tool for Category: Devtool"

	items := []models.LogoItem{described, logo("acme", "Acme", "Software")}

	assert.Equal(t, []string{"tool"}, models.ItemIDs(Search(items, "category:")))
	assert.Equal(t, []string{"acme"}, models.ItemIDs(Search(items, "SOFT")))
	assert.Empty(t, Search(items, "nothing"))
}

func TestFilterCategories(t *testing.T) {
	items := testItems()

	got := FilterCategories(items, []string{"software"})
	assert.Equal(t, []string{"docker", "acme"}, models.ItemIDs(got))

	got = FilterCategories(items, []string{"ai", "Library"})
	assert.Equal(t, []string{"react", "zeta-labs"}, models.ItemIDs(got))
}

func TestFilter_SearchThenCategories(t *testing.T) {
	got := Filter(testItems(), "o", []string{"devtool"})
	assert.Equal(t, []string{"docker"}, models.ItemIDs(got))
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	items := testItems()
	before := models.ItemIDs(items)

	got := Filter(items, "vue", nil)
	got[0].Title = "changed"

	assert.Equal(t, before, models.ItemIDs(items))
	assert.Equal(t, "Vue", items[1].Title)
}
