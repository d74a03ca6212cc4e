package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkfolio/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestIsSocialTitle(t *testing.T) {
	assert.True(t, IsSocialTitle("instagram"))
	assert.True(t, IsSocialTitle("Instagram"))
	assert.True(t, IsSocialTitle("  YouTube  "))
	assert.True(t, IsSocialTitle("WEBSITE"))

	// Exact match only: a title containing a platform name is not social
	assert.False(t, IsSocialTitle("Instagram Campaign"))
	assert.False(t, IsSocialTitle("My Twitter"))
	assert.False(t, IsSocialTitle(""))
	assert.False(t, IsSocialTitle("pinterest"))
}

func TestBrandColor(t *testing.T) {
	assert.Equal(t, "#1877F2", BrandColor("Facebook", "#ff0000"))
	assert.Equal(t, "#1DA1F2", BrandColor("twitter", ""))
	assert.Equal(t, "#E1306C", BrandColor("instagram", ""))
	assert.Equal(t, "#0077B5", BrandColor("LinkedIn", ""))
	assert.Equal(t, "#FF0000", BrandColor("youtube", ""))
	assert.Equal(t, "#000000", BrandColor("TikTok", ""))
	assert.Equal(t, "#4A5568", BrandColor("website", ""))

	// Outside the vocabulary the owner's accent wins, then the default
	assert.Equal(t, "#ff0000", BrandColor("My Blog", "#ff0000"))
	assert.Equal(t, DefaultAccentColor, BrandColor("My Blog", ""))
}

func TestBuildPage_EveryLinkLandsInExactlyOneBucket(t *testing.T) {
	catID := "cat-1"
	links := []domain.Link{
		{ID: "1", Title: "Instagram"},
		{ID: "2", Title: "Summer Promo", IsHighlighted: true},
		{ID: "3", Title: "Pricing", CategoryID: strPtr(catID)},
		{ID: "4", Title: "About"},
	}
	categories := []domain.LinkCategory{
		{ID: catID, Name: "Services", Icon: "⭐"},
	}

	page := BuildPage(links, categories, "")

	total := len(page.Social) + len(page.Highlighted)
	for _, g := range page.Groups {
		total += len(g.Links)
	}
	assert.Equal(t, len(links), total)

	assert.Len(t, page.Social, 1)
	assert.Equal(t, "1", page.Social[0].ID)
	assert.Len(t, page.Highlighted, 1)
	assert.Equal(t, "2", page.Highlighted[0].ID)
	assert.Len(t, page.Groups, 2)
}

func TestBuildPage_SocialWinsOverHighlighted(t *testing.T) {
	// A social title beats the highlighted flag, which beats grouping
	catID := "cat-1"
	links := []domain.Link{
		{ID: "1", Title: "twitter", IsHighlighted: true, CategoryID: strPtr(catID)},
		{ID: "2", Title: "Featured", IsHighlighted: true, CategoryID: strPtr(catID)},
	}
	categories := []domain.LinkCategory{{ID: catID, Name: "Stuff"}}

	page := BuildPage(links, categories, "")

	assert.Len(t, page.Social, 1)
	assert.Equal(t, "1", page.Social[0].ID)
	assert.Len(t, page.Highlighted, 1)
	assert.Equal(t, "2", page.Highlighted[0].ID)
	assert.Empty(t, page.Groups)
}

func TestBuildPage_GroupHeadersResolveFromCategories(t *testing.T) {
	catID := "cat-1"
	links := []domain.Link{
		{ID: "1", Title: "Pricing", CategoryID: strPtr(catID)},
		{ID: "2", Title: "Misc"},
	}
	categories := []domain.LinkCategory{
		{ID: catID, Name: "Services", Icon: "⭐"},
	}

	page := BuildPage(links, categories, "")

	assert.Len(t, page.Groups, 2)
	assert.Equal(t, catID, page.Groups[0].CategoryID)
	assert.Equal(t, "Services", page.Groups[0].Name)
	assert.Equal(t, "⭐", page.Groups[0].Icon)

	assert.Equal(t, UncategorizedGroupID, page.Groups[1].CategoryID)
	assert.Equal(t, "Links", page.Groups[1].Name)
	assert.Equal(t, "🔗", page.Groups[1].Icon)
}

func TestBuildPage_CategoryWithoutIconGetsDefault(t *testing.T) {
	catID := "cat-1"
	links := []domain.Link{{ID: "1", Title: "Pricing", CategoryID: strPtr(catID)}}
	categories := []domain.LinkCategory{{ID: catID, Name: "Services"}}

	page := BuildPage(links, categories, "")

	assert.Equal(t, "📁", page.Groups[0].Icon)
}

func TestBuildPage_GroupsFollowFirstEncounterOrder(t *testing.T) {
	catA := "cat-a"
	catB := "cat-b"
	links := []domain.Link{
		{ID: "1", Title: "One", CategoryID: strPtr(catB)},
		{ID: "2", Title: "Two", CategoryID: strPtr(catA)},
		{ID: "3", Title: "Three", CategoryID: strPtr(catB)},
	}
	categories := []domain.LinkCategory{
		{ID: catA, Name: "Alpha"},
		{ID: catB, Name: "Beta"},
	}

	page := BuildPage(links, categories, "")

	assert.Len(t, page.Groups, 2)
	assert.Equal(t, "Beta", page.Groups[0].Name)
	assert.Equal(t, "Alpha", page.Groups[1].Name)
	// Input order preserved inside the group
	assert.Equal(t, []string{page.Groups[0].Links[0].ID, page.Groups[0].Links[1].ID}, []string{"1", "3"})
}

func TestBuildPage_DanglingCategoryIDFallsBackToDefaults(t *testing.T) {
	// Link still points at a category id that no longer exists
	gone := "deleted-cat"
	links := []domain.Link{{ID: "1", Title: "Orphan", CategoryID: strPtr(gone)}}

	page := BuildPage(links, nil, "")

	assert.Len(t, page.Groups, 1)
	assert.Equal(t, gone, page.Groups[0].CategoryID)
	assert.Equal(t, "Links", page.Groups[0].Name)
}

func TestBuildPage_EmptyInputYieldsEmptyBuckets(t *testing.T) {
	page := BuildPage(nil, nil, "")

	assert.NotNil(t, page.Social)
	assert.NotNil(t, page.Highlighted)
	assert.NotNil(t, page.Groups)
	assert.Empty(t, page.Social)
	assert.Empty(t, page.Highlighted)
	assert.Empty(t, page.Groups)
}

func TestBuildPage_SocialLinksCarryBrandColor(t *testing.T) {
	links := []domain.Link{
		{ID: "1", Title: "Instagram"},
		{ID: "2", Title: "tiktok"},
	}

	page := BuildPage(links, nil, "#abcdef")

	assert.Equal(t, "#E1306C", page.Social[0].BrandColor)
	assert.Equal(t, "#000000", page.Social[1].BrandColor)
}
