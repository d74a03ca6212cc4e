// Package render turns an owner's effectively-visible links into the public
// page layout: social buttons, highlighted cards, and category groups. It is
// pure computation over already-fetched data and does no I/O.
package render

import (
	"strings"

	"linkfolio/internal/domain"
)

// DefaultAccentColor is used when a profile has no accent color configured
const DefaultAccentColor = "#6366f1"

// UncategorizedGroupID keys the group holding links without a category
const UncategorizedGroupID = "uncategorized"

// brandColors maps the fixed social platform vocabulary to brand colors.
// A link belongs to the social bucket exactly when its title equals one of
// these keys, case-insensitively.
var brandColors = map[string]string{
	"facebook":  "#1877F2",
	"twitter":   "#1DA1F2",
	"instagram": "#E1306C",
	"linkedin":  "#0077B5",
	"youtube":   "#FF0000",
	"tiktok":    "#000000",
	"website":   "#4A5568",
}

// SocialLink is a social-bucket entry with its resolved brand color
type SocialLink struct {
	domain.Link
	BrandColor string `json:"brand_color"`
}

// CategoryGroup is one rendered group of standard links. Name and Icon come
// from the category itself, or from fixed defaults for uncategorized links.
type CategoryGroup struct {
	CategoryID string        `json:"category_id"`
	Name       string        `json:"name"`
	Icon       string        `json:"icon"`
	Links      []domain.Link `json:"links"`
}

// Page is the three-bucket public layout. Every input link lands in exactly
// one bucket.
type Page struct {
	Social      []SocialLink    `json:"social"`
	Highlighted []domain.Link   `json:"highlighted"`
	Groups      []CategoryGroup `json:"groups"`
}

// IsSocialTitle reports whether a title matches the social platform
// vocabulary. The match is an exact case-insensitive comparison, so a custom
// link titled "Instagram Campaign" stays out of the social bucket.
func IsSocialTitle(title string) bool {
	_, ok := brandColors[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

// BrandColor returns the platform color for a social-bucket link, falling
// back to the owner's accent color for anything outside the vocabulary.
func BrandColor(title, accentColor string) string {
	if color, ok := brandColors[strings.ToLower(strings.TrimSpace(title))]; ok {
		return color
	}
	if accentColor != "" {
		return accentColor
	}
	return DefaultAccentColor
}

// BuildPage classifies links into the three buckets in a single pass.
// Precedence is strict: a social title wins over the highlighted flag, and
// the highlighted flag wins over category grouping. Input order, which the
// store guarantees to be display_order, is preserved inside every bucket.
//
// Category names and icons are resolved through an id lookup built once from
// the owner's categories, so a renamed category shows its current name no
// matter which link arrived first.
func BuildPage(links []domain.Link, categories []domain.LinkCategory, accentColor string) *Page {
	byID := make(map[string]*domain.LinkCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	page := &Page{
		Social:      []SocialLink{},
		Highlighted: []domain.Link{},
		Groups:      []CategoryGroup{},
	}

	groupIndex := make(map[string]int)

	for _, link := range links {
		switch {
		case IsSocialTitle(link.Title):
			page.Social = append(page.Social, SocialLink{
				Link:       link,
				BrandColor: BrandColor(link.Title, accentColor),
			})

		case link.IsHighlighted:
			page.Highlighted = append(page.Highlighted, link)

		default:
			groupID := UncategorizedGroupID
			if link.CategoryID != nil {
				groupID = *link.CategoryID
			}

			idx, ok := groupIndex[groupID]
			if !ok {
				idx = len(page.Groups)
				groupIndex[groupID] = idx
				page.Groups = append(page.Groups, newGroup(groupID, byID))
			}

			page.Groups[idx].Links = append(page.Groups[idx].Links, link)
		}
	}

	return page
}

// newGroup resolves the display name and icon for a group header
func newGroup(groupID string, byID map[string]*domain.LinkCategory) CategoryGroup {
	group := CategoryGroup{
		CategoryID: groupID,
		Name:       "Links",
		Icon:       "🔗",
		Links:      []domain.Link{},
	}

	if groupID == UncategorizedGroupID {
		return group
	}

	if category, ok := byID[groupID]; ok {
		group.Name = category.Name
		if category.Icon != "" {
			group.Icon = category.Icon
		} else {
			group.Icon = "📁"
		}
	}

	return group
}
