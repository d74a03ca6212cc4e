package domain

import (
	"time"
)

// LinkCategory is a named grouping of links owned by a single user.
// Deleting a category detaches its links; it never cascades.
type LinkCategory struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID      string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name         string    `gorm:"not null;size:120" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Icon         string    `gorm:"size:255" json:"icon,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsVisible    bool      `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (LinkCategory) TableName() string {
	return "link_categories"
}

// Link is a single entry on an owner's public page. The category reference
// is weak: when the category is deleted CategoryID becomes nil and the link
// survives uncategorized.
type Link struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID       string     `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID    *string    `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Title         string     `gorm:"not null;size:200" json:"title"`
	URL           string     `gorm:"not null;type:text" json:"url"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Icon          string     `gorm:"size:255" json:"icon,omitempty"`
	DisplayOrder  int        `gorm:"not null;default:0" json:"display_order"`
	IsHighlighted bool       `gorm:"not null;default:false" json:"is_highlighted"`
	IsVisible     bool       `gorm:"not null;default:true" json:"is_visible"`
	StartDate     *time.Time `gorm:"index" json:"start_date,omitempty"`
	EndDate       *time.Time `gorm:"index" json:"end_date,omitempty"`
	ClickCount    int64      `gorm:"not null;default:0" json:"click_count"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// CategoryName is resolved from link_categories at read time, never stored.
	CategoryName string `gorm:"->;-:migration" json:"category_name,omitempty"`
}

// TableName specifies the table name for GORM
func (Link) TableName() string {
	return "links"
}

// IsEffectivelyVisible reports whether the link should appear on the public
// page at the given instant: the visibility flag must be set and "now" must
// fall inside the optional active-date window.
func (l *Link) IsEffectivelyVisible(now time.Time) bool {
	if !l.IsVisible {
		return false
	}
	if l.StartDate != nil && now.Before(*l.StartDate) {
		return false
	}
	if l.EndDate != nil && now.After(*l.EndDate) {
		return false
	}
	return true
}

// CreateCategoryRequest is the payload for creating a link category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsVisible   *bool  `json:"is_visible,omitempty"` // defaults to true
}

// UpdateCategoryRequest carries a partial update: only non-nil fields change
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsVisible   *bool   `json:"is_visible,omitempty"`
}

// CreateLinkRequest is the payload for creating a link
type CreateLinkRequest struct {
	Title         string     `json:"title" binding:"required"`
	URL           string     `json:"url" binding:"required"`
	Description   string     `json:"description,omitempty"`
	Icon          string     `json:"icon,omitempty"`
	CategoryID    *string    `json:"category_id,omitempty"`
	IsHighlighted bool       `json:"is_highlighted"`
	IsVisible     *bool      `json:"is_visible,omitempty"` // defaults to true
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// UpdateLinkRequest carries a partial update: only non-nil fields change.
// ClearCategory detaches the link from its category; ClearStartDate and
// ClearEndDate remove the corresponding window bound.
type UpdateLinkRequest struct {
	Title          *string    `json:"title,omitempty"`
	URL            *string    `json:"url,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Icon           *string    `json:"icon,omitempty"`
	CategoryID     *string    `json:"category_id,omitempty"`
	ClearCategory  bool       `json:"clear_category,omitempty"`
	IsHighlighted  *bool      `json:"is_highlighted,omitempty"`
	IsVisible      *bool      `json:"is_visible,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ClearStartDate bool       `json:"clear_start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ClearEndDate   bool       `json:"clear_end_date,omitempty"`
}

// ReorderRequest carries the full id sequence; position in the slice becomes
// the new display_order (0-based).
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
