package domain

import (
	"time"
)

// User is an agency account. Slug is the public-facing identifier resolved
// to an owner id before any public read.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`
	Name         string `gorm:"size:120" json:"name,omitempty"`
	AgencyName   string `gorm:"size:120" json:"agency_name,omitempty"`
	Slug         string `gorm:"uniqueIndex;size:140" json:"slug,omitempty"`
	Tagline      string `gorm:"size:255" json:"tagline,omitempty"`
	LogoURL      string `gorm:"type:text" json:"logo_url,omitempty"`
	Website      string `gorm:"type:text" json:"website,omitempty"`
	AccentColor  string `gorm:"size:7" json:"accent_color,omitempty"` // hex, e.g. #6366f1

	// Headline metrics shown on the public page
	ClientsOnboarded int     `gorm:"not null;default:0" json:"clients_onboarded"`
	StoriesPublished int     `gorm:"not null;default:0" json:"stories_published"`
	CompletionRate   float64 `gorm:"not null;default:0" json:"completion_rate"`

	IsVerified   bool       `gorm:"not null;default:false" json:"is_verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	ProfileViews int64      `gorm:"not null;default:0" json:"profile_views"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsComplete reports whether the profile carries the fields required before
// the public page is served.
func (u *User) IsComplete() bool {
	return u.Name != "" && u.AgencyName != "" && u.Slug != ""
}

// Testimonial is a client quote displayed on the public page
type Testimonial struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	Company   string    `gorm:"size:120" json:"company,omitempty"`
	Quote     string    `gorm:"not null;type:text" json:"quote"`
	ImageURL  string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Testimonial) TableName() string {
	return "testimonials"
}

// ContactMessage is an inbound message posted from the public contact form.
// Stored only; delivery is out of scope.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token together with the account
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest carries a partial profile update
type UpdateProfileRequest struct {
	Name             *string  `json:"name,omitempty"`
	AgencyName       *string  `json:"agency_name,omitempty"`
	Tagline          *string  `json:"tagline,omitempty"`
	LogoURL          *string  `json:"logo_url,omitempty"`
	Website          *string  `json:"website,omitempty"`
	AccentColor      *string  `json:"accent_color,omitempty"`
	ClientsOnboarded *int     `json:"clients_onboarded,omitempty"`
	StoriesPublished *int     `json:"stories_published,omitempty"`
	CompletionRate   *float64 `json:"completion_rate,omitempty"`
}

// ContactRequest is the public contact-form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
