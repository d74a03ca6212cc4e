package repository

import (
	"context"

	"linkfolio/internal/domain"
)

// ProfileRepository defines the contract for user-profile data access
type ProfileRepository interface {
	// Create stores a new user account
	Create(ctx context.Context, user *domain.User) error

	// FindByID retrieves a user by id
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmail retrieves a user by email (login path)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindBySlug resolves a public profile slug to its account
	FindBySlug(ctx context.Context, slug string) (*domain.User, error)

	// ExistsBySlug checks slug availability without loading the record
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Update persists a modified profile
	Update(ctx context.Context, user *domain.User) error

	// IncrementProfileViews atomically bumps the public view counter
	IncrementProfileViews(ctx context.Context, id string) error

	// ListTestimonials returns the owner's testimonials, newest first
	ListTestimonials(ctx context.Context, ownerID string) ([]domain.Testimonial, error)

	// CreateContactMessage stores an inbound public contact-form message
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error

	// ListContactMessages returns the owner's inbox, newest first
	ListContactMessages(ctx context.Context, ownerID string) ([]domain.ContactMessage, error)
}
