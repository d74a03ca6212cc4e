package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
)

// profileRepository implements the ProfileRepository interface for PostgreSQL
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new user account
func (r *profileRepository) Create(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return domain.NewInternalError(result.Error)
	}
	return nil
}

// FindByID retrieves a user by id
func (r *profileRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User

	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &user, nil
}

// FindByEmail retrieves a user by email
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &user, nil
}

// FindBySlug resolves a public slug to its account
func (r *profileRepository) FindBySlug(ctx context.Context, slug string) (*domain.User, error) {
	var user domain.User

	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &user, nil
}

// ExistsBySlug checks slug availability without loading the record
func (r *profileRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("slug = ?", slug).
		Count(&count)

	if result.Error != nil {
		return false, domain.NewInternalError(result.Error)
	}

	return count > 0, nil
}

// Update persists a modified profile
func (r *profileRepository) Update(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", user.ID).
		Select("name", "agency_name", "slug", "tagline", "logo_url", "website",
			"accent_color", "clients_onboarded", "stories_published", "completion_rate").
		Updates(user)

	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// IncrementProfileViews atomically bumps the public view counter.
// Uses a SQL expression to avoid a SELECT-then-UPDATE race.
func (r *profileRepository) IncrementProfileViews(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("profile_views", gorm.Expr("profile_views + ?", 1))

	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// ListTestimonials returns the owner's testimonials, newest first
func (r *profileRepository) ListTestimonials(ctx context.Context, ownerID string) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&testimonials)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return testimonials, nil
}

// CreateContactMessage stores an inbound public contact-form message
func (r *profileRepository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	result := r.db.WithContext(ctx).Create(msg)
	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}
	return nil
}

// ListContactMessages returns the owner's inbox, newest first
func (r *profileRepository) ListContactMessages(ctx context.Context, ownerID string) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&messages)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return messages, nil
}
