package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
)

// categoryRepository implements the CategoryRepository interface for PostgreSQL
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a new category record
func (r *categoryRepository) Create(ctx context.Context, category *domain.LinkCategory) error {
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}
	return nil
}

// FindByID retrieves a category by id, scoped to the owner
func (r *categoryRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.LinkCategory, error) {
	var category domain.LinkCategory

	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&category)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &category, nil
}

// ListByOwner returns the owner's categories sorted by display_order, with
// creation time breaking ties so the order is total and stable
func (r *categoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.LinkCategory, error) {
	var categories []domain.LinkCategory

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("display_order ASC, created_at ASC").
		Find(&categories)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return categories, nil
}

// CountByOwner returns the owner's total category count
func (r *categoryRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&domain.LinkCategory{}).
		Where("owner_id = ?", ownerID).
		Count(&count)

	if result.Error != nil {
		return 0, domain.NewInternalError(result.Error)
	}

	return count, nil
}

// Update modifies an existing category record
func (r *categoryRepository) Update(ctx context.Context, category *domain.LinkCategory) error {
	result := r.db.WithContext(ctx).
		Model(&domain.LinkCategory{}).
		Where("id = ? AND owner_id = ?", category.ID, category.OwnerID).
		Select("name", "description", "icon", "display_order", "is_visible").
		Updates(category)

	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category and detaches its links in one transaction.
// The links survive with a NULL category reference; deletion never cascades
// to them.
func (r *categoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Link{}).
			Where("category_id = ? AND owner_id = ?", id, ownerID).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.
			Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&domain.LinkCategory{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		return domain.NewInternalError(err)
	}

	return nil
}

// Reorder assigns display_order = positional index (0-based) to each id,
// all-or-nothing inside one transaction
func (r *categoryRepository) Reorder(ctx context.Context, ownerID string, orderedIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&domain.LinkCategory{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				Update("display_order", position)

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return domain.ErrCategoryNotFound
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		return domain.NewInternalError(err)
	}

	return nil
}
