package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
)

// linkRepository implements the LinkRepository interface for PostgreSQL
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new PostgreSQL link repository
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// annotated selects link rows annotated with the resolved category name.
// The LEFT JOIN keeps uncategorized links; their category_name scans empty.
func (r *linkRepository) annotated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("links").
		Select("links.*, link_categories.name AS category_name").
		Joins("LEFT JOIN link_categories ON link_categories.id = links.category_id")
}

// Create inserts a new link record
func (r *linkRepository) Create(ctx context.Context, link *domain.Link) error {
	result := r.db.WithContext(ctx).Create(link)
	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}
	return nil
}

// FindByID retrieves a link by id, scoped to the owner.
// Returns ErrLinkNotFound if the id doesn't resolve inside that scope.
func (r *linkRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Link, error) {
	var link domain.Link

	result := r.annotated(ctx).
		Where("links.id = ? AND links.owner_id = ?", id, ownerID).
		First(&link)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &link, nil
}

// FindAnyByID retrieves a link without owner scoping, for the public click path
func (r *linkRepository) FindAnyByID(ctx context.Context, id string) (*domain.Link, error) {
	var link domain.Link

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&link)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &link, nil
}

// ListByOwner returns every link of the owner, visible or not, sorted by
// display_order with creation time as the stable tie-break
func (r *linkRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	var links []domain.Link

	result := r.annotated(ctx).
		Where("links.owner_id = ?", ownerID).
		Order("links.display_order ASC, links.created_at ASC").
		Find(&links)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return links, nil
}

// ListPublicByOwner returns only links effectively visible at the given
// instant. The date-window test runs server-side against the caller's "now",
// so the same owner can yield different lists between two reads without any
// write occurring.
func (r *linkRepository) ListPublicByOwner(ctx context.Context, ownerID string, now time.Time) ([]domain.Link, error) {
	var links []domain.Link

	result := r.annotated(ctx).
		Where("links.owner_id = ?", ownerID).
		Where("links.is_visible = ?", true).
		Where("links.start_date IS NULL OR links.start_date <= ?", now).
		Where("links.end_date IS NULL OR links.end_date >= ?", now).
		Order("links.display_order ASC, links.created_at ASC").
		Find(&links)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return links, nil
}

// CountByOwner returns the owner's total link count
func (r *linkRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&domain.Link{}).
		Where("owner_id = ?", ownerID).
		Count(&count)

	if result.Error != nil {
		return 0, domain.NewInternalError(result.Error)
	}

	return count, nil
}

// Update modifies an existing link record
func (r *linkRepository) Update(ctx context.Context, link *domain.Link) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Link{}).
		Where("id = ? AND owner_id = ?", link.ID, link.OwnerID).
		Select("category_id", "title", "url", "description", "icon",
			"display_order", "is_highlighted", "is_visible", "start_date", "end_date").
		Updates(link)

	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrLinkNotFound
	}

	return nil
}

// Delete hard-deletes a link together with its click ledger rows.
// Both deletes run in one transaction so the ledger can't be left orphaned.
func (r *linkRepository) Delete(ctx context.Context, ownerID, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&domain.Link{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrLinkNotFound
		}

		if err := tx.Where("link_id = ?", id).Delete(&domain.LinkClick{}).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return err
		}
		return domain.NewInternalError(err)
	}

	return nil
}

// Reorder assigns display_order = positional index (0-based) to each id.
// The whole batch runs in one transaction: a failure on any id rolls every
// position back, so display_order can't end up in a mixed old/new state.
func (r *linkRepository) Reorder(ctx context.Context, ownerID string, orderedIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&domain.Link{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				Update("display_order", position)

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return domain.ErrLinkNotFound
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return err
		}
		return domain.NewInternalError(err)
	}

	return nil
}
