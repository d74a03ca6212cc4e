package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
)

// clickRepository implements the ClickRepository interface for PostgreSQL
type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository creates a new PostgreSQL click-ledger repository
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{db: db}
}

// Record appends one ledger row and bumps the link's denormalized counter.
// Both writes share a transaction: the counter can never run ahead of or
// behind the ledger. The increment uses a SQL expression to stay atomic
// under concurrent clicks.
func (r *clickRepository) Record(ctx context.Context, click *domain.LinkClick) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Link{}).
			Where("id = ?", click.LinkID).
			Update("click_count", gorm.Expr("click_count + ?", 1))

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrLinkNotFound
		}

		if err := tx.Create(click).Error; err != nil {
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

// CountByDay groups ledger rows since the given instant by UTC calendar
// date. Only dates with at least one click appear; the histogram is sparse.
func (r *clickRepository) CountByDay(ctx context.Context, linkID string, since time.Time) ([]domain.DailyClicks, error) {
	var rows []domain.DailyClicks

	result := r.db.WithContext(ctx).
		Model(&domain.LinkClick{}).
		Select("to_char(clicked_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("link_id = ? AND clicked_at >= ?", linkID, since).
		Group("date").
		Order("date ASC").
		Scan(&rows)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return rows, nil
}

// TopReferrers ranks non-empty referrers by click count descending.
// Ties fall back to referrer text so the ordering is deterministic.
func (r *clickRepository) TopReferrers(ctx context.Context, linkID string, limit int) ([]domain.ReferrerCount, error) {
	var rows []domain.ReferrerCount

	result := r.db.WithContext(ctx).
		Model(&domain.LinkClick{}).
		Select("referrer, COUNT(*) AS count").
		Where("link_id = ? AND referrer <> ''", linkID).
		Group("referrer").
		Order("count DESC, referrer ASC").
		Limit(limit).
		Scan(&rows)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return rows, nil
}

// TopCountries ranks non-empty countries by click count descending
func (r *clickRepository) TopCountries(ctx context.Context, linkID string, limit int) ([]domain.CountryCount, error) {
	var rows []domain.CountryCount

	result := r.db.WithContext(ctx).
		Model(&domain.LinkClick{}).
		Select("country, COUNT(*) AS count").
		Where("link_id = ? AND country <> ''", linkID).
		Group("country").
		Order("count DESC, country ASC").
		Limit(limit).
		Scan(&rows)

	if result.Error != nil {
		return nil, domain.NewInternalError(result.Error)
	}

	return rows, nil
}
