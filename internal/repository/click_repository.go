package repository

import (
	"context"
	"time"

	"linkfolio/internal/domain"
)

// ClickRepository defines the contract for the append-only click ledger and
// the aggregations derived from it. Ledger rows are inserted and read, never
// updated.
type ClickRepository interface {
	// Record appends one ledger row and increments the link's denormalized
	// click counter in the same transaction, so counter and ledger cannot
	// diverge
	Record(ctx context.Context, click *domain.LinkClick) error

	// CountByDay groups ledger rows since the given instant by UTC calendar
	// date, ascending. Dates with no clicks are absent.
	CountByDay(ctx context.Context, linkID string, since time.Time) ([]domain.DailyClicks, error)

	// TopReferrers ranks non-empty referrers by count descending, capped at limit
	TopReferrers(ctx context.Context, linkID string, limit int) ([]domain.ReferrerCount, error)

	// TopCountries ranks non-empty countries by count descending, capped at limit
	TopCountries(ctx context.Context, linkID string, limit int) ([]domain.CountryCount, error)
}
