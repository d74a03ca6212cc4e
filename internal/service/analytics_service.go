package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"linkfolio/internal/config"
	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
	"linkfolio/pkg/logger"
)

// AnalyticsService records public click-throughs into the ledger and derives
// per-link analytics from it.
type AnalyticsService interface {
	// RecordClick appends a ledger row and bumps the link's counter, in one
	// transactional store call
	RecordClick(ctx context.Context, event *domain.ClickEvent) error

	// RecordClickAsync runs RecordClick on a background goroutine with a
	// short bounded retry. Failures are logged and then dropped; click
	// tracking must never delay or block the visitor's navigation.
	RecordClickAsync(event *domain.ClickEvent)

	// GetAnalytics composes the link's stored click counter with the 30-day
	// histogram and the top referrer/country rankings. If any sub-read
	// fails, the whole result is withheld; there are no partial analytics.
	GetAnalytics(ctx context.Context, ownerID, linkID string) (*domain.LinkAnalytics, error)
}

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	clicks repository.ClickRepository
	links  repository.LinkRepository
	cfg    *config.Config
	logger *logger.Logger
	now    func() time.Time
}

// NewAnalyticsService creates a new analytics service with dependencies injected
func NewAnalyticsService(
	clicks repository.ClickRepository,
	links repository.LinkRepository,
	cfg *config.Config,
	logger *logger.Logger,
) AnalyticsService {
	return &analyticsService{
		clicks: clicks,
		links:  links,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// RecordClick appends one ledger row capturing the request metadata
func (s *analyticsService) RecordClick(ctx context.Context, event *domain.ClickEvent) error {
	click := &domain.LinkClick{
		ID:        uuid.NewString(),
		LinkID:    event.LinkID,
		Referrer:  truncate(event.Referrer, 500),
		UserAgent: truncate(event.UserAgent, 500),
		IPAddress: event.IPAddress,
		Country:   event.Country,
		City:      event.City,
		ClickedAt: s.now(),
	}

	return s.clicks.Record(ctx, click)
}

// RecordClickAsync records the click off the request path. Backend hiccups
// get one short retry window; after that the click is lost and only logged.
// Silent loss is accepted here: the ledger feeds analytics, not billing.
func (s *analyticsService) RecordClickAsync(event *domain.ClickEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))

		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			err := s.RecordClick(ctx, event)
			if err == nil {
				return nil
			}
			// A missing link will not appear on retry
			if errors.Is(err, domain.ErrLinkNotFound) {
				return err
			}
			return retry.RetryableError(err)
		})
		if err != nil {
			s.logger.Error("Failed to record click, event dropped",
				"error", err,
				"link_id", event.LinkID,
			)
		}
	}()
}

// GetAnalytics assembles the composite analytics view for one link.
// The total comes from the link's denormalized counter; the breakdowns come
// from the ledger. RecordClick keeps the two in step.
func (s *analyticsService) GetAnalytics(ctx context.Context, ownerID, linkID string) (*domain.LinkAnalytics, error) {
	// Ownership check doubles as the counter read
	link, err := s.links.FindByID(ctx, ownerID, linkID)
	if err != nil {
		return nil, err
	}

	since := s.now().UTC().AddDate(0, 0, -s.cfg.AnalyticsWindow)

	byDay, err := s.clicks.CountByDay(ctx, linkID, since)
	if err != nil {
		s.logger.Error("Failed to read click histogram", "error", err, "link_id", linkID)
		return nil, fmt.Errorf("%w: daily histogram: %v", domain.ErrPartialAnalytics, err)
	}

	referrers, err := s.clicks.TopReferrers(ctx, linkID, s.cfg.AnalyticsTopN)
	if err != nil {
		s.logger.Error("Failed to read top referrers", "error", err, "link_id", linkID)
		return nil, fmt.Errorf("%w: top referrers: %v", domain.ErrPartialAnalytics, err)
	}

	countries, err := s.clicks.TopCountries(ctx, linkID, s.cfg.AnalyticsTopN)
	if err != nil {
		s.logger.Error("Failed to read top countries", "error", err, "link_id", linkID)
		return nil, fmt.Errorf("%w: top countries: %v", domain.ErrPartialAnalytics, err)
	}

	if byDay == nil {
		byDay = []domain.DailyClicks{}
	}
	if referrers == nil {
		referrers = []domain.ReferrerCount{}
	}
	if countries == nil {
		countries = []domain.CountryCount{}
	}

	return &domain.LinkAnalytics{
		TotalClicks:  link.ClickCount,
		ClicksByDay:  byDay,
		TopReferrers: referrers,
		TopCountries: countries,
	}, nil
}

// truncate caps request-supplied strings before they reach the ledger
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
