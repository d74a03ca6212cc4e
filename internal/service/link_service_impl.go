package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"linkfolio/internal/cache"
	"linkfolio/internal/config"
	"linkfolio/internal/domain"
	"linkfolio/internal/repository"
	"linkfolio/pkg/logger"
	"linkfolio/pkg/validator"
)

// linkService implements the LinkService interface
type linkService struct {
	links      repository.LinkRepository
	categories repository.CategoryRepository
	cache      cache.Cache
	cfg        *config.Config
	logger     *logger.Logger
	now        func() time.Time
}

// NewLinkService creates a new link service with dependencies injected.
// The cache may be nil; the service then always reads through to the store.
func NewLinkService(
	links repository.LinkRepository,
	categories repository.CategoryRepository,
	cache cache.Cache,
	cfg *config.Config,
	logger *logger.Logger,
) LinkService {
	return &linkService{
		links:      links,
		categories: categories,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// publicLinksKey is the cache key for an owner's public link list
func publicLinksKey(ownerID string) string {
	return fmt.Sprintf("public:links:%s", ownerID)
}

// ListCategories returns the owner's categories sorted by display_order
func (s *linkService) ListCategories(ctx context.Context, ownerID string) ([]domain.LinkCategory, error) {
	return s.categories.ListByOwner(ctx, ownerID)
}

// CreateCategory appends a new category at the end of the owner's ordering
func (s *linkService) CreateCategory(ctx context.Context, ownerID string, req *domain.CreateCategoryRequest) (*domain.LinkCategory, error) {
	if err := validator.ValidateTitle("name", req.Name); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// Append at end: the new display_order is the current count
	count, err := s.categories.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	category := &domain.LinkCategory{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: int(count),
		IsVisible:    visible,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.invalidatePublic(ctx, ownerID)

	s.logger.Info("Category created", "category_id", category.ID, "owner_id", ownerID)
	return category, nil
}

// UpdateCategory applies a partial update; only provided fields change
func (s *linkService) UpdateCategory(ctx context.Context, ownerID, id string, req *domain.UpdateCategoryRequest) (*domain.LinkCategory, error) {
	category, err := s.categories.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validator.ValidateTitle("name", *req.Name); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.IsVisible != nil {
		category.IsVisible = *req.IsVisible
	}

	if err := s.categories.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", "error", err, "category_id", id)
		return nil, err
	}

	s.invalidatePublic(ctx, ownerID)
	return category, nil
}

// DeleteCategory removes a category; associated links survive uncategorized
func (s *linkService) DeleteCategory(ctx context.Context, ownerID, id string) error {
	if err := s.categories.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.invalidatePublic(ctx, ownerID)

	s.logger.Info("Category deleted", "category_id", id, "owner_id", ownerID)
	return nil
}

// ReorderCategories assigns positional display_order from the id sequence
func (s *linkService) ReorderCategories(ctx context.Context, ownerID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return domain.NewValidationError("ordered_ids cannot be empty")
	}

	if err := s.categories.Reorder(ctx, ownerID, orderedIDs); err != nil {
		s.logger.Error("Failed to reorder categories", "error", err, "owner_id", ownerID)
		return err
	}

	s.invalidatePublic(ctx, ownerID)
	return nil
}

// ListLinks returns all the owner's links for the management surface
func (s *linkService) ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	return s.links.ListByOwner(ctx, ownerID)
}

// ListPublicLinks returns links effectively visible at this moment, using
// the cache-aside pattern. The cached list goes stale when a scheduled
// link's window opens or closes, bounded by the cache TTL; mutations
// invalidate it immediately.
func (s *linkService) ListPublicLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	key := publicLinksKey(ownerID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil && cached != "" {
			var links []domain.Link
			if err := json.Unmarshal([]byte(cached), &links); err == nil {
				s.logger.Debug("Public links cache hit", "owner_id", ownerID)
				return links, nil
			}
		}
	}

	links, err := s.links.ListPublicByOwner(ctx, ownerID, s.now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(links); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.cfg.CacheTTL); err != nil {
				// Log cache error but don't fail the request
				s.logger.Warn("Failed to cache public links", "error", err, "owner_id", ownerID)
			}
		}
	}

	return links, nil
}

// CreateLink validates, normalizes the URL, and appends a new link
func (s *linkService) CreateLink(ctx context.Context, ownerID string, req *domain.CreateLinkRequest) (*domain.Link, error) {
	if err := validator.ValidateTitle("title", req.Title); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := validator.ValidateURL(req.URL); err != nil {
		s.logger.Warn("Invalid URL provided", "url", req.URL, "error", err)
		return nil, domain.NewValidationError(err.Error())
	}

	if err := validator.ValidateDateWindow(req.StartDate, req.EndDate); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// The category reference is weak but must at least exist at creation time
	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, ownerID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	count, err := s.links.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	link := &domain.Link{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		URL:           validator.NormalizeURL(req.URL),
		Description:   req.Description,
		Icon:          req.Icon,
		DisplayOrder:  int(count),
		IsHighlighted: req.IsHighlighted,
		IsVisible:     visible,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}

	if err := s.links.Create(ctx, link); err != nil {
		s.logger.Error("Failed to create link", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.invalidatePublic(ctx, ownerID)

	s.logger.Info("Link created", "link_id", link.ID, "owner_id", ownerID, "title", link.Title)
	return link, nil
}

// UpdateLink applies a partial update; only provided fields change
func (s *linkService) UpdateLink(ctx context.Context, ownerID, id string, req *domain.UpdateLinkRequest) (*domain.Link, error) {
	link, err := s.links.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := validator.ValidateTitle("title", *req.Title); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		link.Title = *req.Title
	}
	if req.URL != nil {
		if err := validator.ValidateURL(*req.URL); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		link.URL = validator.NormalizeURL(*req.URL)
	}
	if req.Description != nil {
		link.Description = *req.Description
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.ClearCategory {
		link.CategoryID = nil
	} else if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, ownerID, *req.CategoryID); err != nil {
			return nil, err
		}
		link.CategoryID = req.CategoryID
	}
	if req.IsHighlighted != nil {
		link.IsHighlighted = *req.IsHighlighted
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}
	if req.ClearStartDate {
		link.StartDate = nil
	} else if req.StartDate != nil {
		link.StartDate = req.StartDate
	}
	if req.ClearEndDate {
		link.EndDate = nil
	} else if req.EndDate != nil {
		link.EndDate = req.EndDate
	}

	if err := validator.ValidateDateWindow(link.StartDate, link.EndDate); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.links.Update(ctx, link); err != nil {
		s.logger.Error("Failed to update link", "error", err, "link_id", id)
		return nil, err
	}

	s.invalidatePublic(ctx, ownerID)
	return link, nil
}

// DeleteLink hard-deletes a link and its click history
func (s *linkService) DeleteLink(ctx context.Context, ownerID, id string) error {
	if err := s.links.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete link", "error", err, "link_id", id)
		return err
	}

	s.invalidatePublic(ctx, ownerID)

	s.logger.Info("Link deleted", "link_id", id, "owner_id", ownerID)
	return nil
}

// ReorderLinks assigns positional display_order from the id sequence
func (s *linkService) ReorderLinks(ctx context.Context, ownerID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return domain.NewValidationError("ordered_ids cannot be empty")
	}

	if err := s.links.Reorder(ctx, ownerID, orderedIDs); err != nil {
		s.logger.Error("Failed to reorder links", "error", err, "owner_id", ownerID)
		return err
	}

	s.invalidatePublic(ctx, ownerID)
	return nil
}

// invalidatePublic drops the owner's cached public link list after any
// mutation. Cache failures are logged, never surfaced.
func (s *linkService) invalidatePublic(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, publicLinksKey(ownerID)); err != nil {
		s.logger.Warn("Failed to invalidate public links cache", "error", err, "owner_id", ownerID)
	}
}
