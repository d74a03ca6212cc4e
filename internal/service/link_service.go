package service

import (
	"context"

	"linkfolio/internal/domain"
)

// LinkService defines the business logic for the link and category stores.
// Validation and URL normalization happen here, before any repository call;
// the management handlers stay thin.
type LinkService interface {
	// ListCategories returns the owner's categories sorted by display_order
	ListCategories(ctx context.Context, ownerID string) ([]domain.LinkCategory, error)

	// CreateCategory appends a new category at the end of the owner's ordering
	CreateCategory(ctx context.Context, ownerID string, req *domain.CreateCategoryRequest) (*domain.LinkCategory, error)

	// UpdateCategory applies a partial update; only provided fields change
	UpdateCategory(ctx context.Context, ownerID, id string, req *domain.UpdateCategoryRequest) (*domain.LinkCategory, error)

	// DeleteCategory removes a category; its links become uncategorized
	DeleteCategory(ctx context.Context, ownerID, id string) error

	// ReorderCategories assigns positional display_order from the id sequence
	ReorderCategories(ctx context.Context, ownerID string, orderedIDs []string) error

	// ListLinks returns all the owner's links regardless of visibility,
	// annotated with resolved category names
	ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error)

	// ListPublicLinks returns only links effectively visible right now
	ListPublicLinks(ctx context.Context, ownerID string) ([]domain.Link, error)

	// CreateLink validates, normalizes the URL, and appends a new link
	CreateLink(ctx context.Context, ownerID string, req *domain.CreateLinkRequest) (*domain.Link, error)

	// UpdateLink applies a partial update; only provided fields change
	UpdateLink(ctx context.Context, ownerID, id string, req *domain.UpdateLinkRequest) (*domain.Link, error)

	// DeleteLink hard-deletes a link and its click history
	DeleteLink(ctx context.Context, ownerID, id string) error

	// ReorderLinks assigns positional display_order from the id sequence
	ReorderLinks(ctx context.Context, ownerID string, orderedIDs []string) error
}
