package repository

import (
	"context"
	"time"

	"linkfolio/internal/domain"
)

// LinkRepository defines the contract for link data access.
// This interface allows swapping implementations without changing business
// logic - following Dependency Inversion Principle.
type LinkRepository interface {
	// Create stores a new link
	Create(ctx context.Context, link *domain.Link) error

	// FindByID retrieves a link scoped to its owner
	FindByID(ctx context.Context, ownerID, id string) (*domain.Link, error)

	// FindAnyByID retrieves a link without owner scoping.
	// Used by the public click path, where no session exists.
	FindAnyByID(ctx context.Context, id string) (*domain.Link, error)

	// ListByOwner returns all of an owner's links regardless of visibility,
	// sorted by display_order, each annotated with its resolved category name
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error)

	// ListPublicByOwner returns only links effectively visible at the given
	// instant, sorted by display_order
	ListPublicByOwner(ctx context.Context, ownerID string, now time.Time) ([]domain.Link, error)

	// CountByOwner returns the owner's total link count (used for append-at-end ordering)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)

	// Update persists a modified link
	Update(ctx context.Context, link *domain.Link) error

	// Delete hard-deletes a link and its click ledger rows in one transaction
	Delete(ctx context.Context, ownerID, id string) error

	// Reorder assigns display_order = positional index for each id, as a
	// single transaction: either every position is applied or none is
	Reorder(ctx context.Context, ownerID string, orderedIDs []string) error
}

// CategoryRepository defines the contract for link-category data access
type CategoryRepository interface {
	// Create stores a new category
	Create(ctx context.Context, category *domain.LinkCategory) error

	// FindByID retrieves a category scoped to its owner
	FindByID(ctx context.Context, ownerID, id string) (*domain.LinkCategory, error)

	// ListByOwner returns the owner's categories sorted by display_order
	ListByOwner(ctx context.Context, ownerID string) ([]domain.LinkCategory, error)

	// CountByOwner returns the owner's total category count
	CountByOwner(ctx context.Context, ownerID string) (int64, error)

	// Update persists a modified category
	Update(ctx context.Context, category *domain.LinkCategory) error

	// Delete removes a category and detaches its links in one transaction.
	// Links are never deleted with their category.
	Delete(ctx context.Context, ownerID, id string) error

	// Reorder assigns display_order = positional index for each id, transactionally
	Reorder(ctx context.Context, ownerID string, orderedIDs []string) error
}
