package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"linkfolio/internal/auth"
	"linkfolio/internal/config"
	"linkfolio/internal/domain"
	"linkfolio/internal/render"
	"linkfolio/internal/repository"
	"linkfolio/internal/slug"
	"linkfolio/pkg/logger"
	"linkfolio/pkg/validator"
)

// PublicProfile is the full public page assembly: profile header,
// testimonials, and the three-bucket link layout.
type PublicProfile struct {
	Profile      *domain.User         `json:"profile"`
	Testimonials []domain.Testimonial `json:"testimonials"`
	Links        *render.Page         `json:"links"`
}

// ProfileService defines account, profile, and public-page business logic
type ProfileService interface {
	// Register creates an account and returns a session token
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)

	// Login authenticates by email/password and returns a session token
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)

	// GetProfile returns the authenticated owner's profile
	GetProfile(ctx context.Context, ownerID string) (*domain.User, error)

	// UpdateProfile applies a partial profile update; setting the agency
	// name for the first time also derives the public slug
	UpdateProfile(ctx context.Context, ownerID string, req *domain.UpdateProfileRequest) (*domain.User, error)

	// ResolveSlug maps a public slug to its account without assembling the
	// page or counting a view
	ResolveSlug(ctx context.Context, profileSlug string) (*domain.User, error)

	// GetPublicProfile resolves a slug and assembles the public page.
	// Any sub-read failing withholds the whole page.
	GetPublicProfile(ctx context.Context, profileSlug string) (*PublicProfile, error)

	// SubmitContact stores an inbound message from the public contact form
	SubmitContact(ctx context.Context, profileSlug string, req *domain.ContactRequest) error

	// ListContactMessages returns the owner's inbox, newest first
	ListContactMessages(ctx context.Context, ownerID string) ([]domain.ContactMessage, error)
}

// profileService implements the ProfileService interface
type profileService struct {
	profiles repository.ProfileRepository
	links    LinkService
	tokens   *auth.TokenService
	cfg      *config.Config
	logger   *logger.Logger
}

// NewProfileService creates a new profile service with dependencies injected
func NewProfileService(
	profiles repository.ProfileRepository,
	links LinkService,
	tokens *auth.TokenService,
	cfg *config.Config,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		profiles: profiles,
		links:    links,
		tokens:   tokens,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register creates an account with a bcrypt-hashed password
func (s *profileService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if err := validator.ValidateEmail(req.Email); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if _, err := s.profiles.FindByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}

	if err := s.profiles.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create account", "error", err, "email", req.Email)
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.logger.Info("Account registered", "owner_id", user.ID)
	return &domain.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password
func (s *profileService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.profiles.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.logger.Info("Login", "owner_id", user.ID)
	return &domain.AuthResponse{Token: token, User: user}, nil
}

// GetProfile returns the authenticated owner's profile
func (s *profileService) GetProfile(ctx context.Context, ownerID string) (*domain.User, error) {
	return s.profiles.FindByID(ctx, ownerID)
}

// UpdateProfile applies a partial update. When the agency name changes and
// no slug exists yet, a slug is derived from it; a taken slug gets a random
// suffix rather than failing the update.
func (s *profileService) UpdateProfile(ctx context.Context, ownerID string, req *domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.profiles.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AgencyName != nil {
		if err := validator.ValidateTitle("agency_name", *req.AgencyName); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		user.AgencyName = *req.AgencyName
	}
	if req.Tagline != nil {
		user.Tagline = *req.Tagline
	}
	if req.LogoURL != nil {
		user.LogoURL = *req.LogoURL
	}
	if req.Website != nil && *req.Website != "" {
		if err := validator.ValidateURL(*req.Website); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		user.Website = validator.NormalizeURL(*req.Website)
	}
	if req.AccentColor != nil {
		if err := validator.ValidateHexColor(*req.AccentColor); err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		user.AccentColor = *req.AccentColor
	}
	if req.ClientsOnboarded != nil {
		user.ClientsOnboarded = *req.ClientsOnboarded
	}
	if req.StoriesPublished != nil {
		user.StoriesPublished = *req.StoriesPublished
	}
	if req.CompletionRate != nil {
		user.CompletionRate = *req.CompletionRate
	}

	if user.Slug == "" && user.AgencyName != "" {
		candidate := slug.Make(user.AgencyName)
		taken, err := s.profiles.ExistsBySlug(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if taken {
			candidate = slug.WithSuffix(candidate)
		}
		user.Slug = candidate
	}

	if err := s.profiles.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", "error", err, "owner_id", ownerID)
		return nil, err
	}

	return user, nil
}

// ResolveSlug maps a public slug to its account
func (s *profileService) ResolveSlug(ctx context.Context, profileSlug string) (*domain.User, error) {
	user, err := s.profiles.FindBySlug(ctx, profileSlug)
	if err != nil {
		return nil, err
	}

	if !user.IsComplete() {
		return nil, domain.ErrProfileNotFound
	}

	return user, nil
}

// GetPublicProfile resolves a slug and assembles the full public page.
// The view counter bumps asynchronously; a failed bump never hides the page.
func (s *profileService) GetPublicProfile(ctx context.Context, profileSlug string) (*PublicProfile, error) {
	user, err := s.ResolveSlug(ctx, profileSlug)
	if err != nil {
		return nil, err
	}

	links, err := s.links.ListPublicLinks(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	categories, err := s.links.ListCategories(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	testimonials, err := s.profiles.ListTestimonials(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.profiles.IncrementProfileViews(ctx, user.ID); err != nil {
			s.logger.Warn("Failed to increment profile views", "error", err, "owner_id", user.ID)
		}
	}()

	return &PublicProfile{
		Profile:      user,
		Testimonials: testimonials,
		Links:        render.BuildPage(links, categories, user.AccentColor),
	}, nil
}

// SubmitContact stores an inbound message addressed to the profile owner
func (s *profileService) SubmitContact(ctx context.Context, profileSlug string, req *domain.ContactRequest) error {
	if err := validator.ValidateEmail(req.Email); err != nil {
		return domain.NewValidationError(err.Error())
	}

	user, err := s.profiles.FindBySlug(ctx, profileSlug)
	if err != nil {
		return err
	}

	msg := &domain.ContactMessage{
		ID:      uuid.NewString(),
		OwnerID: user.ID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.profiles.CreateContactMessage(ctx, msg); err != nil {
		s.logger.Error("Failed to store contact message", "error", err, "owner_id", user.ID)
		return err
	}

	s.logger.Info("Contact message stored", "owner_id", user.ID)
	return nil
}

// ListContactMessages returns the owner's inbox, newest first
func (s *profileService) ListContactMessages(ctx context.Context, ownerID string) ([]domain.ContactMessage, error) {
	return s.profiles.ListContactMessages(ctx, ownerID)
}
