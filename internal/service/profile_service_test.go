package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"linkfolio/internal/auth"
	"linkfolio/internal/config"
	"linkfolio/internal/domain"
	"linkfolio/pkg/logger"
)

type profileServiceTestSuite struct {
	profiles   *MockProfileRepository
	links      *MockLinkRepository
	categories *MockCategoryRepository
	service    *profileService
}

func setupProfileServiceTest(t *testing.T) *profileServiceTestSuite {
	profiles := new(MockProfileRepository)
	links := new(MockLinkRepository)
	categories := new(MockCategoryRepository)

	cfg := &config.Config{
		CacheTTL:        5 * time.Minute,
		AnalyticsWindow: 30,
		AnalyticsTopN:   5,
	}
	log := logger.NewLogger()

	linkSvc := &linkService{
		links:      links,
		categories: categories,
		cfg:        cfg,
		logger:     log,
		now:        func() time.Time { return fixedNow },
	}

	return &profileServiceTestSuite{
		profiles:   profiles,
		links:      links,
		categories: categories,
		service: &profileService{
			profiles: profiles,
			links:    linkSvc,
			tokens:   auth.NewTokenService("test-secret", time.Hour),
			cfg:      cfg,
			logger:   log,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	var created *domain.User
	suite.profiles.On("FindByEmail", ctx, "ada@example.com").
		Return((*domain.User)(nil), domain.ErrProfileNotFound)
	suite.profiles.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)

	resp, err := suite.service.Register(ctx, &domain.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
		Name:     "Ada",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, created.ID)

	// Password is stored as a bcrypt hash, never plaintext
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
}

func TestRegister_EmailTaken(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByEmail", ctx, "taken@example.com").
		Return(&domain.User{ID: "existing", Email: "taken@example.com"}, nil)

	_, err := suite.service.Register(ctx, &domain.RegisterRequest{
		Email:    "taken@example.com",
		Password: "whatever1",
	})

	assert.True(t, errors.Is(err, domain.ErrEmailTaken))
	suite.profiles.AssertNotCalled(t, "Create")
}

func TestRegister_InvalidEmail(t *testing.T) {
	suite := setupProfileServiceTest(t)

	_, err := suite.service.Register(context.Background(), &domain.RegisterRequest{
		Email:    "not-an-email",
		Password: "whatever1",
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLogin_Success(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	suite.profiles.On("FindByEmail", ctx, "ada@example.com").
		Return(&domain.User{ID: "owner-1", Email: "ada@example.com", PasswordHash: string(hash)}, nil)

	resp, err := suite.service.Login(ctx, &domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	suite.profiles.On("FindByEmail", ctx, "ada@example.com").
		Return(&domain.User{ID: "owner-1", PasswordHash: string(hash)}, nil)

	_, err := suite.service.Login(ctx, &domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByEmail", ctx, "ghost@example.com").
		Return((*domain.User)(nil), domain.ErrProfileNotFound)

	_, err := suite.service.Login(ctx, &domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestUpdateProfile_DerivesSlugFromAgencyName(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByID", ctx, "owner-1").
		Return(&domain.User{ID: "owner-1", Name: "Ada"}, nil)
	suite.profiles.On("ExistsBySlug", ctx, "acme-agency").Return(false, nil)
	suite.profiles.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	agency := "Acme Agency"
	user, err := suite.service.UpdateProfile(ctx, "owner-1", &domain.UpdateProfileRequest{
		AgencyName: &agency,
	})

	assert.NoError(t, err)
	assert.Equal(t, "acme-agency", user.Slug)
}

func TestUpdateProfile_TakenSlugGetsSuffix(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByID", ctx, "owner-1").
		Return(&domain.User{ID: "owner-1"}, nil)
	suite.profiles.On("ExistsBySlug", ctx, "acme-agency").Return(true, nil)
	suite.profiles.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	agency := "Acme Agency"
	user, err := suite.service.UpdateProfile(ctx, "owner-1", &domain.UpdateProfileRequest{
		AgencyName: &agency,
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.Slug, "acme-agency-"))
	assert.NotEqual(t, "acme-agency", user.Slug)
}

func TestUpdateProfile_ExistingSlugNeverRegenerated(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByID", ctx, "owner-1").
		Return(&domain.User{ID: "owner-1", AgencyName: "Old Name", Slug: "old-name"}, nil)
	suite.profiles.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	agency := "Rebranded Studio"
	user, err := suite.service.UpdateProfile(ctx, "owner-1", &domain.UpdateProfileRequest{
		AgencyName: &agency,
	})

	assert.NoError(t, err)
	assert.Equal(t, "old-name", user.Slug) // public URLs stay stable
	suite.profiles.AssertNotCalled(t, "ExistsBySlug")
}

func TestUpdateProfile_InvalidAccentColor(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	suite.profiles.On("FindByID", ctx, "owner-1").
		Return(&domain.User{ID: "owner-1"}, nil)

	color := "not-a-color"
	_, err := suite.service.UpdateProfile(ctx, "owner-1", &domain.UpdateProfileRequest{
		AccentColor: &color,
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	suite.profiles.AssertNotCalled(t, "Update")
}

func TestResolveSlug_IncompleteProfileIsHidden(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	// Slug exists but the profile was never finished
	suite.profiles.On("FindBySlug", ctx, "half-done").
		Return(&domain.User{ID: "owner-1", Slug: "half-done"}, nil)

	_, err := suite.service.ResolveSlug(ctx, "half-done")

	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestGetPublicProfile_AssemblesPage(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	owner := &domain.User{
		ID:          "owner-1",
		Name:        "Ada",
		AgencyName:  "Acme Agency",
		Slug:        "acme-agency",
		AccentColor: "#ff00ff",
	}

	viewCounted := make(chan struct{})
	suite.profiles.On("FindBySlug", ctx, "acme-agency").Return(owner, nil)
	suite.profiles.On("ListTestimonials", ctx, "owner-1").
		Return([]domain.Testimonial{{ID: "t-1", Quote: "Great work"}}, nil)
	suite.profiles.On("IncrementProfileViews", mock.Anything, "owner-1").
		Run(func(mock.Arguments) { close(viewCounted) }).
		Return(nil)
	suite.links.On("ListPublicByOwner", ctx, "owner-1", fixedNow).
		Return([]domain.Link{
			{ID: "1", Title: "Instagram"},
			{ID: "2", Title: "Summer Promo", IsHighlighted: true},
			{ID: "3", Title: "Pricing"},
		}, nil)
	suite.categories.On("ListByOwner", ctx, "owner-1").
		Return([]domain.LinkCategory{}, nil)

	page, err := suite.service.GetPublicProfile(ctx, "acme-agency")

	assert.NoError(t, err)
	assert.Equal(t, "Acme Agency", page.Profile.AgencyName)
	assert.Len(t, page.Testimonials, 1)
	assert.Len(t, page.Links.Social, 1)
	assert.Len(t, page.Links.Highlighted, 1)
	assert.Len(t, page.Links.Groups, 1)

	select {
	case <-viewCounted:
	case <-time.After(5 * time.Second):
		t.Fatal("profile view was never counted")
	}
}

func TestGetPublicProfile_LinkReadFailureWithholdsPage(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	owner := &domain.User{ID: "owner-1", Name: "Ada", AgencyName: "Acme", Slug: "acme"}

	suite.profiles.On("FindBySlug", ctx, "acme").Return(owner, nil)
	suite.links.On("ListPublicByOwner", ctx, "owner-1", fixedNow).
		Return(([]domain.Link)(nil), errors.New("db down"))

	page, err := suite.service.GetPublicProfile(ctx, "acme")

	assert.Nil(t, page)
	assert.Error(t, err)
	suite.profiles.AssertNotCalled(t, "IncrementProfileViews")
}

func TestSubmitContact(t *testing.T) {
	suite := setupProfileServiceTest(t)
	ctx := context.Background()

	var stored *domain.ContactMessage
	suite.profiles.On("FindBySlug", ctx, "acme-agency").
		Return(&domain.User{ID: "owner-1", Slug: "acme-agency"}, nil)
	suite.profiles.On("CreateContactMessage", ctx, mock.AnythingOfType("*domain.ContactMessage")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.ContactMessage) }).
		Return(nil)

	err := suite.service.SubmitContact(ctx, "acme-agency", &domain.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})

	assert.NoError(t, err)
	assert.Equal(t, "owner-1", stored.OwnerID)
	assert.Equal(t, "Hello there", stored.Message)
	assert.NotEmpty(t, stored.ID)
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	suite := setupProfileServiceTest(t)

	err := suite.service.SubmitContact(context.Background(), "acme-agency", &domain.ContactRequest{
		Name:    "Visitor",
		Email:   "nope",
		Message: "Hello",
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	suite.profiles.AssertNotCalled(t, "CreateContactMessage")
}
