package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ali-ismaeel564/fitxAPI/internal/auth"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/metrics"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

// Repository is implemented by the postgres Repo and by the MongoRepo.
type Repository interface {
	AddSignup(ctx context.Context, signup SignupRecord) error
	SignupEmailExists(ctx context.Context, email string) (bool, error)
	GetSignupByEmail(ctx context.Context, email string) (*SignupRecord, error)
	AddProfile(ctx context.Context, profile UserProfile) error
	ProfileEmailExists(ctx context.Context, email string) (bool, error)
	ProfileExists(ctx context.Context, userID string) (bool, error)
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	AddPatch(ctx context.Context, patch ProfilePatch) error
	ListPatches(ctx context.Context, userID string) ([]ProfilePatch, error)
}

type tokenIssuer interface {
	Issue(identity auth.Identity) (string, error)
}

type tokenRevoker interface {
	Revoke(ctx context.Context, claims *auth.Claims) error
}

type ServiceParams struct {
	Repo        Repository
	Tokens      tokenIssuer
	Revocations tokenRevoker
	// called after a profile is stored, the leaderboards join on profiles
	OnProfileCreated func(ctx context.Context)
	MetricsManager   *metrics.Manager
}

type Service struct {
	repo             Repository
	tokens           tokenIssuer
	revocations      tokenRevoker
	onProfileCreated func(ctx context.Context)
	metricsManager   *metrics.Manager
	newID            func() string
	now              func() time.Time
}

func NewService(params ServiceParams) *Service {
	return &Service{
		repo:             params.Repo,
		tokens:           params.Tokens,
		revocations:      params.Revocations,
		onProfileCreated: params.OnProfileCreated,
		metricsManager:   params.MetricsManager,
		newID:            uuid.NewString,
		now:              time.Now,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (_ *SignupRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := strings.TrimSpace(req.Email)
	if !validation.IsValidEmail(email) {
		return nil, validation.Invalid("%s is not valid email", req.Email)
	}
	if req.Password == "" {
		return nil, validation.Invalid("password is mandatory for signup")
	}

	taken, err := s.repo.SignupEmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check signup email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if errors.Is(err, pkg.ErrPasswordTooLong) {
		return nil, validation.Invalid("password too long")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	signup := SignupRecord{
		ID:           s.newID(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.AddSignup(ctx, signup); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("add signup: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSignups.Inc()
	}
	log.Debugf("new signup: %s", signup.ID)

	return &signup, nil
}

// Login checks the credentials against the signup record and issues a token for it.
func (s *Service) Login(ctx context.Context, req LoginRequest) (_ *LoginResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		s.countLogin(err)
	}()

	if req.Email == "" || req.Password == "" {
		return nil, validation.Invalid("email and password are mandatory")
	}

	signup, err := s.repo.GetSignupByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get signup: %w", err)
	}

	if !pkg.CheckPasswordHash(req.Password, signup.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	token, err := s.tokens.Issue(auth.Identity{
		UserID:    signup.ID,
		FirstName: signup.FirstName,
		LastName:  signup.LastName,
		Email:     signup.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:  token,
		UserID: signup.ID,
	}, nil
}

func (s *Service) countLogin(err error) {
	if s.metricsManager == nil {
		return
	}
	outcome := "success"
	if errors.Is(err, ErrWrongCredentials) {
		outcome = "wrong_credentials"
	} else if err != nil {
		outcome = "error"
	}
	s.metricsManager.CounterLogins.WithLabelValues(outcome).Inc()
}

func (s *Service) Logout(ctx context.Context, claims *auth.Claims) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.revocations.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *Service) CreateProfile(ctx context.Context, profile UserProfile) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile.Email = strings.TrimSpace(profile.Email)
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	if profile.UserID == "" {
		return nil, validation.Invalid("userID is mandatory")
	}
	if !validation.IsValidEmail(profile.Email) {
		return nil, validation.Invalid("%s is not valid email", profile.Email)
	}
	if profile.FirstName == "" {
		return nil, validation.Invalid("firstName is mandatory")
	}
	if profile.HeightCm < 0 || profile.WeightKg < 0 {
		return nil, validation.Invalid("height and weight cannot be negative")
	}

	taken, err := s.repo.ProfileEmailExists(ctx, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("check profile email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("'%s' %w", profile.Email, ErrEmailTaken)
	}

	found, err := s.repo.ProfileExists(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if found {
		return nil, ErrUserExists
	}

	now := s.now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if err := s.repo.AddProfile(ctx, profile); err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("add profile: %w", err)
	}

	if s.onProfileCreated != nil {
		s.onProfileCreated(ctx)
	}

	return &profile, nil
}

// GetProfile returns the profile together with the most recent patchup, if any.
func (s *Service) GetProfile(ctx context.Context, userID string) (_ *ProfileView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	patches, err := s.repo.ListPatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list patchups: %w", err)
	}

	view := &ProfileView{UserProfile: *profile}
	if len(patches) > 0 {
		view.LatestPatch = &patches[0]
	}
	return view, nil
}

func (s *Service) AddPatch(ctx context.Context, userID string, req PatchRequest) (_ *ProfilePatch, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.patchup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.HeightCm == nil || req.WeightKg == nil {
		return nil, validation.Invalid("height_cm and weight_kg are mandatory")
	}
	if *req.HeightCm <= 0 || *req.WeightKg <= 0 {
		return nil, validation.Invalid("height_cm and weight_kg must be positive")
	}

	patch := ProfilePatch{
		ID:        s.newID(),
		UserID:    userID,
		HeightCm:  *req.HeightCm,
		WeightKg:  *req.WeightKg,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.AddPatch(ctx, patch); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("add patchup: %w", err)
	}

	return &patch, nil
}

func (s *Service) ListPatches(ctx context.Context, userID string) (_ []ProfilePatch, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.patchup.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	patches, err := s.repo.ListPatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list patchups: %w", err)
	}
	if len(patches) == 0 {
		return nil, ErrNoPatches
	}
	return patches, nil
}
