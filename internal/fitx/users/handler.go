package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ali-ismaeel564/fitxAPI/internal/auth"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupRecord, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	CreateProfile(ctx context.Context, profile UserProfile) (*UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*ProfileView, error)
	AddPatch(ctx context.Context, userID string, req PatchRequest) (*ProfilePatch, error)
	ListPatches(ctx context.Context, userID string) ([]ProfilePatch, error)
}

type Handler struct {
	service usersService
}

func NewHandler(service usersService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.signup")
	defer span.End()

	var req SignupRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	signup, err := handler.service.Signup(ctx, req)
	if err != nil {
		writeServiceError(w, err, "signup")
		return
	}

	pkg.WriteData(w, http.StatusCreated, signup)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	result, err := handler.service.Login(ctx, req)
	if err != nil {
		writeServiceError(w, err, "login")
		return
	}

	pkg.WriteData(w, http.StatusOK, result)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	if err := handler.service.Logout(ctx, claims); err != nil {
		writeServiceError(w, err, "logout")
		return
	}

	log.Debugf("user %s logged out", claims.UserID)
	pkg.WriteJSON(w, http.StatusOK, pkg.Response{Status: pkg.StatusSuccess})
}

// HandleCreateProfile creates the profile for the userID in the body,
// or for the token bearer when the body has none.
func (handler *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile.create")
	defer span.End()

	var profile UserProfile
	if !decodeJSONBody(w, r, &profile) {
		return
	}
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		if profile.UserID == "" {
			profile.UserID = claims.UserID
		} else if profile.UserID != claims.UserID {
			log.Warnf("create profile for user [%s] with the token of user [%s]", profile.UserID, claims.UserID)
		}
	}

	created, err := handler.service.CreateProfile(ctx, profile)
	if err != nil {
		writeServiceError(w, err, "create profile")
		return
	}

	pkg.WriteData(w, http.StatusCreated, created)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile.get")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		pkg.WriteFail(w, http.StatusBadRequest, "userID is mandatory")
		return
	}

	view, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, err, "get profile")
		return
	}

	pkg.WriteData(w, http.StatusOK, view)
}

func (handler *Handler) HandleAddPatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.patchup.add")
	defer span.End()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req PatchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	patch, err := handler.service.AddPatch(ctx, claims.UserID, req)
	if err != nil {
		writeServiceError(w, err, "add patchup")
		return
	}

	pkg.WriteData(w, http.StatusCreated, patch)
}

func (handler *Handler) HandleListPatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.patchup.list")
	defer span.End()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	patches, err := handler.service.ListPatches(ctx, claims.UserID)
	if err != nil {
		writeServiceError(w, err, "list patchups")
		return
	}

	pkg.WriteData(w, http.StatusOK, patches)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if !pkg.IsJSONRequest(r) {
		pkg.WriteFail(w, http.StatusBadRequest, "invalid content type")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("[%s] unmarshal json body: %s", r.URL.Path, err)
		pkg.WriteFail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, validation.ErrInvalidInput):
		log.Tracef("%s: %s", op, err)
		pkg.WriteFail(w, http.StatusBadRequest, validation.Message(err))
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteFail(w, http.StatusConflict, "email already exists")
	case errors.Is(err, ErrUserExists):
		pkg.WriteFail(w, http.StatusConflict, "user already exists")
	case errors.Is(err, ErrWrongCredentials):
		pkg.WriteFail(w, http.StatusUnauthorized, "wrong email or password")
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteFail(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrNoPatches):
		pkg.WriteFail(w, http.StatusNotFound, "no patchups found")
	case errors.Is(err, auth.ErrInvalidToken):
		pkg.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid token"})
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteFail(w, http.StatusInternalServerError, "internal error")
	}
}
