package reps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ali-ismaeel564/fitxAPI/internal/auth"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reps_test

type repsService interface {
	AddRep(ctx context.Context, req AddRepRequest) (*RepRecord, error)
	WeeklyTotal(ctx context.Context, userID, liftType string, ref time.Time) (*WeeklyTotal, error)
}

type AddRepResponse struct {
	UserRep *RepRecord `json:"userRep"`
}

type Handler struct {
	service repsService
}

func NewHandler(service repsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAddRep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reps.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		pkg.WriteFail(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var req AddRepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add rep, unmarshal json params: %s", err)
		pkg.WriteFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// the body userID wins, the token only fills it in
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		if req.UserID == "" {
			req.UserID = claims.UserID
		} else if req.UserID != claims.UserID {
			log.Warnf("add rep for user [%s] with the token of user [%s]", req.UserID, claims.UserID)
		}
	}

	rep, err := handler.service.AddRep(ctx, req)
	switch {
	case err == nil:
		pkg.WriteData(w, http.StatusCreated, AddRepResponse{UserRep: rep})
	case errors.Is(err, validation.ErrInvalidInput):
		log.Tracef("add rep: %s", err)
		pkg.WriteFail(w, http.StatusBadRequest, validation.Message(err))
	case errors.Is(err, ErrDuplicateVideo):
		pkg.WriteFail(w, http.StatusConflict, "video already submitted")
	default:
		log.Errorf("failed to add rep for video [%s]: %s", req.VideoID, err)
		pkg.WriteFail(w, http.StatusInternalServerError, "failed to add rep")
	}
}

func (handler *Handler) HandleWeeklyLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reps.weekly")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	liftType := strings.TrimSpace(r.URL.Query().Get("liftType"))
	dateParam := r.URL.Query().Get("date")

	if dateParam == "" {
		pkg.WriteFail(w, http.StatusBadRequest, "date is mandatory")
		return
	}
	if userID == "" || liftType == "" {
		pkg.WriteFail(w, http.StatusBadRequest, "userID and liftType are mandatory")
		return
	}

	ref, err := ParseReferenceDate(dateParam)
	if err != nil {
		pkg.WriteFail(w, http.StatusBadRequest, err.Error())
		return
	}

	total, err := handler.service.WeeklyTotal(ctx, userID, liftType, ref)
	switch {
	case err == nil:
		pkg.WriteData(w, http.StatusOK, total)
	case errors.Is(err, ErrNoRepsInWindow):
		pkg.WriteFail(w, http.StatusNotFound, "no reps found for this week")
	default:
		log.Errorf("failed to get weekly lift for user [%s]: %s", userID, err)
		pkg.WriteFail(w, http.StatusInternalServerError, "failed to get weekly lift")
	}
}
