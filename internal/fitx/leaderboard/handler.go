package leaderboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=leaderboard_test

type leaderboardService interface {
	Top(ctx context.Context, liftType string, limit int) ([]Entry, error)
}

type Handler struct {
	service leaderboardService
}

func NewHandler(service leaderboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard")
	defer span.End()

	liftType := r.URL.Query().Get("liftType")
	// absent or non numeric limit falls back to the default
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	entries, err := handler.service.Top(ctx, liftType, limit)
	switch {
	case err == nil:
		pkg.WriteData(w, http.StatusOK, entries)
	case errors.Is(err, validation.ErrInvalidInput):
		pkg.WriteFail(w, http.StatusBadRequest, validation.Message(err))
	case errors.Is(err, ErrEmptyLeaderboard):
		pkg.WriteFail(w, http.StatusNotFound, "no leaderboard entries found")
	default:
		log.Errorf("failed to get leaderboard for [%s]: %s", liftType, err)
		pkg.WriteFail(w, http.StatusInternalServerError, "failed to get leaderboard")
	}
}
