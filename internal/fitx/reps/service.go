package reps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/metrics"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reps_test

type Repository interface {
	AddRep(ctx context.Context, rep RepRecord) error
	VideoSubmissionExists(ctx context.Context, videoID string) (bool, error)
	SumAttemptedReps(ctx context.Context, userID, liftType string, window Window) (total int, count int, err error)
}

type ServiceParams struct {
	Repo Repository
	// rejects records with more good reps than attempted ones
	EnforceGoodRepsLeAttempted bool
	// called after every stored rep, used to drop cached leaderboards
	OnRepAdded     func(ctx context.Context)
	MetricsManager *metrics.Manager
}

type Service struct {
	repo                       Repository
	enforceGoodRepsLeAttempted bool
	onRepAdded                 func(ctx context.Context)
	metricsManager             *metrics.Manager
	newID                      func() string
	now                        func() time.Time
}

func NewService(params ServiceParams) *Service {
	return &Service{
		repo:                       params.Repo,
		enforceGoodRepsLeAttempted: params.EnforceGoodRepsLeAttempted,
		onRepAdded:                 params.OnRepAdded,
		metricsManager:             params.MetricsManager,
		newID:                      uuid.NewString,
		now:                        time.Now,
	}
}

// AddRep stores one rep record per video. A second submission for the same video is ErrDuplicateVideo.
func (s *Service) AddRep(ctx context.Context, req AddRepRequest) (_ *RepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reps.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rep, err := s.newRepRecord(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("rep.video_id", rep.VideoID))

	submitted, err := s.repo.VideoSubmissionExists(ctx, rep.VideoID)
	if err != nil {
		return nil, fmt.Errorf("check video submission: %w", err)
	}
	if submitted {
		return nil, ErrDuplicateVideo
	}

	if err := s.repo.AddRep(ctx, rep); err != nil {
		if errors.Is(err, ErrDuplicateVideo) {
			return nil, err
		}
		return nil, fmt.Errorf("add rep: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRepsAdded.WithLabelValues(rep.LiftType).Inc()
	}
	if s.onRepAdded != nil {
		s.onRepAdded(ctx)
	}
	log.Debugf("rep added for user [%s], video [%s]", rep.UserID, rep.VideoID)

	return &rep, nil
}

func (s *Service) newRepRecord(req AddRepRequest) (RepRecord, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.VideoID = strings.TrimSpace(req.VideoID)
	req.LiftType = strings.TrimSpace(req.LiftType)

	switch {
	case req.UserID == "":
		return RepRecord{}, validation.Invalid("userID is mandatory")
	case req.VideoID == "":
		return RepRecord{}, validation.Invalid("videoID is mandatory")
	case req.LiftType == "":
		return RepRecord{}, validation.Invalid("liftType is mandatory")
	case req.AttemptedReps == nil || req.GoodReps == nil:
		return RepRecord{}, validation.Invalid("attemptedReps and goodReps are mandatory")
	case *req.AttemptedReps < 0 || *req.GoodReps < 0:
		return RepRecord{}, validation.Invalid("rep counts cannot be negative")
	case s.enforceGoodRepsLeAttempted && *req.GoodReps > *req.AttemptedReps:
		return RepRecord{}, validation.Invalid("goodReps cannot exceed attemptedReps")
	}

	now := s.now().UTC()
	date := now
	if req.Date != "" {
		parsed, err := ParseReferenceDate(req.Date)
		if err != nil {
			return RepRecord{}, validation.Invalid("%s", err)
		}
		date = parsed.UTC()
	}

	return RepRecord{
		ID:            s.newID(),
		UserID:        req.UserID,
		VideoID:       req.VideoID,
		LiftType:      req.LiftType,
		AttemptedReps: *req.AttemptedReps,
		GoodReps:      *req.GoodReps,
		Date:          date,
		CreatedAt:     now,
	}, nil
}

// WeeklyTotal sums the attempted reps of the week containing ref.
// An empty week is ErrNoRepsInWindow, not a zero total.
func (s *Service) WeeklyTotal(ctx context.Context, userID, liftType string, ref time.Time) (_ *WeeklyTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reps.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window := WeekWindow(ref)
	span.SetAttributes(
		attribute.String("window.from", window.From.Format(time.RFC3339)),
		attribute.String("window.to", window.To.Format(time.RFC3339)),
	)

	total, count, err := s.repo.SumAttemptedReps(ctx, userID, liftType, window)
	if err != nil {
		return nil, fmt.Errorf("sum attempted reps: %w", err)
	}
	if count == 0 {
		return nil, ErrNoRepsInWindow
	}

	return &WeeklyTotal{
		UserID:             userID,
		TotalAttemptedReps: total,
	}, nil
}
