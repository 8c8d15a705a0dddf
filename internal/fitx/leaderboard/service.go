package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/metrics"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/internal/validation"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=leaderboard_test

type Repository interface {
	Top(ctx context.Context, liftType string, limit int) ([]Entry, error)
}

type ServiceParams struct {
	Repo Repository
	// nil disables caching
	Cache          *Cache
	DefaultLimit   int
	MetricsManager *metrics.Manager
}

type Service struct {
	repo           Repository
	cache          *Cache
	defaultLimit   int
	metricsManager *metrics.Manager
}

func NewService(params ServiceParams) *Service {
	return &Service{
		repo:           params.Repo,
		cache:          params.Cache,
		defaultLimit:   params.DefaultLimit,
		metricsManager: params.MetricsManager,
	}
}

// Top returns the ranked leaderboard for liftType. A non positive limit means the default one.
func (s *Service) Top(ctx context.Context, liftType string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	liftType = strings.TrimSpace(liftType)
	if liftType == "" {
		return nil, validation.Invalid("liftType is mandatory")
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	span.SetAttributes(attribute.String("lift_type", liftType), attribute.Int("limit", limit))

	if entries, ok := s.cache.Get(liftType, limit); ok {
		s.countQuery("hit")
		log.Tracef("leaderboard for %s/%d served from cache", liftType, limit)
		return entries, nil
	}
	s.countQuery("miss")

	entries, err := s.repo.Top(ctx, liftType, limit)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyLeaderboard
	}

	s.cache.Set(liftType, limit, entries)
	return entries, nil
}

// Invalidate drops all cached leaderboards. Called whenever a rep is stored.
func (s *Service) Invalidate(_ context.Context) {
	s.cache.Clear()
}

func (s *Service) countQuery(cacheOutcome string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLeaderboardQueries.WithLabelValues(cacheOutcome).Inc()
	}
}
