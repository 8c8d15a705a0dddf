package reps

import (
	"context"
	"fmt"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"go.opentelemetry.io/otel/attribute"
)

var _ Repository = (*Repo)(nil)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddRep(ctx context.Context, rep RepRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reps.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("rep.video_id", rep.VideoID),
		attribute.String("rep.lift_type", rep.LiftType),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_rep (id, user_id, video_id, lift_type, attempted_reps, good_reps, date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		rep.ID, rep.UserID, rep.VideoID, rep.LiftType, rep.AttemptedReps, rep.GoodReps, rep.Date, rep.CreatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return ErrDuplicateVideo
	}
	return err
}

func (r *Repo) VideoSubmissionExists(ctx context.Context, videoID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reps.video.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_rep WHERE video_id = $1);`,
		videoID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("row scan: %w", err)
	}
	return exists, nil
}

// SumAttemptedReps sums attempted reps of the user's lift type within the window, bounds included.
// count is the number of records summed.
func (r *Repo) SumAttemptedReps(
	ctx context.Context,
	userID, liftType string,
	window Window,
) (total int, count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reps.sum")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("rep.lift_type", liftType),
	)

	var sum, cnt int64
	if err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(attempted_reps), 0), COUNT(*)
			FROM user_rep
			WHERE user_id = $1 AND lift_type = $2 AND date BETWEEN $3 AND $4;`,
		userID, liftType, window.From, window.To,
	).Scan(&sum, &cnt); err != nil {
		return 0, 0, fmt.Errorf("row scan: %w", err)
	}

	return int(sum), int(cnt), nil
}
