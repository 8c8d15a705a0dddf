package leaderboard

import (
	"context"
	"fmt"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"

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

// Top ranks users by profile weight, then by summed attempted reps, both descending.
// Reps of users without a profile are left out by the inner join.
func (r *Repo) Top(ctx context.Context, liftType string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.leaderboard.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("lift_type", liftType),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				r.user_id,
				COALESCE(p.weight_kg, 0) AS weight,
				r.lift_type,
				SUM(r.attempted_reps) AS total,
				p.first_name || ' ' || p.last_name AS user_name
			FROM user_rep r
			INNER JOIN user_profile p ON p.user_id = r.user_id
			WHERE r.lift_type = $1
			GROUP BY r.user_id, p.weight_kg, r.lift_type, p.first_name, p.last_name
			ORDER BY weight DESC, total DESC, r.user_id ASC
			LIMIT $2;`,
		liftType, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var total int64
		if err := rows.Scan(&e.UserID, &e.Weight, &e.LiftType, &total, &e.UserName); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.TotalAttemptedReps = int(total)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
