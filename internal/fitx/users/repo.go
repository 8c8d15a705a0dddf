package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var _ Repository = (*Repo)(nil)

// Repo is the postgres users store.
type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSignup(ctx context.Context, signup SignupRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.signup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", signup.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO signup (id, first_name, last_name, email, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		signup.ID, signup.FirstName, signup.LastName, signup.Email, signup.PasswordHash, signup.CreatedAt, signup.UpdatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *Repo) SignupEmailExists(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.signup.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM signup WHERE email = $1);`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("row scan: %w", err)
	}
	return exists, nil
}

func (r *Repo) GetSignupByEmail(ctx context.Context, email string) (_ *SignupRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.signup.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s SignupRecord
	err = r.db.QueryRow(
		ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
			FROM signup WHERE email = $1;`,
		email,
	).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("row scan: %w", err)
	}
	return &s, nil
}

func (r *Repo) AddProfile(ctx context.Context, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", profile.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile (user_id, email, first_name, last_name, height_cm, weight_kg, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		profile.UserID, profile.Email, profile.FirstName, profile.LastName,
		profile.HeightCm, profile.WeightKg, profile.CreatedAt, profile.UpdatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return ErrUserExists
	}
	return err
}

func (r *Repo) ProfileEmailExists(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.email.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_profile WHERE email = $1);`,
		email,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("row scan: %w", err)
	}
	return exists, nil
}

func (r *Repo) ProfileExists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_profile WHERE user_id = $1);`,
		userID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("row scan: %w", err)
	}
	return exists, nil
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var p UserProfile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, email, first_name, last_name, COALESCE(height_cm, 0), COALESCE(weight_kg, 0), created_at, updated_at
			FROM user_profile WHERE user_id = $1;`,
		userID,
	).Scan(&p.UserID, &p.Email, &p.FirstName, &p.LastName, &p.HeightCm, &p.WeightKg, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("row scan: %w", err)
	}
	return &p, nil
}

func (r *Repo) AddPatch(ctx context.Context, patch ProfilePatch) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.patchup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", patch.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_patchup (id, user_id, height_cm, weight_kg, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		patch.ID, patch.UserID, patch.HeightCm, patch.WeightKg, patch.CreatedAt,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrUserNotFound
	}
	return err
}

// ListPatches returns the user's patchups, newest first.
func (r *Repo) ListPatches(ctx context.Context, userID string) (_ []ProfilePatch, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.patchup.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, height_cm, weight_kg, created_at
			FROM user_patchup WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patches []ProfilePatch
	for rows.Next() {
		var p ProfilePatch
		if err := rows.Scan(&p.ID, &p.UserID, &p.HeightCm, &p.WeightKg, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		patches = append(patches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patches, nil
}
