package postgres

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const experienceColumns = `id, user_id, title, description, from_year, to_year, created_at, updated_at`

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (` + experienceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.Title, e.Description, e.FromYear, e.ToYear, e.CreatedAt, e.UpdatedAt)
	return mapError(err)
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	e, err := scanExperience(r.db.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *experienceRepo) List(ctx context.Context, limit, offset int) ([]domain.Experience, int64, error) {
	var (
		exps  []domain.Experience
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.db.Query(gctx,
			`SELECT `+experienceColumns+` FROM experiences ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		exps, err = collectExperiences(rows)
		return err
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM experiences`).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return exps, total, nil
}

func (r *experienceRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE user_id = $1 ORDER BY from_year DESC, created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectExperiences(rows)
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	return affected(r.db.Exec(ctx,
		`UPDATE experiences SET title = $2, description = $3, from_year = $4, to_year = $5, updated_at = $6 WHERE id = $1`,
		e.ID, e.Title, e.Description, e.FromYear, e.ToYear, e.UpdatedAt,
	))
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id))
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.FromYear, &e.ToYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func collectExperiences(rows pgx.Rows) ([]domain.Experience, error) {
	defer rows.Close()

	exps := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		exps = append(exps, *e)
	}
	return exps, rows.Err()
}
