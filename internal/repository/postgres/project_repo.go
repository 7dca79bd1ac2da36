package postgres

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

const projectColumns = `id, user_id, topic, description, skill, year, created_at, updated_at`

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Topic, p.Description, pq.Array(nonNil(p.Skills)), p.Year, p.CreatedAt, p.UpdatedAt,
	)
	return mapError(err)
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *projectRepo) List(ctx context.Context, limit, offset int) ([]domain.Project, int64, error) {
	var (
		projects []domain.Project
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.db.Query(gctx,
			`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		projects, err = collectProjects(rows)
		return err
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM projects`).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	return affected(r.db.Exec(ctx,
		`UPDATE projects SET topic = $2, description = $3, skill = $4, year = $5, updated_at = $6 WHERE id = $1`,
		p.ID, p.Topic, p.Description, pq.Array(nonNil(p.Skills)), p.Year, p.UpdatedAt,
	))
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id))
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.UserID, &p.Topic, &p.Description, pq.Array(&p.Skills), &p.Year, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Skills = nonNil(p.Skills)
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}
