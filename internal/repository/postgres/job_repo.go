package postgres

import (
	"context"
	"fmt"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

const jobColumns = `id, user_id, title, company, location, job_type, salary_range, description, requirements, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.UserID, job.Title, job.Company, job.Location, job.JobType,
		job.SalaryRange, job.Description, pq.Array(nonNil(job.Requirements)),
		job.CreatedAt, job.UpdatedAt,
	)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return job, nil
}

func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	w := jobWhere(filter)
	var (
		jobs  []domain.Job
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		args := append([]any{}, w.args...)
		query := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
			jobColumns, w, len(args)+1, len(args)+2)
		rows, err := r.db.Query(gctx, query, append(args, limit, offset)...)
		if err != nil {
			return err
		}
		jobs, err = collectJobs(rows)
		return err
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM jobs`+w.String(), w.args...).Scan(&total)
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, company = $3, location = $4, job_type = $5, salary_range = $6,
              description = $7, requirements = $8, updated_at = $9
              WHERE id = $1`
	return affected(r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.JobType, job.SalaryRange,
		job.Description, pq.Array(nonNil(job.Requirements)), job.UpdatedAt,
	))
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id))
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location, &j.JobType,
		&j.SalaryRange, &j.Description, pq.Array(&j.Requirements), &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Requirements = nonNil(j.Requirements)
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}
