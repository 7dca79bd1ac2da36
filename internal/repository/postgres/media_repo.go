package postgres

import (
	"context"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type mediaRepo struct {
	db *pgxpool.Pool
}

// NewMediaRepository stores media bytes inline in the media table.
func NewMediaRepository(db *pgxpool.Pool) domain.MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) Create(ctx context.Context, media *domain.Media) error {
	query := `INSERT INTO media (id, filename, content_type, data, size, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, media.ID, media.Filename, media.ContentType, media.Data, media.Size, media.CreatedAt)
	return mapError(err)
}

func (r *mediaRepo) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	query := `SELECT id, filename, content_type, data, size, created_at FROM media WHERE id = $1`
	var m domain.Media
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Filename, &m.ContentType, &m.Data, &m.Size, &m.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *mediaRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM media WHERE id = $1`, id))
}
