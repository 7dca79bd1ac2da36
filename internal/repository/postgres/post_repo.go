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

const postColumns = `id, title, description, user_id, images, image_url, job_type, location, like_count, liked_by, created_at, updated_at`

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO posts (` + postColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Description, post.UserID, pq.Array(nonNil(post.Images)), post.ImageURL,
		post.JobType, post.Location, post.LikeCount, pq.Array(nonNil(post.LikedBy)),
		post.CreatedAt, post.UpdatedAt,
	)
	return mapError(err)
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		return nil, mapError(err)
	}
	return post, nil
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $2, description = $3, images = $4, image_url = $5, job_type = $6,
              location = $7, like_count = $8, liked_by = $9, updated_at = $10
              WHERE id = $1`
	return affected(r.db.Exec(ctx, query,
		post.ID, post.Title, post.Description, pq.Array(nonNil(post.Images)), post.ImageURL, post.JobType,
		post.Location, post.LikeCount, pq.Array(nonNil(post.LikedBy)), post.UpdatedAt,
	))
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id))
}

func (r *postRepo) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, int64, error) {
	return r.page(ctx, postWhere(filter), limit, offset)
}

func (r *postRepo) ListWall(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int64, error) {
	return r.page(ctx, wallWhere(userID), limit, offset)
}

func (r *postRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// page runs the page query and the count query concurrently.
func (r *postRepo) page(ctx context.Context, w *whereBuilder, limit, offset int) ([]domain.Post, int64, error) {
	var (
		posts []domain.Post
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		args := append([]any{}, w.args...)
		query := fmt.Sprintf(`SELECT %s FROM posts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
			postColumns, w, len(args)+1, len(args)+2)
		rows, err := r.db.Query(gctx, query, append(args, limit, offset)...)
		if err != nil {
			return err
		}
		posts, err = collectPosts(rows)
		return err
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, `SELECT COUNT(*) FROM posts`+w.String(), w.args...).Scan(&total)
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.UserID, pq.Array(&p.Images), &p.ImageURL,
		&p.JobType, &p.Location, &p.LikeCount, pq.Array(&p.LikedBy), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Images = nonNil(p.Images)
	p.LikedBy = nonNil(p.LikedBy)
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}
