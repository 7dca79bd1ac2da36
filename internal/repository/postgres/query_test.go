package postgres

import (
	"errors"
	"testing"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostWhere(t *testing.T) {
	t.Run("empty filter has no clause", func(t *testing.T) {
		w := postWhere(domain.PostFilter{})
		assert.Equal(t, "", w.String())
		assert.Empty(t, w.args)
	})

	t.Run("all filters are AND-ed in order", func(t *testing.T) {
		w := postWhere(domain.PostFilter{JobType: "Contract", Location: "Berlin", Search: "go"})
		assert.Equal(t,
			" WHERE job_type = $1 AND location = $2 AND (title ILIKE $3 OR description ILIKE $3)",
			w.String())
		assert.Equal(t, []any{"Contract", "Berlin", "%go%"}, w.args)
	})

	t.Run("search wildcards are matched literally", func(t *testing.T) {
		w := postWhere(domain.PostFilter{Search: `50%_off\`})
		assert.Equal(t, []any{`%50\%\_off\\%`}, w.args)
	})
}

func TestWallWhere(t *testing.T) {
	w := wallWhere("u1")
	assert.Equal(t, " WHERE user_id <> $1 AND NOT ($1 = ANY(liked_by))", w.String())
	assert.Equal(t, []any{"u1"}, w.args)
}

func TestJobWhere(t *testing.T) {
	w := jobWhere(domain.JobFilter{Search: "rust"})
	assert.Equal(t, " WHERE (title ILIKE $1 OR company ILIKE $1 OR description ILIKE $1)", w.String())
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}), domain.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.NewCommandTag("DELETE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, affected(pgconn.NewCommandTag("UPDATE 1"), nil))
}
