package postgres

import (
	"errors"
	"fmt"
	"strings"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// mapError converts driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

// affected returns domain.ErrNotFound when a write matched no rows.
func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers a value and returns its placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) and(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func postWhere(filter domain.PostFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.JobType != "" {
		w.and("job_type = " + w.arg(filter.JobType))
	}
	if filter.Location != "" {
		w.and("location = " + w.arg(filter.Location))
	}
	if filter.Search != "" {
		p := w.arg(containsPattern(filter.Search))
		w.and(fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", p, p))
	}
	return w
}

func wallWhere(userID string) *whereBuilder {
	w := &whereBuilder{}
	p := w.arg(userID)
	w.and("user_id <> " + p)
	w.and(fmt.Sprintf("NOT (%s = ANY(liked_by))", p))
	return w
}

func jobWhere(filter domain.JobFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.JobType != "" {
		w.and("job_type = " + w.arg(filter.JobType))
	}
	if filter.Location != "" {
		w.and("location = " + w.arg(filter.Location))
	}
	if filter.Search != "" {
		p := w.arg(containsPattern(filter.Search))
		w.and(fmt.Sprintf("(title ILIKE %s OR company ILIKE %s OR description ILIKE %s)", p, p, p))
	}
	return w
}
