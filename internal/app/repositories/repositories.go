package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus/internal/db"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrHasDependents is returned when a delete is blocked by referencing rows.
	ErrHasDependents = errors.New("record is still referenced")
	// ErrParentMissing is returned when a write references a parent row that does not exist.
	ErrParentMissing = errors.New("referenced parent does not exist")
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository    *CollegeRepository
	DepartmentRepository *DepartmentRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:    NewCollegeRepository(pool),
		DepartmentRepository: NewDepartmentRepository(pool),
		StudentRepository:    NewStudentRepository(pool),
		TeacherRepository:    NewTeacherRepository(pool),
	}
}

// base carries what every repository needs: the pool and a dollar-placeholder builder.
type base struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

func newBase(pool *pgxpool.Pool) base {
	return base{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// conn returns the transaction carried by ctx, or the pool.
func (b base) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, b.pool)
}

// inTx runs fn inside the transaction carried by ctx, or inside a fresh one.
func (b base) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := db.TxFromContext(ctx); ok {
		return fn(ctx)
	}
	return pgx.BeginFunc(ctx, b.pool, func(tx pgx.Tx) error {
		return fn(db.ContextWithTx(ctx, tx))
	})
}

// count runs a SELECT COUNT(*) built from q.
func (b base) count(ctx context.Context, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := b.conn(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
