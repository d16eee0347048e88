package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/logger"
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	base
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{base: newBase(pool)}
}

var collegeColumns = []string{"id", "name", "address"}

func scanCollege(row pgx.Row) (*models.College, error) {
	college := &models.College{}
	if err := row.Scan(&college.ID, &college.Name, &college.Address); err != nil {
		return nil, err
	}
	return college, nil
}

// Save inserts the college when it has no id yet, otherwise updates it in place.
func (r *CollegeRepository) Save(ctx context.Context, college *models.College) (*models.College, error) {
	if college.ID == 0 {
		return r.insert(ctx, college)
	}
	return r.update(ctx, college)
}

func (r *CollegeRepository) insert(ctx context.Context, college *models.College) (*models.College, error) {
	sql, args, err := r.sb.Insert("colleges").
		Columns("name", "address").
		Values(college.Name, college.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create college SQL")
		return nil, fmt.Errorf("failed to build create college query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&college.ID); err != nil {
		logger.Error().Err(err).Str("name", college.Name).Msg("Error executing create college query")
		return nil, fmt.Errorf("error creating college: %w", err)
	}

	return college, nil
}

func (r *CollegeRepository) update(ctx context.Context, college *models.College) (*models.College, error) {
	sql, args, err := r.sb.Update("colleges").
		SetMap(map[string]interface{}{
			"name":    college.Name,
			"address": college.Address,
		}).
		Where(squirrel.Eq{"id": college.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update college SQL")
		return nil, fmt.Errorf("failed to build update college query: %w", err)
	}

	cmdTag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", college.ID).Msg("Error executing update college query")
		return nil, fmt.Errorf("error updating college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return college, nil
}

// SaveAll saves every college in order inside a single transaction.
func (r *CollegeRepository) SaveAll(ctx context.Context, colleges []*models.College) ([]*models.College, error) {
	saved := make([]*models.College, 0, len(colleges))
	err := r.inTx(ctx, func(ctx context.Context) error {
		for _, college := range colleges {
			c, err := r.Save(ctx, college)
			if err != nil {
				return err
			}
			saved = append(saved, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindAll retrieves all colleges ordered by id
func (r *CollegeRepository) FindAll(ctx context.Context) ([]*models.College, error) {
	return r.list(ctx, r.sb.Select(collegeColumns...).From("colleges").OrderBy("id ASC"))
}

// FindByID retrieves a college by ID
func (r *CollegeRepository) FindByID(ctx context.Context, id int64) (*models.College, error) {
	return r.first(ctx, squirrel.Eq{"id": id})
}

// FindByName retrieves the first college with the given name
func (r *CollegeRepository) FindByName(ctx context.Context, name string) (*models.College, error) {
	return r.first(ctx, squirrel.Eq{"name": name})
}

// FindByAddress retrieves the first college with the given address
func (r *CollegeRepository) FindByAddress(ctx context.Context, address string) (*models.College, error) {
	return r.first(ctx, squirrel.Eq{"address": address})
}

// Delete removes the college row. Referencing departments block the delete.
func (r *CollegeRepository) Delete(ctx context.Context, college *models.College) error {
	sql, args, err := r.sb.Delete("colleges").
		Where(squirrel.Eq{"id": college.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete college SQL")
		return fmt.Errorf("failed to build delete college query: %w", err)
	}

	cmdTag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrHasDependents
		}
		logger.Error().Err(err).Int64("collegeID", college.ID).Msg("Error executing delete college query")
		return fmt.Errorf("error deleting college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CollegeRepository) first(ctx context.Context, where squirrel.Sqlizer) (*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get college SQL")
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college, err := scanCollege(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college: %w", err)
	}

	return college, nil
}

func (r *CollegeRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.College, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list colleges SQL")
		return nil, fmt.Errorf("failed to build list colleges query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating college rows")
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}
