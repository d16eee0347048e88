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

// DepartmentRepository handles database operations for departments.
// Every read joins the owning college so callers always get a fully loaded reference.
type DepartmentRepository struct {
	base
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{base: newBase(pool)}
}

var departmentColumns = []string{"d.id", "d.name", "d.code", "c.id", "c.name", "c.address"}

func (r *DepartmentRepository) selectDepartments() squirrel.SelectBuilder {
	return r.sb.Select(departmentColumns...).
		From("departments d").
		Join("colleges c ON c.id = d.college_id")
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	department := newDepartmentChain()
	if err := row.Scan(departmentChainDest(department)...); err != nil {
		return nil, err
	}
	return department, nil
}

// Save inserts the department when it has no id yet, otherwise updates it.
func (r *DepartmentRepository) Save(ctx context.Context, department *models.Department) (*models.Department, error) {
	var (
		sql  string
		args []interface{}
		err  error
	)
	if department.ID == 0 {
		sql, args, err = r.sb.Insert("departments").
			Columns("name", "code", "college_id").
			Values(department.Name, department.Code, department.CollegeID()).
			Suffix("RETURNING id").
			ToSql()
	} else {
		sql, args, err = r.sb.Update("departments").
			SetMap(map[string]interface{}{
				"name":       department.Name,
				"code":       department.Code,
				"college_id": department.CollegeID(),
			}).
			Where(squirrel.Eq{"id": department.ID}).
			Suffix("RETURNING id").
			ToSql()
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error building save department SQL")
		return nil, fmt.Errorf("failed to build save department query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrParentMissing
		}
		logger.Error().Err(err).Str("code", department.Code).Msg("Error executing save department query")
		return nil, fmt.Errorf("error saving department: %w", err)
	}

	return department, nil
}

// SaveAll saves every department in order inside a single transaction.
func (r *DepartmentRepository) SaveAll(ctx context.Context, departments []*models.Department) ([]*models.Department, error) {
	saved := make([]*models.Department, 0, len(departments))
	err := r.inTx(ctx, func(ctx context.Context) error {
		for _, department := range departments {
			d, err := r.Save(ctx, department)
			if err != nil {
				return err
			}
			saved = append(saved, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindAll retrieves all departments
func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*models.Department, error) {
	return r.list(ctx, r.selectDepartments().OrderBy("d.id ASC"))
}

// FindByID retrieves a department by ID
func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.first(ctx, squirrel.Eq{"d.id": id})
}

// FindByName retrieves the first department with the given name
func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*models.Department, error) {
	return r.first(ctx, squirrel.Eq{"d.name": name})
}

// FindByCode retrieves the first department with the given code
func (r *DepartmentRepository) FindByCode(ctx context.Context, code string) (*models.Department, error) {
	return r.first(ctx, squirrel.Eq{"d.code": code})
}

// FindByCollegeID retrieves all departments for a given college
func (r *DepartmentRepository) FindByCollegeID(ctx context.Context, collegeID int64) ([]*models.Department, error) {
	return r.list(ctx, r.selectDepartments().Where(squirrel.Eq{"d.college_id": collegeID}).OrderBy("d.id ASC"))
}

// CountByCollegeID counts the departments referencing a college
func (r *DepartmentRepository) CountByCollegeID(ctx context.Context, collegeID int64) (int64, error) {
	n, err := r.count(ctx, r.sb.Select("COUNT(*)").From("departments").Where(squirrel.Eq{"college_id": collegeID}))
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", collegeID).Msg("Error counting departments")
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return n, nil
}

// Delete deletes a department. Referencing students or teachers block the delete.
func (r *DepartmentRepository) Delete(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrHasDependents
		}
		logger.Error().Err(err).Int64("departmentID", department.ID).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *DepartmentRepository) first(ctx context.Context, where squirrel.Sqlizer) (*models.Department, error) {
	sql, args, err := r.selectDepartments().Where(where).OrderBy("d.id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department, err := scanDepartment(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning department row")
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return department, nil
}

func (r *DepartmentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Department, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}
