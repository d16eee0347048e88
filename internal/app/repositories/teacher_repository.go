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

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	base
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{base: newBase(pool)}
}

func (r *TeacherRepository) selectTeachers() squirrel.SelectBuilder {
	columns := append([]string{"t.id", "t.name", "t.degree"}, departmentColumns...)
	return joinDepartmentChain(r.sb.Select(columns...).From("teachers t"), "t")
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{Department: newDepartmentChain()}
	dest := append([]interface{}{&teacher.ID, &teacher.Name, &teacher.Degree}, departmentChainDest(teacher.Department)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return teacher, nil
}

// Save inserts the teacher when it has no id yet, otherwise updates it.
func (r *TeacherRepository) Save(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	var (
		sql  string
		args []interface{}
		err  error
	)
	if teacher.ID == 0 {
		sql, args, err = r.sb.Insert("teachers").
			Columns("name", "degree", "department_id").
			Values(teacher.Name, teacher.Degree, teacher.DepartmentID()).
			Suffix("RETURNING id").
			ToSql()
	} else {
		sql, args, err = r.sb.Update("teachers").
			SetMap(map[string]interface{}{
				"name":          teacher.Name,
				"degree":        teacher.Degree,
				"department_id": teacher.DepartmentID(),
			}).
			Where(squirrel.Eq{"id": teacher.ID}).
			Suffix("RETURNING id").
			ToSql()
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error building save teacher SQL")
		return nil, fmt.Errorf("failed to build save teacher query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&teacher.ID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrParentMissing
		}
		logger.Error().Err(err).Str("name", teacher.Name).Msg("Error executing save teacher query")
		return nil, fmt.Errorf("error saving teacher: %w", err)
	}

	return teacher, nil
}

// SaveAll saves every teacher in order inside a single transaction.
func (r *TeacherRepository) SaveAll(ctx context.Context, teachers []*models.Teacher) ([]*models.Teacher, error) {
	saved := make([]*models.Teacher, 0, len(teachers))
	err := r.inTx(ctx, func(ctx context.Context) error {
		for _, teacher := range teachers {
			t, err := r.Save(ctx, teacher)
			if err != nil {
				return err
			}
			saved = append(saved, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindAll retrieves all teachers
func (r *TeacherRepository) FindAll(ctx context.Context) ([]*models.Teacher, error) {
	return r.list(ctx, r.selectTeachers().OrderBy("t.id ASC"))
}

// FindByID retrieves a teacher by ID
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.first(ctx, squirrel.Eq{"t.id": id})
}

// FindByName retrieves the first teacher with the given name
func (r *TeacherRepository) FindByName(ctx context.Context, name string) (*models.Teacher, error) {
	return r.first(ctx, squirrel.Eq{"t.name": name})
}

// FindByDegree retrieves every teacher holding the given degree
func (r *TeacherRepository) FindByDegree(ctx context.Context, degree string) ([]*models.Teacher, error) {
	return r.list(ctx, r.selectTeachers().Where(squirrel.Eq{"t.degree": degree}).OrderBy("t.id ASC"))
}

// FindByDepartmentID retrieves all teachers of a department
func (r *TeacherRepository) FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Teacher, error) {
	return r.list(ctx, r.selectTeachers().Where(squirrel.Eq{"t.department_id": departmentID}).OrderBy("t.id ASC"))
}

// CountByDepartmentID counts the teachers of a department
func (r *TeacherRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	n, err := r.count(ctx, r.sb.Select("COUNT(*)").From("teachers").Where(squirrel.Eq{"department_id": departmentID}))
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return n, nil
}

// Delete deletes a teacher
func (r *TeacherRepository) Delete(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TeacherRepository) first(ctx context.Context, where squirrel.Sqlizer) (*models.Teacher, error) {
	sql, args, err := r.selectTeachers().Where(where).OrderBy("t.id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

func (r *TeacherRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Teacher, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}
