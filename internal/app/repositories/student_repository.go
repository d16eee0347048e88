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

// StudentEmailConstraint is the unique constraint guarding student emails.
const StudentEmailConstraint = "students_email_key"

// ErrDuplicateEmail is returned when a save collides with another student's email.
var ErrDuplicateEmail = errors.New("student email already in use")

// StudentRepository handles student database operations
type StudentRepository struct {
	base
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{base: newBase(pool)}
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	columns := append([]string{"s.id", "s.name", "s.email"}, departmentColumns...)
	return joinDepartmentChain(r.sb.Select(columns...).From("students s"), "s")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{Department: newDepartmentChain()}
	dest := append([]interface{}{&student.ID, &student.Name, &student.Email}, departmentChainDest(student.Department)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return student, nil
}

// Save inserts the student when it has no id yet, otherwise updates it.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) (*models.Student, error) {
	var (
		sql  string
		args []interface{}
		err  error
	)
	if student.ID == 0 {
		sql, args, err = r.sb.Insert("students").
			Columns("name", "email", "department_id").
			Values(student.Name, student.Email, student.DepartmentID()).
			Suffix("RETURNING id").
			ToSql()
	} else {
		sql, args, err = r.sb.Update("students").
			SetMap(map[string]interface{}{
				"name":          student.Name,
				"email":         student.Email,
				"department_id": student.DepartmentID(),
			}).
			Where(squirrel.Eq{"id": student.ID}).
			Suffix("RETURNING id").
			ToSql()
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error building save student SQL")
		return nil, fmt.Errorf("failed to build save student query: %w", err)
	}

	if err := r.conn(ctx).QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		case dberrors.IsDuplicateConstraintError(err, StudentEmailConstraint):
			logger.Warn().Str("email", student.Email).Msg("Attempted to save student with duplicate email")
			return nil, ErrDuplicateEmail
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrParentMissing
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing save student query")
		return nil, fmt.Errorf("error saving student: %w", err)
	}

	return student, nil
}

// SaveAll saves every student in order inside a single transaction.
func (r *StudentRepository) SaveAll(ctx context.Context, students []*models.Student) ([]*models.Student, error) {
	saved := make([]*models.Student, 0, len(students))
	err := r.inTx(ctx, func(ctx context.Context) error {
		for _, student := range students {
			s, err := r.Save(ctx, student)
			if err != nil {
				return err
			}
			saved = append(saved, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindAll retrieves all students
func (r *StudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, r.selectStudents().OrderBy("s.id ASC"))
}

// FindByID retrieves a student by ID
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.first(ctx, squirrel.Eq{"s.id": id})
}

// FindByName retrieves the first student with the given name
func (r *StudentRepository) FindByName(ctx context.Context, name string) (*models.Student, error) {
	return r.first(ctx, squirrel.Eq{"s.name": name})
}

// FindByEmail retrieves the student with the given email
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.first(ctx, squirrel.Eq{"s.email": email})
}

// FindByDepartmentID retrieves all students of a department
func (r *StudentRepository) FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	return r.list(ctx, r.selectStudents().Where(squirrel.Eq{"s.department_id": departmentID}).OrderBy("s.id ASC"))
}

// CountByDepartmentID counts the students of a department
func (r *StudentRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	n, err := r.count(ctx, r.sb.Select("COUNT(*)").From("students").Where(squirrel.Eq{"department_id": departmentID}))
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return n, nil
}

// Delete deletes a student
func (r *StudentRepository) Delete(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *StudentRepository) first(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.selectStudents().Where(where).OrderBy("s.id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
