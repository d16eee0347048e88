package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

const (
	msgStudentNeedsDepartment       = "Student must be associated with a valid Department ID."
	msgEachStudentNeedsDepartment   = "Each student in the list must be associated with a valid Department ID."
	msgStudentNeedsDepartmentUpdate = "Student must be associated with a valid Department ID during update."
)

// StudentService handles student-related operations
type StudentService struct {
	students    StudentStore
	departments DepartmentFinder
	tx          Transactor
	log         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, departments DepartmentFinder, tx Transactor, log zerolog.Logger) *StudentService {
	return &StudentService{
		students:    students,
		departments: departments,
		tx:          tx,
		log:         log,
	}
}

func studentNotFound(id int64) string {
	return fmt.Sprintf("Student not found with ID: %d", id)
}

func (s *StudentService) resolveDepartment(ctx context.Context, student *models.Student, missingMsg, notFoundMsg string) error {
	department, err := resolveParent(ctx, s.departments.FindByID, student.DepartmentID(), missingMsg, notFoundMsg)
	if err != nil {
		return err
	}
	student.Department = department
	return nil
}

// save persists the student, turning store-level rejections into application errors.
func (s *StudentService) save(ctx context.Context, student *models.Student, parentMsg string) (*models.Student, error) {
	saved, err := s.students.Save(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Student with email %s already exists", student.Email))
		}
		return nil, parentGone(err, parentMsg)
	}
	return saved, nil
}

// CreateStudent stores a new student under an existing department
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	s.log.Info().Str("name", student.Name).Msg("Saving single student")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for student %s", student.DepartmentID(), student.Name)
	var saved *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolveDepartment(ctx, student, msgStudentNeedsDepartment, notFoundMsg); err != nil {
			return err
		}
		student.ID = 0
		var err error
		saved, err = s.save(ctx, student, notFoundMsg)
		return err
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// CreateStudents resolves every department reference before any student is stored.
// Either all students are stored or none.
func (s *StudentService) CreateStudents(ctx context.Context, students []*models.Student) ([]*models.Student, error) {
	s.log.Info().Int("count", len(students)).Msg("Saving multiple students")

	var saved []*models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, student := range students {
			notFoundMsg := fmt.Sprintf("Department not found with ID: %d for student %s", student.DepartmentID(), student.Name)
			if err := s.resolveDepartment(ctx, student, msgEachStudentNeedsDepartment, notFoundMsg); err != nil {
				return err
			}
			student.ID = 0
		}
		var err error
		saved, err = s.students.SaveAll(ctx, students)
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return apperrors.NewConflictError("Student batch contains an email that already exists")
		}
		return parentGone(err, "Department not found for student batch")
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return emptyIfNil(saved), nil
}

// GetAllStudents returns every student with its department chain
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	s.log.Debug().Msg("Fetching all students")

	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return emptyIfNil(students), nil
}

// GetStudentByID returns the student with the given id
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	s.log.Debug().Int64("studentID", id).Msg("Fetching student by ID")

	student, err := findOrNotFound(ctx, s.students.FindByID, id, studentNotFound(id))
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return student, nil
}

// GetStudentByName returns the first student with the given name
func (s *StudentService) GetStudentByName(ctx context.Context, name string) (*models.Student, error) {
	s.log.Debug().Str("name", name).Msg("Fetching student by name")

	student, err := findOrNotFound(ctx, s.students.FindByName, name, "Student not found with name: "+name)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return student, nil
}

// GetStudentByEmail returns the student with the given email
func (s *StudentService) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	s.log.Debug().Str("email", email).Msg("Fetching student by email")

	student, err := findOrNotFound(ctx, s.students.FindByEmail, email, "Student not found with email: "+email)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return student, nil
}

// GetStudentsByDepartmentID returns the students of a department, empty when there are none
func (s *StudentService) GetStudentsByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	s.log.Debug().Int64("departmentID", departmentID).Msg("Fetching students by department ID")

	students, err := s.students.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	if len(students) == 0 {
		s.log.Info().Int64("departmentID", departmentID).Msg("No students found for department")
	}
	return emptyIfNil(students), nil
}

// UpdateStudent replaces name, email and department of an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, student *models.Student) (*models.Student, error) {
	s.log.Info().Int64("studentID", id).Msg("Updating student")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for student update.", student.DepartmentID())
	var saved *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.students.FindByID, id, studentNotFound(id))
		if err != nil {
			return err
		}
		existing.Name = student.Name
		existing.Email = student.Email
		existing.Department = student.Department
		if err := s.resolveDepartment(ctx, existing, msgStudentNeedsDepartmentUpdate, notFoundMsg); err != nil {
			return err
		}
		saved, err = s.save(ctx, existing, notFoundMsg)
		return err
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// PatchStudent replaces the non-empty fields of an existing student.
// The department only changes when a reference with an id is supplied.
func (s *StudentService) PatchStudent(ctx context.Context, id int64, patch *models.Student) (*models.Student, error) {
	s.log.Info().Int64("studentID", id).Msg("Patching student")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for student patch.", patch.DepartmentID())
	var saved *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.students.FindByID, id, studentNotFound(id))
		if err != nil {
			return err
		}
		mergeString(&existing.Name, patch.Name)
		mergeString(&existing.Email, patch.Email)
		if patch.DepartmentID() > 0 {
			department, err := findOrNotFound(ctx, s.departments.FindByID, patch.DepartmentID(), notFoundMsg)
			if err != nil {
				return err
			}
			existing.Department = department
		}
		saved, err = s.save(ctx, existing, notFoundMsg)
		return err
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// DeleteStudent removes a student and returns the removed record
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	s.log.Info().Int64("studentID", id).Msg("Deleting student")

	var deleted *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.students.FindByID, id, studentNotFound(id))
		if err != nil {
			return err
		}
		if err := s.students.Delete(ctx, existing); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(studentNotFound(id))
			}
			return fmt.Errorf("error deleting student: %w", err)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}

	s.log.Info().Int64("studentID", id).Msg("Successfully deleted student")
	return deleted, nil
}
