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
	msgTeacherNeedsDepartment       = "Teacher must be associated with a valid Department ID."
	msgEachTeacherNeedsDepartment   = "Each teacher in the list must be associated with a valid Department ID."
	msgTeacherNeedsDepartmentUpdate = "Teacher must be associated with a valid Department ID during update."
)

// TeacherService handles teacher-related operations
type TeacherService struct {
	teachers    TeacherStore
	departments DepartmentFinder
	tx          Transactor
	log         zerolog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore, departments DepartmentFinder, tx Transactor, log zerolog.Logger) *TeacherService {
	return &TeacherService{
		teachers:    teachers,
		departments: departments,
		tx:          tx,
		log:         log,
	}
}

func teacherNotFound(id int64) string {
	return fmt.Sprintf("Teacher not found with ID: %d", id)
}

func (s *TeacherService) resolveDepartment(ctx context.Context, teacher *models.Teacher, missingMsg, notFoundMsg string) error {
	department, err := resolveParent(ctx, s.departments.FindByID, teacher.DepartmentID(), missingMsg, notFoundMsg)
	if err != nil {
		return err
	}
	teacher.Department = department
	return nil
}

// CreateTeacher stores a new teacher under an existing department
func (s *TeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	s.log.Info().Str("name", teacher.Name).Msg("Saving single teacher")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for teacher %s", teacher.DepartmentID(), teacher.Name)
	var saved *models.Teacher
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolveDepartment(ctx, teacher, msgTeacherNeedsDepartment, notFoundMsg); err != nil {
			return err
		}
		teacher.ID = 0
		var err error
		saved, err = s.teachers.Save(ctx, teacher)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// CreateTeachers resolves every department reference before any teacher is stored.
// Either all teachers are stored or none.
func (s *TeacherService) CreateTeachers(ctx context.Context, teachers []*models.Teacher) ([]*models.Teacher, error) {
	s.log.Info().Int("count", len(teachers)).Msg("Saving multiple teachers")

	var saved []*models.Teacher
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, teacher := range teachers {
			notFoundMsg := fmt.Sprintf("Department not found with ID: %d for teacher %s", teacher.DepartmentID(), teacher.Name)
			if err := s.resolveDepartment(ctx, teacher, msgEachTeacherNeedsDepartment, notFoundMsg); err != nil {
				return err
			}
			teacher.ID = 0
		}
		var err error
		saved, err = s.teachers.SaveAll(ctx, teachers)
		return parentGone(err, "Department not found for teacher batch")
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return emptyIfNil(saved), nil
}

// GetAllTeachers returns every teacher with its department chain
func (s *TeacherService) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	s.log.Debug().Msg("Fetching all teachers")

	teachers, err := s.teachers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return emptyIfNil(teachers), nil
}

// GetTeacherByID returns the teacher with the given id
func (s *TeacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	s.log.Debug().Int64("teacherID", id).Msg("Fetching teacher by ID")

	teacher, err := findOrNotFound(ctx, s.teachers.FindByID, id, teacherNotFound(id))
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return teacher, nil
}

// GetTeacherByName returns the first teacher with the given name
func (s *TeacherService) GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error) {
	s.log.Debug().Str("name", name).Msg("Fetching teacher by name")

	teacher, err := findOrNotFound(ctx, s.teachers.FindByName, name, "Teacher not found with name: "+name)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return teacher, nil
}

// GetTeachersByDegree returns every teacher holding the degree, empty when there are none
func (s *TeacherService) GetTeachersByDegree(ctx context.Context, degree string) ([]*models.Teacher, error) {
	s.log.Debug().Str("degree", degree).Msg("Fetching teachers by degree")

	teachers, err := s.teachers.FindByDegree(ctx, degree)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	if len(teachers) == 0 {
		s.log.Info().Str("degree", degree).Msg("No teachers found with degree")
	}
	return emptyIfNil(teachers), nil
}

// GetTeachersByDepartmentID returns the teachers of a department, empty when there are none
func (s *TeacherService) GetTeachersByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Teacher, error) {
	s.log.Debug().Int64("departmentID", departmentID).Msg("Fetching teachers by department ID")

	teachers, err := s.teachers.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	if len(teachers) == 0 {
		s.log.Info().Int64("departmentID", departmentID).Msg("No teachers found for department")
	}
	return emptyIfNil(teachers), nil
}

// UpdateTeacher replaces name, degree and department of an existing teacher
func (s *TeacherService) UpdateTeacher(ctx context.Context, id int64, teacher *models.Teacher) (*models.Teacher, error) {
	s.log.Info().Int64("teacherID", id).Msg("Updating teacher")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for teacher update.", teacher.DepartmentID())
	var saved *models.Teacher
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.teachers.FindByID, id, teacherNotFound(id))
		if err != nil {
			return err
		}
		existing.Name = teacher.Name
		existing.Degree = teacher.Degree
		existing.Department = teacher.Department
		if err := s.resolveDepartment(ctx, existing, msgTeacherNeedsDepartmentUpdate, notFoundMsg); err != nil {
			return err
		}
		saved, err = s.teachers.Save(ctx, existing)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// PatchTeacher replaces the non-empty fields of an existing teacher.
// The department only changes when a reference with an id is supplied.
func (s *TeacherService) PatchTeacher(ctx context.Context, id int64, patch *models.Teacher) (*models.Teacher, error) {
	s.log.Info().Int64("teacherID", id).Msg("Patching teacher")

	notFoundMsg := fmt.Sprintf("Department not found with ID: %d for teacher patch.", patch.DepartmentID())
	var saved *models.Teacher
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.teachers.FindByID, id, teacherNotFound(id))
		if err != nil {
			return err
		}
		mergeString(&existing.Name, patch.Name)
		mergeString(&existing.Degree, patch.Degree)
		if patch.DepartmentID() > 0 {
			department, err := findOrNotFound(ctx, s.departments.FindByID, patch.DepartmentID(), notFoundMsg)
			if err != nil {
				return err
			}
			existing.Department = department
		}
		saved, err = s.teachers.Save(ctx, existing)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// DeleteTeacher removes a teacher and returns the removed record
func (s *TeacherService) DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	s.log.Info().Int64("teacherID", id).Msg("Deleting teacher")

	var deleted *models.Teacher
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.teachers.FindByID, id, teacherNotFound(id))
		if err != nil {
			return err
		}
		if err := s.teachers.Delete(ctx, existing); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(teacherNotFound(id))
			}
			return fmt.Errorf("error deleting teacher: %w", err)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}

	s.log.Info().Int64("teacherID", id).Msg("Successfully deleted teacher")
	return deleted, nil
}
