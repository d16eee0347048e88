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
	msgDepartmentNeedsCollege       = "Department must be associated with a valid College ID."
	msgEachDepartmentNeedsCollege   = "Each department in the list must be associated with a valid College ID."
	msgDepartmentNeedsCollegeUpdate = "Department must be associated with a valid College ID during update."
)

// DepartmentService handles department-related operations.
// Every write resolves the referenced college against the college store first.
type DepartmentService struct {
	departments DepartmentStore
	colleges    CollegeFinder
	students    MemberCounter
	teachers    MemberCounter
	tx          Transactor
	log         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments DepartmentStore, colleges CollegeFinder, students, teachers MemberCounter, tx Transactor, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		colleges:    colleges,
		students:    students,
		teachers:    teachers,
		tx:          tx,
		log:         log,
	}
}

func departmentNotFound(id int64) string {
	return fmt.Sprintf("Department not found with ID: %d", id)
}

func (s *DepartmentService) resolveCollege(ctx context.Context, department *models.Department, missingMsg, notFoundMsg string) error {
	college, err := resolveParent(ctx, s.colleges.FindByID, department.CollegeID(), missingMsg, notFoundMsg)
	if err != nil {
		return err
	}
	department.College = college
	return nil
}

// CreateDepartment stores a new department under an existing college
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error) {
	s.log.Info().Str("name", department.Name).Msg("Saving single department")

	notFoundMsg := fmt.Sprintf("College not found with ID: %d for department %s", department.CollegeID(), department.Name)
	var saved *models.Department
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolveCollege(ctx, department, msgDepartmentNeedsCollege, notFoundMsg); err != nil {
			return err
		}
		department.ID = 0
		var err error
		saved, err = s.departments.Save(ctx, department)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// CreateDepartments resolves every college reference before any department is stored.
// Either all departments are stored or none.
func (s *DepartmentService) CreateDepartments(ctx context.Context, departments []*models.Department) ([]*models.Department, error) {
	s.log.Info().Int("count", len(departments)).Msg("Saving multiple departments")

	var saved []*models.Department
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, department := range departments {
			notFoundMsg := fmt.Sprintf("College not found with ID: %d for department %s", department.CollegeID(), department.Name)
			if err := s.resolveCollege(ctx, department, msgEachDepartmentNeedsCollege, notFoundMsg); err != nil {
				return err
			}
			department.ID = 0
		}
		var err error
		saved, err = s.departments.SaveAll(ctx, departments)
		return parentGone(err, "College not found for department batch")
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return emptyIfNil(saved), nil
}

// GetAllDepartments returns every department with its college
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	s.log.Debug().Msg("Fetching all departments")

	departments, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return emptyIfNil(departments), nil
}

// GetDepartmentByID returns the department with the given id
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	s.log.Debug().Int64("departmentID", id).Msg("Fetching department by ID")

	department, err := findOrNotFound(ctx, s.departments.FindByID, id, departmentNotFound(id))
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return department, nil
}

// GetDepartmentByName returns the first department with the given name
func (s *DepartmentService) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	s.log.Debug().Str("name", name).Msg("Fetching department by name")

	department, err := findOrNotFound(ctx, s.departments.FindByName, name, "Department not found with name: "+name)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return department, nil
}

// GetDepartmentByCode returns the first department with the given code
func (s *DepartmentService) GetDepartmentByCode(ctx context.Context, code string) (*models.Department, error) {
	s.log.Debug().Str("code", code).Msg("Fetching department by code")

	department, err := findOrNotFound(ctx, s.departments.FindByCode, code, "Department not found with code: "+code)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return department, nil
}

// GetDepartmentsByCollegeID returns the departments of a college, empty when there are none
func (s *DepartmentService) GetDepartmentsByCollegeID(ctx context.Context, collegeID int64) ([]*models.Department, error) {
	s.log.Debug().Int64("collegeID", collegeID).Msg("Fetching departments by college ID")

	departments, err := s.departments.FindByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	if len(departments) == 0 {
		s.log.Info().Int64("collegeID", collegeID).Msg("No departments found for college")
	}
	return emptyIfNil(departments), nil
}

// UpdateDepartment replaces name, code and college of an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, department *models.Department) (*models.Department, error) {
	s.log.Info().Int64("departmentID", id).Msg("Updating department")

	notFoundMsg := fmt.Sprintf("College not found with ID: %d for department update.", department.CollegeID())
	var saved *models.Department
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.departments.FindByID, id, departmentNotFound(id))
		if err != nil {
			return err
		}
		existing.Name = department.Name
		existing.Code = department.Code
		existing.College = department.College
		if err := s.resolveCollege(ctx, existing, msgDepartmentNeedsCollegeUpdate, notFoundMsg); err != nil {
			return err
		}
		saved, err = s.departments.Save(ctx, existing)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// PatchDepartment replaces the non-empty fields of an existing department.
// The college only changes when a reference with an id is supplied.
func (s *DepartmentService) PatchDepartment(ctx context.Context, id int64, patch *models.Department) (*models.Department, error) {
	s.log.Info().Int64("departmentID", id).Msg("Patching department")

	notFoundMsg := fmt.Sprintf("College not found with ID: %d for department patch.", patch.CollegeID())
	var saved *models.Department
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.departments.FindByID, id, departmentNotFound(id))
		if err != nil {
			return err
		}
		mergeString(&existing.Name, patch.Name)
		mergeString(&existing.Code, patch.Code)
		if patch.CollegeID() > 0 {
			college, err := findOrNotFound(ctx, s.colleges.FindByID, patch.CollegeID(), notFoundMsg)
			if err != nil {
				return err
			}
			existing.College = college
		}
		saved, err = s.departments.Save(ctx, existing)
		return parentGone(err, notFoundMsg)
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// DeleteDepartment removes a department without students or teachers and returns the removed record
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) (*models.Department, error) {
	s.log.Info().Int64("departmentID", id).Msg("Deleting department")

	var deleted *models.Department
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.departments.FindByID, id, departmentNotFound(id))
		if err != nil {
			return err
		}

		for _, members := range []MemberCounter{s.students, s.teachers} {
			n, err := members.CountByDepartmentID(ctx, id)
			if err != nil {
				return fmt.Errorf("error counting department members: %w", err)
			}
			if n > 0 {
				return apperrors.NewConflictError(apperrors.ErrDepartmentHasMembers.Error())
			}
		}

		if err := s.departments.Delete(ctx, existing); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(departmentNotFound(id))
			}
			return deleteGuard(err, apperrors.ErrDepartmentHasMembers)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}

	s.log.Info().Int64("departmentID", id).Msg("Successfully deleted department")
	return deleted, nil
}
