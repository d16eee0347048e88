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

// CollegeService handles college-related operations
type CollegeService struct {
	colleges    CollegeStore
	departments DepartmentCounter
	tx          Transactor
	log         zerolog.Logger
}

// NewCollegeService creates a new college service instance
func NewCollegeService(colleges CollegeStore, departments DepartmentCounter, tx Transactor, log zerolog.Logger) *CollegeService {
	return &CollegeService{
		colleges:    colleges,
		departments: departments,
		tx:          tx,
		log:         log,
	}
}

func collegeNotFound(id int64) string {
	return fmt.Sprintf("College not found with ID: %d", id)
}

// CreateCollege stores a new college and returns it with its assigned id
func (s *CollegeService) CreateCollege(ctx context.Context, college *models.College) (*models.College, error) {
	s.log.Info().Str("name", college.Name).Msg("Saving single college")

	var saved *models.College
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		college.ID = 0
		var err error
		saved, err = s.colleges.Save(ctx, college)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating college: %w", err)
	}
	return saved, nil
}

// CreateColleges stores all colleges or none of them
func (s *CollegeService) CreateColleges(ctx context.Context, colleges []*models.College) ([]*models.College, error) {
	s.log.Info().Int("count", len(colleges)).Msg("Saving multiple colleges")

	var saved []*models.College
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, college := range colleges {
			college.ID = 0
		}
		var err error
		saved, err = s.colleges.SaveAll(ctx, colleges)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating colleges: %w", err)
	}
	return emptyIfNil(saved), nil
}

// GetAllColleges returns every college
func (s *CollegeService) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	s.log.Debug().Msg("Fetching all colleges")

	colleges, err := s.colleges.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return emptyIfNil(colleges), nil
}

// GetCollegeByID returns the college with the given id
func (s *CollegeService) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	s.log.Debug().Int64("collegeID", id).Msg("Fetching college by ID")

	college, err := findOrNotFound(ctx, s.colleges.FindByID, id, collegeNotFound(id))
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return college, nil
}

// GetCollegeByName returns the first college with the given name
func (s *CollegeService) GetCollegeByName(ctx context.Context, name string) (*models.College, error) {
	s.log.Debug().Str("name", name).Msg("Fetching college by name")

	college, err := findOrNotFound(ctx, s.colleges.FindByName, name, "College not found with name: "+name)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return college, nil
}

// GetCollegeByAddress returns the first college at the given address
func (s *CollegeService) GetCollegeByAddress(ctx context.Context, address string) (*models.College, error) {
	s.log.Debug().Str("address", address).Msg("Fetching college by address")

	college, err := findOrNotFound(ctx, s.colleges.FindByAddress, address, "College not found with address: "+address)
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return college, nil
}

// UpdateCollege replaces name and address of an existing college
func (s *CollegeService) UpdateCollege(ctx context.Context, id int64, college *models.College) (*models.College, error) {
	s.log.Info().Int64("collegeID", id).Msg("Updating college")

	var saved *models.College
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.colleges.FindByID, id, collegeNotFound(id))
		if err != nil {
			return err
		}
		existing.Name = college.Name
		existing.Address = college.Address
		saved, err = s.colleges.Save(ctx, existing)
		return err
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// PatchCollege replaces only the non-empty fields of an existing college
func (s *CollegeService) PatchCollege(ctx context.Context, id int64, patch *models.College) (*models.College, error) {
	s.log.Info().Int64("collegeID", id).Msg("Patching college")

	var saved *models.College
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.colleges.FindByID, id, collegeNotFound(id))
		if err != nil {
			return err
		}
		mergeString(&existing.Name, patch.Name)
		mergeString(&existing.Address, patch.Address)
		saved, err = s.colleges.Save(ctx, existing)
		return err
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}
	return saved, nil
}

// DeleteCollege removes a college without departments and returns the removed record
func (s *CollegeService) DeleteCollege(ctx context.Context, id int64) (*models.College, error) {
	s.log.Info().Int64("collegeID", id).Msg("Deleting college")

	var deleted *models.College
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := findOrNotFound(ctx, s.colleges.FindByID, id, collegeNotFound(id))
		if err != nil {
			return err
		}

		n, err := s.departments.CountByCollegeID(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting departments: %w", err)
		}
		if n > 0 {
			return apperrors.NewConflictError(apperrors.ErrCollegeHasDepartments.Error())
		}

		if err := s.colleges.Delete(ctx, existing); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError(collegeNotFound(id))
			}
			return deleteGuard(err, apperrors.ErrCollegeHasDepartments)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		warnIfNotFound(s.log, err)
		return nil, err
	}

	s.log.Info().Int64("collegeID", id).Msg("Successfully deleted college")
	return deleted, nil
}
