package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// DefaultCollegeName names the college created on an empty database
const DefaultCollegeName = "Campus College"

// CollegeCreator is the part of the college service the seed needs
type CollegeCreator interface {
	GetCollegeByName(ctx context.Context, name string) (*models.College, error)
	CreateCollege(ctx context.Context, college *models.College) (*models.College, error)
}

// DepartmentCreator is the part of the department service the seed needs
type DepartmentCreator interface {
	CreateDepartments(ctx context.Context, departments []*models.Department) ([]*models.Department, error)
}

// CreateDefaultData creates the default college and its departments if the college doesn't exist.
func CreateDefaultData(ctx context.Context, colleges CollegeCreator, departments DepartmentCreator, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (College/Departments)...")

	existing, err := colleges.GetCollegeByName(ctx, DefaultCollegeName)
	switch {
	case err == nil:
		lgr.Info().Int64("collegeID", existing.ID).Msg("Default college already exists, skipping creation")
		return nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		lgr.Error().Err(err).Msg("Error looking up default college")
		return err
	}

	college, err := colleges.CreateCollege(ctx, &models.College{Name: DefaultCollegeName, Address: "1 University Avenue"})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default college")
		return err
	}

	ref := &models.College{ID: college.ID}
	created, err := departments.CreateDepartments(ctx, []*models.Department{
		{Name: "Computer Engineering", Code: "CENG", College: ref},
		{Name: "Electrical Engineering", Code: "EEE", College: ref},
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default departments")
		return err
	}

	lgr.Info().Int64("collegeID", college.ID).Int("departments", len(created)).Msg("Default data created")
	return nil
}
