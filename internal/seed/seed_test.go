package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

type fakeColleges struct {
	byName  map[string]*models.College
	lookErr error
	created []*models.College
}

func (f *fakeColleges) GetCollegeByName(_ context.Context, name string) (*models.College, error) {
	if f.lookErr != nil {
		return nil, f.lookErr
	}
	if c, ok := f.byName[name]; ok {
		return c, nil
	}
	return nil, apperrors.NewResourceNotFoundError("College not found with name: " + name)
}

func (f *fakeColleges) CreateCollege(_ context.Context, c *models.College) (*models.College, error) {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return c, nil
}

type fakeDepartments struct {
	created []*models.Department
}

func (f *fakeDepartments) CreateDepartments(_ context.Context, d []*models.Department) ([]*models.Department, error) {
	f.created = append(f.created, d...)
	return d, nil
}

func TestCreateDefaultData_EmptyDatabase(t *testing.T) {
	colleges := &fakeColleges{}
	departments := &fakeDepartments{}

	if err := CreateDefaultData(context.Background(), colleges, departments, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData failed: %v", err)
	}
	if len(colleges.created) != 1 || colleges.created[0].Name != DefaultCollegeName {
		t.Fatalf("expected the default college, got %+v", colleges.created)
	}
	if len(departments.created) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments.created))
	}
	for _, d := range departments.created {
		if d.CollegeID() != colleges.created[0].ID {
			t.Errorf("department %s references college %d", d.Code, d.CollegeID())
		}
	}
}

func TestCreateDefaultData_AlreadySeeded(t *testing.T) {
	colleges := &fakeColleges{byName: map[string]*models.College{DefaultCollegeName: {ID: 7, Name: DefaultCollegeName}}}
	departments := &fakeDepartments{}

	if err := CreateDefaultData(context.Background(), colleges, departments, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData failed: %v", err)
	}
	if len(colleges.created) != 0 || len(departments.created) != 0 {
		t.Error("expected nothing to be created")
	}
}

func TestCreateDefaultData_LookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	colleges := &fakeColleges{lookErr: boom}

	err := CreateDefaultData(context.Background(), colleges, &fakeDepartments{}, zerolog.Nop())
	if !errors.Is(err, boom) {
		t.Errorf("expected lookup error, got %v", err)
	}
	if len(colleges.created) != 0 {
		t.Error("expected nothing to be created")
	}
}
