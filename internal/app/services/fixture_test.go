package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// ── Test helpers ──

type fixture struct {
	db          *mockDB
	colleges    *CollegeService
	departments *DepartmentService
	students    *StudentService
	teachers    *TeacherService
}

func newFixture() *fixture {
	db := newMockDB()
	collegeRepo := &mockCollegeRepo{db: db}
	departmentRepo := &mockDepartmentRepo{db: db}
	studentRepo := newMockStudentRepo(db)
	teacherRepo := newMockTeacherRepo(db)
	log := zerolog.Nop()

	return &fixture{
		db:          db,
		colleges:    NewCollegeService(collegeRepo, departmentRepo, db, log),
		departments: NewDepartmentService(departmentRepo, collegeRepo, studentRepo, teacherRepo, db, log),
		students:    NewStudentService(studentRepo, departmentRepo, db, log),
		teachers:    NewTeacherService(teacherRepo, departmentRepo, db, log),
	}
}

func (f *fixture) college(t *testing.T, name, address string) *models.College {
	t.Helper()
	c, err := f.colleges.CreateCollege(context.Background(), &models.College{Name: name, Address: address})
	if err != nil {
		t.Fatalf("CreateCollege(%q) failed: %v", name, err)
	}
	return c
}

func (f *fixture) department(t *testing.T, name, code string, collegeID int64) *models.Department {
	t.Helper()
	d, err := f.departments.CreateDepartment(context.Background(), &models.Department{
		Name: name, Code: code, College: &models.College{ID: collegeID},
	})
	if err != nil {
		t.Fatalf("CreateDepartment(%q) failed: %v", name, err)
	}
	return d
}

func (f *fixture) student(t *testing.T, name, email string, departmentID int64) *models.Student {
	t.Helper()
	s, err := f.students.CreateStudent(context.Background(), &models.Student{
		Name: name, Email: email, Department: &models.Department{ID: departmentID},
	})
	if err != nil {
		t.Fatalf("CreateStudent(%q) failed: %v", name, err)
	}
	return s
}

func (f *fixture) teacher(t *testing.T, name, degree string, departmentID int64) *models.Teacher {
	t.Helper()
	tc, err := f.teachers.CreateTeacher(context.Background(), &models.Teacher{
		Name: name, Degree: degree, Department: &models.Department{ID: departmentID},
	})
	if err != nil {
		t.Fatalf("CreateTeacher(%q) failed: %v", name, err)
	}
	return tc
}

func wantKind(t *testing.T, err, kind error, message string) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	if message != "" && err.Error() != message {
		t.Errorf("expected message %q, got %q", message, err.Error())
	}
}

var (
	notFound = apperrors.ErrResourceNotFound
	invalid  = apperrors.ErrInvalidArgument
	conflict = apperrors.ErrConflict
)
