package services

import (
	"context"

	"github.com/yigit/campus/internal/app/models"
)

// Transactor runs fn inside a single database transaction carried by the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CollegeStore persists colleges
type CollegeStore interface {
	Save(ctx context.Context, college *models.College) (*models.College, error)
	SaveAll(ctx context.Context, colleges []*models.College) ([]*models.College, error)
	FindAll(ctx context.Context) ([]*models.College, error)
	FindByID(ctx context.Context, id int64) (*models.College, error)
	FindByName(ctx context.Context, name string) (*models.College, error)
	FindByAddress(ctx context.Context, address string) (*models.College, error)
	Delete(ctx context.Context, college *models.College) error
}

// CollegeFinder is the read side of CollegeStore needed to resolve a department's college.
type CollegeFinder interface {
	FindByID(ctx context.Context, id int64) (*models.College, error)
}

// DepartmentStore persists departments
type DepartmentStore interface {
	Save(ctx context.Context, department *models.Department) (*models.Department, error)
	SaveAll(ctx context.Context, departments []*models.Department) ([]*models.Department, error)
	FindAll(ctx context.Context) ([]*models.Department, error)
	FindByID(ctx context.Context, id int64) (*models.Department, error)
	FindByName(ctx context.Context, name string) (*models.Department, error)
	FindByCode(ctx context.Context, code string) (*models.Department, error)
	FindByCollegeID(ctx context.Context, collegeID int64) ([]*models.Department, error)
	Delete(ctx context.Context, department *models.Department) error
}

// DepartmentFinder is the read side of DepartmentStore needed to resolve a member's department.
type DepartmentFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Department, error)
}

// DepartmentCounter reports how many departments reference a college.
type DepartmentCounter interface {
	CountByCollegeID(ctx context.Context, collegeID int64) (int64, error)
}

// MemberCounter reports how many students or teachers reference a department.
type MemberCounter interface {
	CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error)
}

// StudentStore persists students
type StudentStore interface {
	Save(ctx context.Context, student *models.Student) (*models.Student, error)
	SaveAll(ctx context.Context, students []*models.Student) ([]*models.Student, error)
	FindAll(ctx context.Context) ([]*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	FindByName(ctx context.Context, name string) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error)
	Delete(ctx context.Context, student *models.Student) error
}

// TeacherStore persists teachers
type TeacherStore interface {
	Save(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	SaveAll(ctx context.Context, teachers []*models.Teacher) ([]*models.Teacher, error)
	FindAll(ctx context.Context) ([]*models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	FindByName(ctx context.Context, name string) (*models.Teacher, error)
	FindByDegree(ctx context.Context, degree string) ([]*models.Teacher, error)
	FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Teacher, error)
	Delete(ctx context.Context, teacher *models.Teacher) error
}
