//go:build integration

package repositories

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/migrations"
	"github.com/yigit/campus/internal/app/models"
)

// newTestRepos connects to TEST_DATABASE_DSN, applies the schema and empties every table.
func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE students, teachers, departments, colleges RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewRepositories(pool)
}

func TestRepositories_ParentChainAndLookups(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	college, err := repos.CollegeRepository.Save(ctx, &models.College{Name: "Tech U", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("save college: %v", err)
	}
	dept, err := repos.DepartmentRepository.Save(ctx, &models.Department{Name: "CS", Code: "CS01", College: &models.College{ID: college.ID}})
	if err != nil {
		t.Fatalf("save department: %v", err)
	}
	loaded, err := repos.DepartmentRepository.FindByID(ctx, dept.ID)
	if err != nil || loaded.College == nil || loaded.College.Name != "Tech U" {
		t.Errorf("expected the college chain on load, got %+v, %v", loaded, err)
	}

	student, err := repos.StudentRepository.Save(ctx, &models.Student{Name: "Ada", Email: "ada@tech.edu", Department: &models.Department{ID: dept.ID}})
	if err != nil {
		t.Fatalf("save student: %v", err)
	}

	found, err := repos.StudentRepository.FindByDepartmentID(ctx, dept.ID)
	if err != nil || len(found) != 1 {
		t.Fatalf("FindByDepartmentID: %d, %v", len(found), err)
	}
	if found[0].Department.College.Address != "1 Main St" {
		t.Errorf("expected full parent chain, got %+v", found[0].Department)
	}

	byEmail, err := repos.StudentRepository.FindByEmail(ctx, "ada@tech.edu")
	if err != nil || byEmail.ID != student.ID {
		t.Errorf("FindByEmail: %+v, %v", byEmail, err)
	}

	if _, err := repos.StudentRepository.FindByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	n, err := repos.StudentRepository.CountByDepartmentID(ctx, dept.ID)
	if err != nil || n != 1 {
		t.Errorf("CountByDepartmentID: %d, %v", n, err)
	}
}

func TestRepositories_ConstraintMapping(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	college, _ := repos.CollegeRepository.Save(ctx, &models.College{Name: "Tech U", Address: "1 Main St"})
	dept, _ := repos.DepartmentRepository.Save(ctx, &models.Department{Name: "CS", Code: "CS01", College: &models.College{ID: college.ID}})

	_, err := repos.DepartmentRepository.Save(ctx, &models.Department{Name: "EE", Code: "EE01", College: &models.College{ID: 999}})
	if !errors.Is(err, ErrParentMissing) {
		t.Errorf("expected ErrParentMissing, got %v", err)
	}

	if _, err := repos.StudentRepository.Save(ctx, &models.Student{Name: "Ada", Email: "ada@tech.edu", Department: &models.Department{ID: dept.ID}}); err != nil {
		t.Fatalf("save student: %v", err)
	}
	_, err = repos.StudentRepository.Save(ctx, &models.Student{Name: "Ada 2", Email: "ada@tech.edu", Department: &models.Department{ID: dept.ID}})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	if err := repos.CollegeRepository.Delete(ctx, college); !errors.Is(err, ErrHasDependents) {
		t.Errorf("expected ErrHasDependents, got %v", err)
	}
	if err := repos.CollegeRepository.Delete(ctx, &models.College{ID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepositories_SaveAllRollsBack(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	college, _ := repos.CollegeRepository.Save(ctx, &models.College{Name: "Tech U", Address: "1 Main St"})
	_, err := repos.DepartmentRepository.SaveAll(ctx, []*models.Department{
		{Name: "CS", Code: "CS01", College: &models.College{ID: college.ID}},
		{Name: "EE", Code: "EE01", College: &models.College{ID: 999}},
	})
	if err == nil {
		t.Fatal("expected the batch to fail")
	}

	all, err := repos.DepartmentRepository.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no departments after rollback, got %d", len(all))
	}
}
