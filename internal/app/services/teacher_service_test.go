package services

import (
	"context"
	"testing"

	"github.com/yigit/campus/internal/app/models"
)

func TestTeacherService_CreateAndLookups(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")
	cs := f.department(t, "CS", "CS01", c.ID)
	grace := f.teacher(t, "Grace", "PhD", cs.ID)
	f.teacher(t, "Alan", "PhD", cs.ID)
	f.teacher(t, "Edsger", "MSc", cs.ID)

	got, err := f.teachers.GetTeacherByID(ctx, grace.ID)
	if err != nil {
		t.Fatalf("GetTeacherByID failed: %v", err)
	}
	if got.Name != "Grace" || got.Degree != "PhD" || got.Department.College.Name != "Tech U" {
		t.Errorf("unexpected teacher: %+v", got)
	}

	phds, err := f.teachers.GetTeachersByDegree(ctx, "PhD")
	if err != nil || len(phds) != 2 {
		t.Fatalf("GetTeachersByDegree: got %d, %v", len(phds), err)
	}

	for _, degree := range []string{"DSc", "phd"} {
		none, err := f.teachers.GetTeachersByDegree(ctx, degree)
		if err != nil {
			t.Fatalf("GetTeachersByDegree(%q) failed: %v", degree, err)
		}
		if none == nil || len(none) != 0 {
			t.Errorf("expected empty list for %q, got %#v", degree, none)
		}
	}

	byDept, err := f.teachers.GetTeachersByDepartmentID(ctx, cs.ID)
	if err != nil || len(byDept) != 3 {
		t.Fatalf("GetTeachersByDepartmentID: got %d, %v", len(byDept), err)
	}
	empty, err := f.teachers.GetTeachersByDepartmentID(ctx, 999)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected empty list, got %#v, %v", empty, err)
	}

	byName, err := f.teachers.GetTeacherByName(ctx, "Alan")
	if err != nil || byName.Degree != "PhD" {
		t.Fatalf("GetTeacherByName: got %+v, %v", byName, err)
	}
	_, err = f.teachers.GetTeacherByName(ctx, "Nobody")
	wantKind(t, err, notFound, "Teacher not found with name: Nobody")

	all, err := f.teachers.GetAllTeachers(ctx)
	if err != nil || len(all) != 3 {
		t.Errorf("GetAllTeachers: got %d, %v", len(all), err)
	}
}

func TestTeacherService_Create_ParentErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.teachers.CreateTeacher(ctx, &models.Teacher{Name: "Grace", Degree: "PhD", Department: &models.Department{ID: 999}})
	wantKind(t, err, notFound, "Department not found with ID: 999 for teacher Grace")

	_, err = f.teachers.CreateTeacher(ctx, &models.Teacher{Name: "Grace", Degree: "PhD"})
	wantKind(t, err, invalid, "Teacher must be associated with a valid Department ID.")

	if len(f.db.teachers) != 0 {
		t.Errorf("expected nothing persisted, got %d", len(f.db.teachers))
	}
}

func TestTeacherService_CreateTeachers_AllOrNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")
	cs := f.department(t, "CS", "CS01", c.ID)

	_, err := f.teachers.CreateTeachers(ctx, []*models.Teacher{
		{Name: "Grace", Degree: "PhD", Department: &models.Department{ID: cs.ID}},
		{Name: "Alan", Degree: "PhD", Department: &models.Department{ID: cs.ID}},
		{Name: "Bad", Degree: "BSc", Department: &models.Department{ID: 999}},
	})
	wantKind(t, err, notFound, "Department not found with ID: 999 for teacher Bad")
	if len(f.db.teachers) != 0 {
		t.Fatalf("expected zero teachers persisted, got %d", len(f.db.teachers))
	}

	_, err = f.teachers.CreateTeachers(ctx, []*models.Teacher{
		{Name: "Grace", Degree: "PhD", Department: &models.Department{}},
	})
	wantKind(t, err, invalid, "Each teacher in the list must be associated with a valid Department ID.")

	saved, err := f.teachers.CreateTeachers(ctx, []*models.Teacher{
		{Name: "Grace", Degree: "PhD", Department: &models.Department{ID: cs.ID}},
		{Name: "Alan", Degree: "PhD", Department: &models.Department{ID: cs.ID}},
	})
	if err != nil {
		t.Fatalf("CreateTeachers failed: %v", err)
	}
	if len(saved) != 2 || saved[0].Department.Name != "CS" {
		t.Errorf("unexpected batch result: %+v", saved)
	}
}

func TestTeacherService_UpdatePatchDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")
	cs := f.department(t, "CS", "CS01", c.ID)
	ee := f.department(t, "EE", "EE01", c.ID)
	tc := f.teacher(t, "Grace", "MSc", cs.ID)

	_, err := f.teachers.UpdateTeacher(ctx, tc.ID, &models.Teacher{Name: "Grace H", Degree: "PhD"})
	wantKind(t, err, invalid, "Teacher must be associated with a valid Department ID during update.")

	_, err = f.teachers.UpdateTeacher(ctx, tc.ID, &models.Teacher{Name: "Grace H", Degree: "PhD", Department: &models.Department{ID: 999}})
	wantKind(t, err, notFound, "Department not found with ID: 999 for teacher update.")

	updated, err := f.teachers.UpdateTeacher(ctx, tc.ID, &models.Teacher{Name: "Grace H", Degree: "PhD", Department: &models.Department{ID: ee.ID}})
	if err != nil {
		t.Fatalf("UpdateTeacher failed: %v", err)
	}
	if updated.Name != "Grace H" || updated.Degree != "PhD" || updated.Department.Code != "EE01" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	patched, err := f.teachers.PatchTeacher(ctx, tc.ID, &models.Teacher{Degree: "DSc"})
	if err != nil {
		t.Fatalf("PatchTeacher failed: %v", err)
	}
	if patched.Name != "Grace H" || patched.Degree != "DSc" || patched.DepartmentID() != ee.ID {
		t.Errorf("unexpected patch result: %+v", patched)
	}

	patched, err = f.teachers.PatchTeacher(ctx, tc.ID, &models.Teacher{Department: &models.Department{ID: cs.ID}})
	if err != nil {
		t.Fatalf("PatchTeacher department failed: %v", err)
	}
	if patched.DepartmentID() != cs.ID || patched.Degree != "DSc" {
		t.Errorf("unexpected department patch result: %+v", patched)
	}

	_, err = f.teachers.PatchTeacher(ctx, tc.ID, &models.Teacher{Department: &models.Department{ID: 999}})
	wantKind(t, err, notFound, "Department not found with ID: 999 for teacher patch.")

	deleted, err := f.teachers.DeleteTeacher(ctx, tc.ID)
	if err != nil {
		t.Fatalf("DeleteTeacher failed: %v", err)
	}
	if deleted.Degree != "DSc" {
		t.Errorf("expected the pre-deletion record, got %+v", deleted)
	}
	_, err = f.teachers.GetTeacherByID(ctx, tc.ID)
	wantKind(t, err, notFound, teacherNotFound(tc.ID))
	_, err = f.teachers.DeleteTeacher(ctx, tc.ID)
	wantKind(t, err, notFound, "")
}
