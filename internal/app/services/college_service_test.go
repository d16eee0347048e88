package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/campus/internal/app/models"
)

func TestCollegeService_Create_ThenGetByID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created := f.college(t, "Tech U", "1 Main St")
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}

	got, err := f.colleges.GetCollegeByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCollegeByID failed: %v", err)
	}
	if *got != (models.College{ID: created.ID, Name: "Tech U", Address: "1 Main St"}) {
		t.Errorf("unexpected college: %+v", got)
	}
}

func TestCollegeService_Create_IgnoresClientID(t *testing.T) {
	f := newFixture()

	created, err := f.colleges.CreateCollege(context.Background(), &models.College{ID: 42, Name: "Tech U", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("CreateCollege failed: %v", err)
	}
	if created.ID == 42 {
		t.Error("expected the store to assign the id")
	}
}

func TestCollegeService_CreateColleges(t *testing.T) {
	f := newFixture()

	saved, err := f.colleges.CreateColleges(context.Background(), []*models.College{
		{Name: "Tech U", Address: "1 Main St"},
		{Name: "Arts U", Address: "2 Side St"},
	})
	if err != nil {
		t.Fatalf("CreateColleges failed: %v", err)
	}
	if len(saved) != 2 || saved[0].ID == 0 || saved[1].ID == 0 {
		t.Fatalf("expected two colleges with ids, got %+v", saved)
	}
}

func TestCollegeService_CreateColleges_StoreFailureKeepsNone(t *testing.T) {
	f := newFixture()
	f.db.failAfter = 2

	_, err := f.colleges.CreateColleges(context.Background(), []*models.College{
		{Name: "Tech U", Address: "1 Main St"},
		{Name: "Arts U", Address: "2 Side St"},
	})
	if !errors.Is(err, errInjected) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	if len(f.db.colleges) != 0 {
		t.Errorf("expected no colleges persisted, got %d", len(f.db.colleges))
	}
}

func TestCollegeService_GetAll_EmptyIsNotNil(t *testing.T) {
	f := newFixture()

	colleges, err := f.colleges.GetAllColleges(context.Background())
	if err != nil {
		t.Fatalf("GetAllColleges failed: %v", err)
	}
	if colleges == nil || len(colleges) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", colleges)
	}
}

func TestCollegeService_GetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.colleges.GetCollegeByID(context.Background(), 999)
	wantKind(t, err, notFound, "College not found with ID: 999")
}

func TestCollegeService_GetByName_ReturnsLowestID(t *testing.T) {
	f := newFixture()
	first := f.college(t, "Tech U", "1 Main St")
	f.college(t, "Tech U", "9 Other St")

	got, err := f.colleges.GetCollegeByName(context.Background(), "Tech U")
	if err != nil {
		t.Fatalf("GetCollegeByName failed: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("expected id %d, got %d", first.ID, got.ID)
	}

	_, err = f.colleges.GetCollegeByName(context.Background(), "tech u")
	wantKind(t, err, notFound, "College not found with name: tech u")
}

func TestCollegeService_GetByAddress(t *testing.T) {
	f := newFixture()
	c := f.college(t, "Tech U", "1 Main St")

	got, err := f.colleges.GetCollegeByAddress(context.Background(), "1 Main St")
	if err != nil {
		t.Fatalf("GetCollegeByAddress failed: %v", err)
	}
	if got.ID != c.ID {
		t.Errorf("expected id %d, got %d", c.ID, got.ID)
	}

	_, err = f.colleges.GetCollegeByAddress(context.Background(), "nowhere")
	wantKind(t, err, notFound, "")
}

func TestCollegeService_Update(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")

	updated, err := f.colleges.UpdateCollege(ctx, c.ID, &models.College{Name: "Tech University", Address: "5 New Rd"})
	if err != nil {
		t.Fatalf("UpdateCollege failed: %v", err)
	}
	if updated.Name != "Tech University" || updated.Address != "5 New Rd" || updated.ID != c.ID {
		t.Errorf("unexpected update result: %+v", updated)
	}

	_, err = f.colleges.UpdateCollege(ctx, 999, &models.College{Name: "X U", Address: "5 New Rd"})
	wantKind(t, err, notFound, "College not found with ID: 999")
}

func TestCollegeService_Patch_PerField(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")

	patched, err := f.colleges.PatchCollege(ctx, c.ID, &models.College{Address: "7 Elm St"})
	if err != nil {
		t.Fatalf("PatchCollege failed: %v", err)
	}
	if patched.Name != "Tech U" || patched.Address != "7 Elm St" {
		t.Errorf("address patch changed the wrong fields: %+v", patched)
	}

	patched, err = f.colleges.PatchCollege(ctx, c.ID, &models.College{Name: "Tech Institute"})
	if err != nil {
		t.Fatalf("PatchCollege failed: %v", err)
	}
	if patched.Name != "Tech Institute" || patched.Address != "7 Elm St" {
		t.Errorf("name patch changed the wrong fields: %+v", patched)
	}

	stored, _ := f.colleges.GetCollegeByID(ctx, c.ID)
	if stored.Name != "Tech Institute" || stored.Address != "7 Elm St" {
		t.Errorf("patch was not persisted: %+v", stored)
	}
}

func TestCollegeService_Delete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")

	deleted, err := f.colleges.DeleteCollege(ctx, c.ID)
	if err != nil {
		t.Fatalf("DeleteCollege failed: %v", err)
	}
	if deleted.Name != "Tech U" {
		t.Errorf("expected the pre-deletion record, got %+v", deleted)
	}

	_, err = f.colleges.GetCollegeByID(ctx, c.ID)
	wantKind(t, err, notFound, "")

	_, err = f.colleges.DeleteCollege(ctx, c.ID)
	wantKind(t, err, notFound, "")
}

func TestCollegeService_Delete_RejectedWithDepartments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.college(t, "Tech U", "1 Main St")
	f.department(t, "CS", "CS01", c.ID)

	_, err := f.colleges.DeleteCollege(ctx, c.ID)
	wantKind(t, err, conflict, "college has associated departments and cannot be deleted")

	if _, err := f.colleges.GetCollegeByID(ctx, c.ID); err != nil {
		t.Errorf("college should still exist: %v", err)
	}
}
