package dto

import "github.com/yigit/campus/internal/app/models"

// DepartmentRequest carries the fields of a department create or full update.
// The college reference is checked by the service so a missing one is reported as an invalid argument.
type DepartmentRequest struct {
	Name    string      `json:"name" binding:"required,min=2,max=100" example:"Computer Science"`
	Code    string      `json:"code" binding:"required,min=2,max=10" example:"CS01"`
	College *CollegeRef `json:"college"`
}

// ToModel converts the request to a department
func (r DepartmentRequest) ToModel() *models.Department {
	return &models.Department{Name: r.Name, Code: r.Code, College: r.College.toModel()}
}

// PatchDepartmentRequest carries the fields of a department partial update
type PatchDepartmentRequest struct {
	Name    string      `json:"name" binding:"omitempty,min=2,max=100"`
	Code    string      `json:"code" binding:"omitempty,min=2,max=10" example:"CS02"`
	College *CollegeRef `json:"college"`
}

// ToModel converts the request to a department
func (r PatchDepartmentRequest) ToModel() *models.Department {
	return &models.Department{Name: r.Name, Code: r.Code, College: r.College.toModel()}
}

// DepartmentRef references a department by id
type DepartmentRef struct {
	ID int64 `json:"id" example:"1"`
}

func (r *DepartmentRef) toModel() *models.Department {
	if r == nil {
		return nil
	}
	return &models.Department{ID: r.ID}
}
