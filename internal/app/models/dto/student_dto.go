package dto

import "github.com/yigit/campus/internal/app/models"

// StudentRequest carries the fields of a student create or full update
type StudentRequest struct {
	Name       string         `json:"name" binding:"required,min=2,max=100" example:"Ada Lovelace"`
	Email      string         `json:"email" binding:"required,email,max=255" example:"ada@tech.example.edu"`
	Department *DepartmentRef `json:"department"`
}

// ToModel converts the request to a student
func (r StudentRequest) ToModel() *models.Student {
	return &models.Student{Name: r.Name, Email: r.Email, Department: r.Department.toModel()}
}

// PatchStudentRequest carries the fields of a student partial update
type PatchStudentRequest struct {
	Name       string         `json:"name" binding:"omitempty,min=2,max=100"`
	Email      string         `json:"email" binding:"omitempty,email,max=255"`
	Department *DepartmentRef `json:"department"`
}

// ToModel converts the request to a student
func (r PatchStudentRequest) ToModel() *models.Student {
	return &models.Student{Name: r.Name, Email: r.Email, Department: r.Department.toModel()}
}
