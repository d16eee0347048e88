package dto

import "github.com/yigit/campus/internal/app/models"

// TeacherRequest carries the fields of a teacher create or full update
type TeacherRequest struct {
	Name       string         `json:"name" binding:"required,min=2,max=100" example:"Grace Hopper"`
	Degree     string         `json:"degree" binding:"required,min=2,max=50" example:"PhD"`
	Department *DepartmentRef `json:"department"`
}

// ToModel converts the request to a teacher
func (r TeacherRequest) ToModel() *models.Teacher {
	return &models.Teacher{Name: r.Name, Degree: r.Degree, Department: r.Department.toModel()}
}

// PatchTeacherRequest carries the fields of a teacher partial update
type PatchTeacherRequest struct {
	Name       string         `json:"name" binding:"omitempty,min=2,max=100"`
	Degree     string         `json:"degree" binding:"omitempty,min=2,max=50"`
	Department *DepartmentRef `json:"department"`
}

// ToModel converts the request to a teacher
func (r PatchTeacherRequest) ToModel() *models.Teacher {
	return &models.Teacher{Name: r.Name, Degree: r.Degree, Department: r.Department.toModel()}
}
