package dto

import "github.com/yigit/campus/internal/app/models"

// CollegeRequest carries the fields of a college create or full update
type CollegeRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Tech U"`
	Address string `json:"address" binding:"required,min=5,max=255" example:"1 Main St"`
}

// ToModel converts the request to a college
func (r CollegeRequest) ToModel() *models.College {
	return &models.College{Name: r.Name, Address: r.Address}
}

// PatchCollegeRequest carries the fields of a college partial update; empty fields are left unchanged
type PatchCollegeRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=100" example:"Tech University"`
	Address string `json:"address" binding:"omitempty,min=5,max=255"`
}

// ToModel converts the request to a college
func (r PatchCollegeRequest) ToModel() *models.College {
	return &models.College{Name: r.Name, Address: r.Address}
}

// CollegeRef references a college by id
type CollegeRef struct {
	ID int64 `json:"id" example:"1"`
}

func (r *CollegeRef) toModel() *models.College {
	if r == nil {
		return nil
	}
	return &models.College{ID: r.ID}
}
