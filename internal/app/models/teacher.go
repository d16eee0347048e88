package models

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID     int64  `json:"id" db:"id" example:"1"`
	Name   string `json:"name" db:"name" example:"Alan Turing"`
	Degree string `json:"degree" db:"degree" example:"PhD"` // Free-text qualification, not unique

	Department *Department `json:"department,omitempty"`
}

// DepartmentID returns the referenced department id, or 0 when no reference is set.
func (t *Teacher) DepartmentID() int64 {
	if t == nil || t.Department == nil {
		return 0
	}
	return t.Department.ID
}
