package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID    int64  `json:"id" db:"id" example:"1"`                         // Unique identifier for the student record
	Name  string `json:"name" db:"name" example:"Ada Lovelace"`          // Full name
	Email string `json:"email" db:"email" example:"ada@tech.example.edu"` // Unique across all students

	// Relations (resolved from the store, never trusted from input beyond the id)
	Department *Department `json:"department,omitempty"`
}

// DepartmentID returns the referenced department id, or 0 when no reference is set.
func (s *Student) DepartmentID() int64 {
	if s == nil || s.Department == nil {
		return 0
	}
	return s.Department.ID
}
