package models

// Department represents a department in a college
type Department struct {
	ID      int64    `json:"id" db:"id" example:"1"`
	Name    string   `json:"name" db:"name" example:"Computer Science"`
	Code    string   `json:"code" db:"code" example:"CS01"`
	College *College `json:"college,omitempty"` // Only College.ID is trusted on input
}

// CollegeID returns the referenced college id, or 0 when no reference is set.
func (d *Department) CollegeID() int64 {
	if d == nil || d.College == nil {
		return 0
	}
	return d.College.ID
}
