package models

// College is the root of the academic hierarchy. It has no parent.
type College struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Name    string `json:"name" db:"name" example:"Tech University"`
	Address string `json:"address" db:"address" example:"1 Main St"`
}
