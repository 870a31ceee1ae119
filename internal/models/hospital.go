package models

// Hospital defines the structure for listed hospitals.
type Hospital struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"size:256;not null"`
	Address *string `json:"address" gorm:"size:512"` // Optional field
	Quote   *string `json:"quote" gorm:"size:256"`   // Optional free-text offer
}
