package models

// Patient defines the structure for patient accounts.
type Patient struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:256;not null"`
	Emailid string `json:"emailid" gorm:"size:256;not null;uniqueIndex"`
	Passwd  string `json:"-" gorm:"size:512;not null"` // bcrypt hash, never serialized
	Role    string `json:"role" gorm:"size:64;not null;default:'patient'"`
}
