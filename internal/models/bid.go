package models

// Bid review states.
const (
	BidStatusPending  = "pending"
	BidStatusApproved = "approved"
	BidStatusRejected = "rejected"
)

// Bid defines the structure for a patient's surgery bid request.
type Bid struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	PatientID         uint    `json:"patient_id" gorm:"not null;index"`
	MedicalConditions string  `json:"medical_conditions" gorm:"size:512;not null"`
	SurgeryNeeded     string  `json:"surgery_needed" gorm:"size:256;not null"`
	SurgeryArea       string  `json:"surgery_area" gorm:"size:256;not null"`
	SurgeryDate       string  `json:"surgery_date" gorm:"size:64;not null"`
	HospitalID        uint    `json:"hospital_id" gorm:"not null;index"`
	Insurance         *string `json:"insurance" gorm:"size:256"`         // Optional field
	InsuranceBalance  *string `json:"insurance_balance" gorm:"size:64"`  // Optional field
	Budget            *string `json:"budget" gorm:"size:64"`             // Optional field
	Status            string  `json:"status" gorm:"size:32;not null;default:'pending'"`
}
