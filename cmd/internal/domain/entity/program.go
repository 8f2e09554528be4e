package entity

import "time"

// EducationalProgram is one degree program covered by a certificate
// supplement. The three lifecycle flags are independent and nullable: an
// absent source element means "unknown", which is distinct from false.
type EducationalProgram struct {
	ID             int  `gorm:"primaryKey"`
	SupplementID   *int `gorm:"index"` // References: supplements(id)
	OrganizationID *int `gorm:"index"` // References: organizations(id), denormalized
	LevelID        *int // References: education_levels(id)
	FormID         *int // References: education_forms(id)

	TypeName           string
	EduLevelName       string
	ProgrammName       string
	ProgrammCode       string
	UGSName            string `gorm:"column:ugs_name"`
	UGSCode            string `gorm:"column:ugs_code"`
	EduNormativePeriod string
	Qualification      string
	IsAccredited       *bool
	IsCanceled         *bool
	IsSuspended        *bool
}

// Decision is an administrative act authorizing a certificate state change.
type Decision struct {
	ID            int `gorm:"primaryKey"`
	CertificateID int `gorm:"index"` // References: certificates(id)

	DecisionTypeName    string
	OrderDocumentNumber string
	OrderDocumentKind   string
	DecisionDate        *time.Time `gorm:"type:date"`
}

// IndividualEntrepreneur is the licensed party of a certificate when the
// holder is an individual rather than a legal entity. A row is only created
// when the source record carries at least one non-empty field.
type IndividualEntrepreneur struct {
	ID            int `gorm:"primaryKey"`
	CertificateID int `gorm:"index"` // References: certificates(id)

	LastName   string
	FirstName  string
	MiddleName string
	Address    string
	EGRIP      string `gorm:"column:egrip"`
	INN        string `gorm:"column:inn"`
}
