package entity

import "time"

// Organization is one educational organization from the accreditation
// registry. Field names follow the registry's XML element names so the
// columns can be traced back to the open-data schema.
type Organization struct {
	ID     int  `gorm:"primaryKey"`
	TypeID *int // References: organization_types(id)

	// ParentID links a branch to its head organization. Resolved after the
	// head row is persisted, by matching HeadEduOrgID against the parent's
	// id or INN. Stays nil when no parent row exists yet.
	ParentID *int

	EduOrgShortName          string
	EduOrgFullName           string
	Phone                    string
	Fax                      string
	Email                    string
	WebSite                  string
	PostAddress              string
	INN                      string `gorm:"column:inn;index"`
	KPP                      string `gorm:"column:kpp"`
	OGRN                     string `gorm:"column:ogrn"`
	HeadPost                 string
	HeadName                 string
	FormName                 string
	KindName                 string
	TypeName                 string
	RegionName               string
	FederalDistrictName      string
	FederalDistrictShortName string
	IsBranch                 *bool
	HeadEduOrgID             string `gorm:"index"`

	// Relations
	OrgType *OrganizationType `gorm:"foreignKey:TypeID;references:ID"`
}

// Certificate is one accreditation record issued to an organization. The
// EduOrg* fields are a denormalized copy of the organization's legal
// identifiers at issuance time, kept for audit purposes.
type Certificate struct {
	ID             int `gorm:"primaryKey"`
	OrganizationID int `gorm:"index"` // References: organizations(id)

	IsFederal                *bool
	StatusName               string
	TypeName                 string
	RegionName               string
	RegionCode               string
	FederalDistrictName      string
	FederalDistrictShortName string
	RegNumber                string
	SerialNumber             string
	FormNumber               string
	IssueDate                *time.Time `gorm:"type:date"`
	EndDate                  *time.Time `gorm:"type:date"`
	ControlOrgan             string
	EduOrgINN                string `gorm:"column:edu_org_inn"`
	EduOrgKPP                string `gorm:"column:edu_org_kpp"`
	EduOrgOGRN               string `gorm:"column:edu_org_ogrn"`
}

// Supplement is one attachment document of a certificate. OrganizationID is
// denormalized from the owning certificate so supplements can be queried per
// organization without a join.
type Supplement struct {
	ID             int `gorm:"primaryKey"`
	CertificateID  int `gorm:"index"` // References: certificates(id)
	OrganizationID int `gorm:"index"` // References: organizations(id)

	StatusName      string
	StatusCode      string
	Number          string
	SerialNumber    string
	FormNumber      string
	IssueDate       *time.Time `gorm:"type:date"`
	IsForBranch     *bool
	Note            string
	EduOrgFullName  string
	EduOrgShortName string
	EduOrgAddress   string
	EduOrgKPP       string `gorm:"column:edu_org_kpp"`
}
