package entity

// Closed code sets for the three reference tables. Seeded once at startup,
// read-only afterwards.
const (
	OrgTypeHigher       = "higher"
	OrgTypeSecondaryPro = "secondary_pro"
	OrgTypeSecondary    = "secondary"

	LevelBachelor     = "bachelor"
	LevelMaster       = "master"
	LevelSpecialist   = "specialist"
	LevelPostgraduate = "postgraduate"

	FormFullTime = "full_time"
	FormPartTime = "part_time"
	FormMixed    = "mixed"
	FormRemote   = "remote"
)

// OrganizationType classifies organizations as higher, secondary
// professional or secondary general education.
type OrganizationType struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"unique"`
	Code string `gorm:"unique"`
}

// EducationLevel is a program level (bachelor, master, ...).
type EducationLevel struct {
	ID   int    `gorm:"primaryKey"`
	Name string
	Code string `gorm:"unique"`
}

// EducationForm is a program attendance form (full time, part time, ...).
type EducationForm struct {
	ID   int    `gorm:"primaryKey"`
	Name string
	Code string `gorm:"unique"`
}
