package service

// Raw shapes of one <Certificate> element of the open-data export. All
// leaves are *string so that an absent element (nil) can be told apart from
// a present-but-empty one; the coercion layer relies on that distinction.

type certificateRecord struct {
	IsFederal                *string `xml:"IsFederal"`
	StatusName               *string `xml:"StatusName"`
	TypeName                 *string `xml:"TypeName"`
	RegionName               *string `xml:"RegionName"`
	RegionCode               *string `xml:"RegionCode"`
	FederalDistrictName      *string `xml:"FederalDistrictName"`
	FederalDistrictShortName *string `xml:"FederalDistrictShortName"`
	RegNumber                *string `xml:"RegNumber"`
	SerialNumber             *string `xml:"SerialNumber"`
	FormNumber               *string `xml:"FormNumber"`
	IssueDate                *string `xml:"IssueDate"`
	EndDate                  *string `xml:"EndDate"`
	ControlOrgan             *string `xml:"ControlOrgan"`
	EduOrgINN                *string `xml:"EduOrgINN"`
	EduOrgKPP                *string `xml:"EduOrgKPP"`
	EduOrgOGRN               *string `xml:"EduOrgOGRN"`

	IndividualEntrepreneurLastName   *string `xml:"IndividualEntrepreneurLastName"`
	IndividualEntrepreneurFirstName  *string `xml:"IndividualEntrepreneurFirstName"`
	IndividualEntrepreneurMiddleName *string `xml:"IndividualEntrepreneurMiddleName"`
	IndividualEntrepreneurAddress    *string `xml:"IndividualEntrepreneurAddress"`
	IndividualEntrepreneurEGRIP      *string `xml:"IndividualEntrepreneurEGRIP"`
	IndividualEntrepreneurINN        *string `xml:"IndividualEntrepreneurINN"`

	Organization *organizationRecord `xml:"ActualEducationOrganization"`
	Supplements  []supplementRecord  `xml:"Supplements>Supplement"`
	Decisions    []decisionRecord    `xml:"Decisions>Decision"`
}

type organizationRecord struct {
	ShortName                *string `xml:"ShortName"`
	FullName                 *string `xml:"FullName"`
	Phone                    *string `xml:"Phone"`
	Fax                      *string `xml:"Fax"`
	Email                    *string `xml:"Email"`
	WebSite                  *string `xml:"WebSite"`
	PostAddress              *string `xml:"PostAddress"`
	INN                      *string `xml:"INN"`
	KPP                      *string `xml:"KPP"`
	OGRN                     *string `xml:"OGRN"`
	HeadPost                 *string `xml:"HeadPost"`
	HeadName                 *string `xml:"HeadName"`
	FormName                 *string `xml:"FormName"`
	KindName                 *string `xml:"KindName"`
	TypeName                 *string `xml:"TypeName"`
	RegionName               *string `xml:"RegionName"`
	FederalDistrictName      *string `xml:"FederalDistrictName"`
	FederalDistrictShortName *string `xml:"FederalDistrictShortName"`
	IsBranch                 *string `xml:"IsBranch"`
	HeadEduOrgID             *string `xml:"HeadEduOrgId"`
}

type supplementRecord struct {
	StatusName      *string `xml:"StatusName"`
	StatusCode      *string `xml:"StatusCode"`
	Number          *string `xml:"Number"`
	SerialNumber    *string `xml:"SerialNumber"`
	FormNumber      *string `xml:"FormNumber"`
	IssueDate       *string `xml:"IssueDate"`
	IsForBranch     *string `xml:"IsForBranch"`
	Note            *string `xml:"Note"`
	EduOrgFullName  *string `xml:"EduOrgFullName"`
	EduOrgShortName *string `xml:"EduOrgShortName"`
	EduOrgAddress   *string `xml:"EduOrgAddress"`
	EduOrgKPP       *string `xml:"EduOrgKPP"`

	Programs []programRecord `xml:"EducationalPrograms>EducationalProgram"`
}

type programRecord struct {
	TypeName           *string `xml:"TypeName"`
	EduLevelName       *string `xml:"EduLevelName"`
	ProgrammName       *string `xml:"ProgrammName"`
	ProgrammCode       *string `xml:"ProgrammCode"`
	UGSName            *string `xml:"UGSName"`
	UGSCode            *string `xml:"UGSCode"`
	EduNormativePeriod *string `xml:"EduNormativePeriod"`
	Qualification      *string `xml:"Qualification"`
	EducationForm      *string `xml:"EducationForm"`
	IsAccredited       *string `xml:"IsAccredited"`
	IsCanceled         *string `xml:"IsCanceled"`
	IsSuspended        *string `xml:"IsSuspended"`
}

type decisionRecord struct {
	DecisionTypeName    *string `xml:"DecisionTypeName"`
	OrderDocumentNumber *string `xml:"OrderDocumentNumber"`
	OrderDocumentKind   *string `xml:"OrderDocumentKind"`
	DecisionDate        *string `xml:"DecisionDate"`
}
