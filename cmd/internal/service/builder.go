package service

import (
	"errors"

	"accredparser/cmd/internal/domain/entity"
)

var (
	// ErrMissingOrganization marks a record with no
	// ActualEducationOrganization element. The record is discarded.
	ErrMissingOrganization = errors.New("record has no organization element")

	// ErrUnseededOrgType marks a record whose classified organization type
	// has no seeded reference row. The record is filtered out, not failed.
	ErrUnseededOrgType = errors.New("organization type not seeded")
)

// ReferenceCache maps reference codes to their row ids. Populated once at
// pipeline start and read-only afterwards; the builder never touches the
// store.
type ReferenceCache struct {
	OrgTypes map[string]int
	Levels   map[string]int
	Forms    map[string]int
}

// RecordGraph is the in-memory entity graph built from one Certificate
// record, in the order it has to be persisted.
type RecordGraph struct {
	Organization *entity.Organization
	OrgTypeCode  string
	Certificate  *entity.Certificate
	Entrepreneur *entity.IndividualEntrepreneur
	Supplements  []SupplementGraph
	Decisions    []*entity.Decision
}

// SupplementGraph pairs a supplement with the programs it covers.
type SupplementGraph struct {
	Supplement *entity.Supplement
	Programs   []*entity.EducationalProgram
}

// Entities returns the total number of rows the graph will produce.
func (g *RecordGraph) Entities() int {
	n := 2 // organization + certificate
	if g.Entrepreneur != nil {
		n++
	}
	n += len(g.Decisions)
	for _, s := range g.Supplements {
		n += 1 + len(s.Programs)
	}
	return n
}

// IsBranch reports whether the record's organization is flagged as a branch.
func (g *RecordGraph) IsBranch() bool {
	return g.Organization.IsBranch != nil && *g.Organization.IsBranch
}

// buildRecord turns one decoded Certificate record into its entity graph.
// Pure construction: reference lookups go through the injected cache only.
func buildRecord(rec *certificateRecord, refs *ReferenceCache) (*RecordGraph, error) {
	if rec.Organization == nil {
		return nil, ErrMissingOrganization
	}

	org := buildOrganization(rec.Organization)

	// Classification falls back to program levels when the type name text
	// matches nothing, so collect the levels of every nested program first.
	var levels []string
	for _, supp := range rec.Supplements {
		for _, prog := range supp.Programs {
			levels = append(levels, CoerceText(prog.EduLevelName, ""))
		}
	}

	code := ClassifyOrganization(org.TypeName, levels)
	typeID, ok := refs.OrgTypes[code]
	if !ok {
		return nil, ErrUnseededOrgType
	}
	org.TypeID = &typeID

	graph := &RecordGraph{
		Organization: org,
		OrgTypeCode:  code,
		Certificate:  buildCertificate(rec),
		Entrepreneur: buildEntrepreneur(rec),
	}

	for i := range rec.Supplements {
		supp := &rec.Supplements[i]
		sg := SupplementGraph{Supplement: buildSupplement(supp)}
		for j := range supp.Programs {
			sg.Programs = append(sg.Programs, buildProgram(&supp.Programs[j], refs))
		}
		graph.Supplements = append(graph.Supplements, sg)
	}

	for i := range rec.Decisions {
		graph.Decisions = append(graph.Decisions, buildDecision(&rec.Decisions[i]))
	}

	return graph, nil
}

func buildOrganization(org *organizationRecord) *entity.Organization {
	return &entity.Organization{
		EduOrgShortName:          CoerceText(org.ShortName, ""),
		EduOrgFullName:           CoerceText(org.FullName, ""),
		Phone:                    CoerceText(org.Phone, ""),
		Fax:                      CoerceText(org.Fax, ""),
		Email:                    CoerceText(org.Email, ""),
		WebSite:                  CoerceText(org.WebSite, ""),
		PostAddress:              CoerceText(org.PostAddress, ""),
		INN:                      CoerceText(org.INN, ""),
		KPP:                      CoerceText(org.KPP, ""),
		OGRN:                     CoerceText(org.OGRN, ""),
		HeadPost:                 CoerceText(org.HeadPost, ""),
		HeadName:                 CoerceText(org.HeadName, ""),
		FormName:                 CoerceText(org.FormName, ""),
		KindName:                 CoerceText(org.KindName, ""),
		TypeName:                 CoerceText(org.TypeName, ""),
		RegionName:               CoerceText(org.RegionName, ""),
		FederalDistrictName:      CoerceText(org.FederalDistrictName, ""),
		FederalDistrictShortName: CoerceText(org.FederalDistrictShortName, ""),
		IsBranch:                 CoerceBool(org.IsBranch),
		HeadEduOrgID:             CoerceText(org.HeadEduOrgID, ""),
	}
}

func buildCertificate(rec *certificateRecord) *entity.Certificate {
	return &entity.Certificate{
		IsFederal:                CoerceBool(rec.IsFederal),
		StatusName:               CoerceText(rec.StatusName, ""),
		TypeName:                 CoerceText(rec.TypeName, ""),
		RegionName:               CoerceText(rec.RegionName, ""),
		RegionCode:               CoerceText(rec.RegionCode, ""),
		FederalDistrictName:      CoerceText(rec.FederalDistrictName, ""),
		FederalDistrictShortName: CoerceText(rec.FederalDistrictShortName, ""),
		RegNumber:                CoerceText(rec.RegNumber, ""),
		SerialNumber:             CoerceText(rec.SerialNumber, ""),
		FormNumber:               CoerceText(rec.FormNumber, ""),
		IssueDate:                CoerceDate(rec.IssueDate),
		EndDate:                  CoerceDate(rec.EndDate),
		ControlOrgan:             CoerceText(rec.ControlOrgan, ""),
		EduOrgINN:                CoerceText(rec.EduOrgINN, ""),
		EduOrgKPP:                CoerceText(rec.EduOrgKPP, ""),
		EduOrgOGRN:               CoerceText(rec.EduOrgOGRN, ""),
	}
}

// buildEntrepreneur returns nil unless at least one entrepreneur field is
// present: most certificate holders are legal entities.
func buildEntrepreneur(rec *certificateRecord) *entity.IndividualEntrepreneur {
	ip := &entity.IndividualEntrepreneur{
		LastName:   CoerceText(rec.IndividualEntrepreneurLastName, ""),
		FirstName:  CoerceText(rec.IndividualEntrepreneurFirstName, ""),
		MiddleName: CoerceText(rec.IndividualEntrepreneurMiddleName, ""),
		Address:    CoerceText(rec.IndividualEntrepreneurAddress, ""),
		EGRIP:      CoerceText(rec.IndividualEntrepreneurEGRIP, ""),
		INN:        CoerceText(rec.IndividualEntrepreneurINN, ""),
	}
	if ip.LastName == "" && ip.FirstName == "" && ip.MiddleName == "" &&
		ip.Address == "" && ip.EGRIP == "" && ip.INN == "" {
		return nil
	}
	return ip
}

func buildSupplement(supp *supplementRecord) *entity.Supplement {
	return &entity.Supplement{
		StatusName:      CoerceText(supp.StatusName, ""),
		StatusCode:      CoerceText(supp.StatusCode, ""),
		Number:          CoerceText(supp.Number, ""),
		SerialNumber:    CoerceText(supp.SerialNumber, ""),
		FormNumber:      CoerceText(supp.FormNumber, ""),
		IssueDate:       CoerceDate(supp.IssueDate),
		IsForBranch:     CoerceBool(supp.IsForBranch),
		Note:            CoerceText(supp.Note, ""),
		EduOrgFullName:  CoerceText(supp.EduOrgFullName, ""),
		EduOrgShortName: CoerceText(supp.EduOrgShortName, ""),
		EduOrgAddress:   CoerceText(supp.EduOrgAddress, ""),
		EduOrgKPP:       CoerceText(supp.EduOrgKPP, ""),
	}
}

func buildProgram(prog *programRecord, refs *ReferenceCache) *entity.EducationalProgram {
	p := &entity.EducationalProgram{
		TypeName:           CoerceText(prog.TypeName, ""),
		EduLevelName:       CoerceText(prog.EduLevelName, ""),
		ProgrammName:       CoerceText(prog.ProgrammName, ""),
		ProgrammCode:       CoerceText(prog.ProgrammCode, ""),
		UGSName:            CoerceText(prog.UGSName, ""),
		UGSCode:            CoerceText(prog.UGSCode, ""),
		EduNormativePeriod: CoerceText(prog.EduNormativePeriod, ""),
		Qualification:      CoerceText(prog.Qualification, ""),
		IsAccredited:       CoerceBool(prog.IsAccredited),
		IsCanceled:         CoerceBool(prog.IsCanceled),
		IsSuspended:        CoerceBool(prog.IsSuspended),
	}

	if code := ClassifyLevel(p.EduLevelName); code != "" {
		if id, ok := refs.Levels[code]; ok {
			p.LevelID = &id
		}
	}
	// The form always classifies to something (full time by default).
	if id, ok := refs.Forms[ClassifyForm(CoerceText(prog.EducationForm, ""))]; ok {
		p.FormID = &id
	}

	return p
}

func buildDecision(dec *decisionRecord) *entity.Decision {
	return &entity.Decision{
		DecisionTypeName:    CoerceText(dec.DecisionTypeName, ""),
		OrderDocumentNumber: CoerceText(dec.OrderDocumentNumber, ""),
		OrderDocumentKind:   CoerceText(dec.OrderDocumentKind, ""),
		DecisionDate:        CoerceDate(dec.DecisionDate),
	}
}
