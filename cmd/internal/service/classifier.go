package service

import (
	"strings"

	"accredparser/cmd/internal/domain/entity"
)

// Keyword lists used to classify organizations from their free-text type
// name. The registry has no structured type field, so classification is
// substring matching over lowercased text. The check order below is
// significant: secondary-school markers win over higher-education markers
// ("лицей при университете" is a school), and the program-level fallback
// only applies when the type name matched nothing.
var (
	secondaryMarkers = []string{
		"школа", "лицей", "гимназия",
		"среднее общеобразовательное", "средняя общеобразовательная",
	}

	higherMarkers = []string{
		"вуз", "университет", "институт", "высшее учебное заведение", "академия",
		"федеральное государственное", "государственное образовательное",
		"национальный исследовательский", "технологический университет",
		"высшее образование", "бюджетное образовательное учреждение",
		"автономное образовательное учреждение", "государственный университет",
	}

	higherLevelMarkers = []string{
		"бакалавриат", "магистратура", "специалитет", "аспирантура",
	}

	secondaryProMarkers = []string{"колледж", "техникум"}
)

// ClassifyOrganization maps an organization's type name, and failing that
// the level names of its programs, to an organization type code. Always
// returns one of the seeded codes.
func ClassifyOrganization(typeName string, programLevels []string) string {
	name := strings.ToLower(typeName)

	if containsAny(name, secondaryMarkers) {
		return entity.OrgTypeSecondary
	}

	if containsAny(name, higherMarkers) {
		return entity.OrgTypeHigher
	}

	for _, level := range programLevels {
		if containsAny(strings.ToLower(level), higherLevelMarkers) {
			return entity.OrgTypeHigher
		}
	}

	if containsAny(name, secondaryProMarkers) {
		return entity.OrgTypeSecondaryPro
	}
	return entity.OrgTypeSecondary
}

// ClassifyLevel maps a program's level name to an education level code, or
// "" when nothing matches. There is deliberately no default here: an
// unmatched level stays unknown.
func ClassifyLevel(levelName string) string {
	name := strings.ToLower(levelName)
	switch {
	case strings.Contains(name, "бакалавр"):
		return entity.LevelBachelor
	case strings.Contains(name, "магистр"):
		return entity.LevelMaster
	case strings.Contains(name, "специалист"), strings.Contains(name, "аспирант"):
		return entity.LevelSpecialist
	}
	return ""
}

// ClassifyForm maps a program's attendance form name to a form code,
// defaulting to full time. Note the check order: "очная" is matched before
// "заочная", and "очно-заочная" contains both.
func ClassifyForm(formName string) string {
	name := strings.ToLower(formName)
	switch {
	case strings.Contains(name, "очная"):
		return entity.FormFullTime
	case strings.Contains(name, "заочная"):
		return entity.FormPartTime
	case strings.Contains(name, "очно-заочная"), strings.Contains(name, "вечерняя"):
		return entity.FormMixed
	}
	return entity.FormFullTime
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
