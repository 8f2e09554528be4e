package service

import (
	"testing"

	"accredparser/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOrganization(t *testing.T) {
	cases := []struct {
		name     string
		typeName string
		levels   []string
		want     string
	}{
		{
			name:     "university keyword",
			typeName: "Государственный университет",
			want:     entity.OrgTypeHigher,
		},
		{
			name:     "academy keyword",
			typeName: "академия народного хозяйства",
			want:     entity.OrgTypeHigher,
		},
		{
			name:     "school",
			typeName: "средняя общеобразовательная школа",
			want:     entity.OrgTypeSecondary,
		},
		{
			// Secondary markers are checked first, so a school attached to a
			// university is still a school.
			name:     "lyceum wins over university",
			typeName: "лицей при государственном университете",
			want:     entity.OrgTypeSecondary,
		},
		{
			name:     "gymnasium wins over institute",
			typeName: "гимназия института культуры",
			want:     entity.OrgTypeSecondary,
		},
		{
			name:     "college fallback",
			typeName: "колледж информатики",
			want:     entity.OrgTypeSecondaryPro,
		},
		{
			name:     "technical school fallback",
			typeName: "политехнический техникум",
			want:     entity.OrgTypeSecondaryPro,
		},
		{
			name:     "unknown type without programs",
			typeName: "образовательная организация",
			want:     entity.OrgTypeSecondary,
		},
		{
			name:     "unknown type with bachelor program",
			typeName: "учреждение",
			levels:   []string{"Бакалавриат"},
			want:     entity.OrgTypeHigher,
		},
		{
			name:     "unknown type with postgraduate program",
			typeName: "учреждение",
			levels:   []string{"Среднее профессиональное образование", "Аспирантура"},
			want:     entity.OrgTypeHigher,
		},
		{
			// Program levels are only a fallback, never an override.
			name:     "school with master program stays school",
			typeName: "школа",
			levels:   []string{"Магистратура"},
			want:     entity.OrgTypeSecondary,
		},
		{
			name: "empty type name",
			want: entity.OrgTypeSecondary,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyOrganization(tc.typeName, tc.levels))
		})
	}
}

func TestClassifyLevel(t *testing.T) {
	assert.Equal(t, entity.LevelBachelor, ClassifyLevel("Бакалавриат"))
	assert.Equal(t, entity.LevelMaster, ClassifyLevel("Магистратура"))
	assert.Equal(t, entity.LevelSpecialist, ClassifyLevel("Специалитет специалиста"))
	assert.Equal(t, entity.LevelSpecialist, ClassifyLevel("Аспирантура аспирантов"))

	// No default: an unmatched level stays unknown.
	assert.Equal(t, "", ClassifyLevel("Среднее профессиональное образование"))
	assert.Equal(t, "", ClassifyLevel(""))
}

func TestClassifyForm(t *testing.T) {
	assert.Equal(t, entity.FormFullTime, ClassifyForm("Очная"))

	// Unmatched forms always default to full time, unlike levels.
	assert.Equal(t, entity.FormFullTime, ClassifyForm(""))
	assert.Equal(t, entity.FormFullTime, ClassifyForm("экстернат"))
}
