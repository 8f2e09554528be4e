package repository

import (
	"accredparser/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultReferenceRepository seeds and reads the three closed reference
// sets. Seeding is an upsert by code, so reruns against an existing
// database leave the rows (and their ids) untouched.
type DefaultReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *DefaultReferenceRepository {
	return &DefaultReferenceRepository{db: db}
}

func (r *DefaultReferenceRepository) SeedAll() error {
	orgTypes := []entity.OrganizationType{
		{Name: "высшее образование", Code: entity.OrgTypeHigher},
		{Name: "среднее профессиональное", Code: entity.OrgTypeSecondaryPro},
		{Name: "среднее общее", Code: entity.OrgTypeSecondary},
	}
	levels := []entity.EducationLevel{
		{Name: "Бакалавриат", Code: entity.LevelBachelor},
		{Name: "Магистратура", Code: entity.LevelMaster},
		{Name: "Специалитет", Code: entity.LevelSpecialist},
		{Name: "Аспирантура", Code: entity.LevelPostgraduate},
	}
	forms := []entity.EducationForm{
		{Name: "Очная", Code: entity.FormFullTime},
		{Name: "Заочная", Code: entity.FormPartTime},
		{Name: "Очно-заочная", Code: entity.FormMixed},
		{Name: "Дистанционная", Code: entity.FormRemote},
	}

	for _, ot := range orgTypes {
		err := r.db.
			Where(entity.OrganizationType{Code: ot.Code}).
			Assign(entity.OrganizationType{Name: ot.Name}).
			FirstOrCreate(&entity.OrganizationType{}).Error
		if err != nil {
			return err
		}
	}
	for _, lvl := range levels {
		err := r.db.
			Where(entity.EducationLevel{Code: lvl.Code}).
			Assign(entity.EducationLevel{Name: lvl.Name}).
			FirstOrCreate(&entity.EducationLevel{}).Error
		if err != nil {
			return err
		}
	}
	for _, form := range forms {
		err := r.db.
			Where(entity.EducationForm{Code: form.Code}).
			Assign(entity.EducationForm{Name: form.Name}).
			FirstOrCreate(&entity.EducationForm{}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DefaultReferenceRepository) OrgTypeIDs() (map[string]int, error) {
	var rows []entity.OrganizationType
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(rows))
	for _, row := range rows {
		ids[row.Code] = row.ID
	}
	return ids, nil
}

func (r *DefaultReferenceRepository) LevelIDs() (map[string]int, error) {
	var rows []entity.EducationLevel
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(rows))
	for _, row := range rows {
		ids[row.Code] = row.ID
	}
	return ids, nil
}

func (r *DefaultReferenceRepository) FormIDs() (map[string]int, error) {
	var rows []entity.EducationForm
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(rows))
	for _, row := range rows {
		ids[row.Code] = row.ID
	}
	return ids, nil
}
