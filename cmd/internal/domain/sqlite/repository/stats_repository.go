package repository

import (
	"accredparser/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// RunStats are the row counts logged in the end-of-run summary.
type RunStats struct {
	Organizations int64
	MainHigher    int64 // higher-typed organizations that are not branches
	Branches      int64
	Certificates  int64
	Programs      int64
	Decisions     int64
	Entrepreneurs int64
}

type DefaultStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{db: db}
}

func (r *DefaultStatsRepository) Collect() (*RunStats, error) {
	stats := &RunStats{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&entity.Organization{}, &stats.Organizations},
		{&entity.Certificate{}, &stats.Certificates},
		{&entity.EducationalProgram{}, &stats.Programs},
		{&entity.Decision{}, &stats.Decisions},
		{&entity.IndividualEntrepreneur{}, &stats.Entrepreneurs},
	}
	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := r.db.
		Model(&entity.Organization{}).
		Where("is_branch = ?", true).
		Count(&stats.Branches).Error
	if err != nil {
		return nil, err
	}

	err = r.db.
		Model(&entity.Organization{}).
		Joins("JOIN organization_types ON organization_types.id = organizations.type_id").
		Where("organization_types.code = ? AND organizations.is_branch = ?", entity.OrgTypeHigher, false).
		Count(&stats.MainHigher).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
