package repository

import (
	"testing"

	"accredparser/cmd/internal/domain/entity"
	"accredparser/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}

func TestSeedAllIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewReferenceRepository(db)

	require.NoError(t, repo.SeedAll())
	first, err := repo.OrgTypeIDs()
	require.NoError(t, err)
	require.Len(t, first, 3)

	// A rerun must not create new rows or change ids.
	require.NoError(t, repo.SeedAll())
	second, err := repo.OrgTypeIDs()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&entity.OrganizationType{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestReferenceIDMaps(t *testing.T) {
	repo := NewReferenceRepository(newTestDB(t))
	require.NoError(t, repo.SeedAll())

	levels, err := repo.LevelIDs()
	require.NoError(t, err)
	assert.Len(t, levels, 4)
	assert.Contains(t, levels, entity.LevelPostgraduate)

	forms, err := repo.FormIDs()
	require.NoError(t, err)
	assert.Len(t, forms, 4)
	assert.Contains(t, forms, entity.FormRemote)
}

func TestIngestStoreStageAssignsIDs(t *testing.T) {
	store := NewIngestStore(newTestDB(t))
	require.NoError(t, store.Begin())

	org := &entity.Organization{EduOrgFullName: "Университет", INN: "123"}
	require.NoError(t, store.Stage(org))
	assert.NotZero(t, org.ID)

	require.NoError(t, store.Commit())
}

func TestIngestStoreResolveParent(t *testing.T) {
	store := NewIngestStore(newTestDB(t))
	require.NoError(t, store.Begin())

	head := &entity.Organization{EduOrgFullName: "Головной вуз", INN: "7701234567"}
	require.NoError(t, store.Stage(head))

	// Staged but uncommitted rows are visible inside the transaction.
	byINN, err := store.ResolveParent("7701234567")
	require.NoError(t, err)
	require.NotNil(t, byINN)
	assert.Equal(t, head.ID, *byINN)

	none, err := store.ResolveParent("0000000000")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, store.Commit())
}

func TestIngestStoreRollbackDiscardsBatch(t *testing.T) {
	db := newTestDB(t)
	store := NewIngestStore(db)

	require.NoError(t, store.Begin())
	require.NoError(t, store.Stage(&entity.Organization{EduOrgFullName: "A"}))
	require.NoError(t, store.Commit())

	require.NoError(t, store.Begin())
	require.NoError(t, store.Stage(&entity.Organization{EduOrgFullName: "B"}))
	require.NoError(t, store.Rollback())

	var count int64
	require.NoError(t, db.Model(&entity.Organization{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Double rollback is a no-op.
	require.NoError(t, store.Rollback())
}

func TestStatsRepositoryCounts(t *testing.T) {
	db := newTestDB(t)
	refRepo := NewReferenceRepository(db)
	require.NoError(t, refRepo.SeedAll())
	orgTypes, err := refRepo.OrgTypeIDs()
	require.NoError(t, err)

	higherID := orgTypes[entity.OrgTypeHigher]
	proID := orgTypes[entity.OrgTypeSecondaryPro]
	isBranch := true
	notBranch := false

	require.NoError(t, db.Create(&entity.Organization{
		EduOrgFullName: "Университет", TypeID: &higherID, IsBranch: &notBranch,
	}).Error)
	require.NoError(t, db.Create(&entity.Organization{
		EduOrgFullName: "Филиал", TypeID: &higherID, IsBranch: &isBranch,
	}).Error)
	require.NoError(t, db.Create(&entity.Organization{
		EduOrgFullName: "Колледж", TypeID: &proID, IsBranch: &notBranch,
	}).Error)
	require.NoError(t, db.Create(&entity.Certificate{OrganizationID: 1}).Error)

	stats, err := NewStatsRepository(db).Collect()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Organizations)
	assert.EqualValues(t, 1, stats.MainHigher)
	assert.EqualValues(t, 1, stats.Branches)
	assert.EqualValues(t, 1, stats.Certificates)
	assert.EqualValues(t, 0, stats.Programs)
}
