package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"grafik-bot/internal/models"
)

// openTestDB открывает отдельную БД в памяти на каждый тест
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestEmployeeRepositoryCRUD(t *testing.T) {
	repo, err := NewGormEmployeeRepository(openTestDB(t))
	require.NoError(t, err)

	employee := &models.Employee{ID: "e1", Name: "Jan Kowalski", MaxHours: 168, MaxHoursQuarter: 504}
	require.NoError(t, repo.Create(employee))

	got, err := repo.GetByID("e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jan Kowalski", got.Name)

	got.MaxHours = 140
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID("e1")
	require.NoError(t, err)
	assert.Equal(t, 140.0, updated.MaxHours)

	require.NoError(t, repo.Delete("e1"))

	missing, err := repo.GetByID("e1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmployeeRepositoryRejectsInvalid(t *testing.T) {
	repo, err := NewGormEmployeeRepository(openTestDB(t))
	require.NoError(t, err)

	assert.Error(t, repo.Create(&models.Employee{Name: "Bez ID"}))
	assert.Error(t, repo.Delete("nie-ma"))
}

func TestEmployeeRepositoryGetAllSorted(t *testing.T) {
	repo, err := NewGormEmployeeRepository(openTestDB(t))
	require.NoError(t, err)

	require.NoError(t, repo.Create(&models.Employee{ID: "e1", Name: "Zofia", MaxHours: 168}))
	require.NoError(t, repo.Create(&models.Employee{ID: "e2", Name: "Anna", MaxHours: 168}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Anna", all[0].Name)
	assert.Equal(t, "Zofia", all[1].Name)
}

func TestScheduleEntryUpsertReplaces(t *testing.T) {
	repo, err := NewGormScheduleEntryRepository(openTestDB(t))
	require.NoError(t, err)

	first := models.NewScheduleEntry("2025-11-03", "e1", models.Assignment{
		ID: "d", Name: "Dzień", Type: models.ShiftDay, StartTime: "07:00", EndTime: "19:00", Hours: 12,
	})
	require.NoError(t, repo.Upsert(first))

	second := models.NewScheduleEntry("2025-11-03", "e1", models.Assignment{
		ID: "n", Name: "Noc", Type: models.ShiftNight, StartTime: "19:00", EndTime: "07:00", Hours: 12,
	})
	require.NoError(t, repo.Upsert(second))

	entries, err := repo.GetByDay("2025-11-03")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "n", entries[0].ShiftID)
	assert.Equal(t, first.ID, entries[0].ID)
}

func TestScheduleEntryRangeQueries(t *testing.T) {
	repo, err := NewGormScheduleEntryRepository(openTestDB(t))
	require.NoError(t, err)

	shift := models.Assignment{ID: "d", Name: "Dzień", Type: models.ShiftDay, Hours: 12}
	for _, key := range []string{"2025-10-31", "2025-11-01", "2025-11-30", "2025-12-01"} {
		require.NoError(t, repo.Upsert(models.NewScheduleEntry(key, "e1", shift)))
	}

	entries, err := repo.GetRange("2025-11-01", "2025-11-30")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-11-01", entries[0].DateKey)
	assert.Equal(t, "2025-11-30", entries[1].DateKey)

	require.NoError(t, repo.DeleteRange("2025-11-01", "2025-11-30"))

	rest, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "2025-10-31", rest[0].DateKey)
	assert.Equal(t, "2025-12-01", rest[1].DateKey)
}

func TestScheduleEntryDeleteByEmployee(t *testing.T) {
	repo, err := NewGormScheduleEntryRepository(openTestDB(t))
	require.NoError(t, err)

	shift := models.Assignment{ID: "d", Name: "Dzień", Type: models.ShiftDay, Hours: 12}
	require.NoError(t, repo.Upsert(models.NewScheduleEntry("2025-11-03", "e1", shift)))
	require.NoError(t, repo.Upsert(models.NewScheduleEntry("2025-11-03", "e2", shift)))

	require.NoError(t, repo.DeleteByEmployee("e1"))

	entries, err := repo.GetByDay("2025-11-03")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e2", entries[0].EmployeeID)
}

func TestShiftTemplateRepositoryCRUD(t *testing.T) {
	repo, err := NewGormShiftTemplateRepository(openTestDB(t))
	require.NoError(t, err)

	template := &models.ShiftTemplate{
		ID: "t1", Name: "Dzień", Type: models.ShiftDay,
		StartTime: "07:00", EndTime: "19:00", Hours: 12,
	}
	require.NoError(t, repo.Create(template))

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12.0, got.Hours)

	assert.Error(t, repo.Create(&models.ShiftTemplate{ID: "t2", Name: "Zła", Type: models.ShiftDay, StartTime: "7am", EndTime: "19:00"}))

	require.NoError(t, repo.Delete("t1"))
	assert.Error(t, repo.Delete("t1"))
}

func TestRulesRepositorySingleRecord(t *testing.T) {
	repo, err := NewGormRulesRepository(openTestDB(t))
	require.NoError(t, err)

	empty, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, empty)

	first := &models.RulesRecord{}
	require.NoError(t, first.SetRules(models.DefaultSchedulingRules()))
	require.NoError(t, repo.Save(first))

	rules := models.DefaultSchedulingRules()
	rules.HoursAfterNight = 36
	second := &models.RulesRecord{}
	require.NoError(t, second.SetRules(rules))
	require.NoError(t, repo.Save(second))

	got, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 36.0, got.Rules().HoursAfterNight)
}
