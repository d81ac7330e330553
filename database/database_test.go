package database

import (
	"fmt"
	"testing"

	"github.com/kamogelodev/student_fund/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.University{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = db
	t.Cleanup(func() { DB = nil })
}

func TestSeedUniversitiesPopulatesEmptyTable(t *testing.T) {
	setupSeedTestDB(t)

	SeedUniversities()

	var count int64
	assert.NoError(t, DB.Model(&models.University{}).Count(&count).Error)
	assert.Greater(t, count, int64(0))

	var uct models.University
	assert.NoError(t, DB.Where("name = ?", "University of Cape Town").First(&uct).Error)
	assert.NotEmpty(t, uct.BankName)
	assert.NotEmpty(t, uct.AccountNumber)
}

func TestSeedUniversitiesIsIdempotent(t *testing.T) {
	setupSeedTestDB(t)

	SeedUniversities()

	var first int64
	assert.NoError(t, DB.Model(&models.University{}).Count(&first).Error)

	SeedUniversities()

	var second int64
	assert.NoError(t, DB.Model(&models.University{}).Count(&second).Error)
	assert.Equal(t, first, second)
}
