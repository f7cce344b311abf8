package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/nutrilog/backend/internal/models"
)

func TestSetupSQLiteDatabase(t *testing.T) {
	db := SetupSQLiteDatabase(t)
	assert.True(t, db.Migrator().HasTable(&models.MealLog{}))
}

func TestSetupTestDatabase(t *testing.T) {
	db := SetupTestDatabase(t)
	assert.True(t, db.Migrator().HasTable("meal_logs"))

	var applied int64
	assert.NoError(t, db.Table("migrations").Count(&applied).Error)
	assert.EqualValues(t, 1, applied)
}
