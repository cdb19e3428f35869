package database

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yasinga/yasinga/internal/config"
	"github.com/yasinga/yasinga/internal/models"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestCategories seeds the default category set for a user and
// returns the created rows.
func CreateTestCategories(t *testing.T, db *DB, user *models.User) []models.Category {
	t.Helper()

	var categories []models.Category
	for _, def := range models.DefaultCategories() {
		category := models.Category{
			UserID:    user.ID,
			Name:      def.Name,
			Kind:      def.Kind,
			Color:     def.Color,
			Icon:      def.Icon,
			IsDefault: true,
		}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("failed to create test category %q: %v", def.Name, err)
		}
		categories = append(categories, category)
	}

	return categories
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"expense_reports",
		"transactions",
		"suppliers",
		"sms_settings",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
