package repositories

import (
	"testing"

	"hit4power/clubhouse/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A :memory: database exists per connection, so the pool must stay
	// on a single one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Instructor{},
		&models.Player{},
		&models.InstructorPlayer{},
		&models.Metric{},
		&models.CoachNote{},
		&models.Drill{},
		&models.AssignedDrill{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createPlayer(t *testing.T, db *gorm.DB, name, code string) *models.Player {
	player := models.Player{Name: name, Age: 12, LoginCode: code}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	return &player
}

func createInstructor(t *testing.T, db *gorm.DB, name, code string) *models.Instructor {
	instructor := models.Instructor{Name: name, Code: code}
	if err := db.Create(&instructor).Error; err != nil {
		t.Fatalf("Failed to create instructor: %v", err)
	}
	return &instructor
}
