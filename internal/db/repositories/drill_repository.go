package repositories

import (
	"context"
	"fmt"

	"hit4power/clubhouse/internal/models"

	"gorm.io/gorm"
)

// DrillRepository handles drills and assigned_drills table operations
type DrillRepository struct {
	db *gorm.DB
}

// AssignedDrillRow joins an assignment with its drill for display.
type AssignedDrillRow struct {
	Assignment models.AssignedDrill
	Drill      models.Drill
}

// NewDrillRepository creates a new GORM-based drill repository
func NewDrillRepository(db *gorm.DB) *DrillRepository {
	return &DrillRepository{db: db}
}

// GetByID retrieves a drill by ID. Returns (nil, nil) when not found.
func (r *DrillRepository) GetByID(ctx context.Context, drillID uint) (*models.Drill, error) {
	var drill models.Drill

	err := r.db.WithContext(ctx).
		Where("id = ?", drillID).
		First(&drill).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch drill: %w", err)
	}

	return &drill, nil
}

// GetAll retrieves every drill, newest first.
func (r *DrillRepository) GetAll(ctx context.Context) ([]models.Drill, error) {
	var drills []models.Drill

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&drills).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch drills: %w", err)
	}

	return drills, nil
}

// Create inserts a new drill.
func (r *DrillRepository) Create(ctx context.Context, drill *models.Drill) error {
	if err := r.db.WithContext(ctx).Create(drill).Error; err != nil {
		return fmt.Errorf("failed to create drill: %w", err)
	}
	return nil
}

// Assign links a drill to a player. Duplicates are allowed; every call
// creates a fresh row.
func (r *DrillRepository) Assign(ctx context.Context, playerID, drillID uint) error {
	assignment := models.AssignedDrill{
		PlayerID: playerID,
		DrillID:  drillID,
	}
	if err := r.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		return fmt.Errorf("failed to assign drill: %w", err)
	}
	return nil
}

// GetAssignedForPlayer retrieves a player's assignments joined with their
// drills, newest assignment first.
func (r *DrillRepository) GetAssignedForPlayer(ctx context.Context, playerID uint) ([]AssignedDrillRow, error) {
	var assignments []models.AssignedDrill

	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("assigned_at DESC").
		Find(&assignments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned drills: %w", err)
	}

	rows := make([]AssignedDrillRow, 0, len(assignments))
	for _, a := range assignments {
		var drill models.Drill
		if err := r.db.WithContext(ctx).Where("id = ?", a.DrillID).First(&drill).Error; err != nil {
			// Skip assignments whose drill can't be loaded
			continue
		}
		rows = append(rows, AssignedDrillRow{Assignment: a, Drill: drill})
	}

	return rows, nil
}
