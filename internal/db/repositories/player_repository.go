package repositories

import (
	"context"
	"fmt"

	"hit4power/clubhouse/internal/models"

	"gorm.io/gorm"
)

// PlayerRepository handles players table operations using GORM
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new GORM-based player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID. Returns (nil, nil) when not found.
func (r *PlayerRepository) GetByID(ctx context.Context, playerID uint) (*models.Player, error) {
	var player models.Player

	err := r.db.WithContext(ctx).
		Where("id = ?", playerID).
		First(&player).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}

	return &player, nil
}

// GetByLoginCode retrieves a player by their login code. Returns (nil, nil)
// when no player carries the code.
func (r *PlayerRepository) GetByLoginCode(ctx context.Context, code string) (*models.Player, error) {
	var player models.Player

	err := r.db.WithContext(ctx).
		Where("login_code = ?", code).
		First(&player).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}

	return &player, nil
}

// GetAll retrieves every player ordered by name for the dashboard.
func (r *PlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	var players []models.Player

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&players).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	return players, nil
}

// Create inserts a new player.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if err := r.db.WithContext(ctx).Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// CreateBatch inserts all staged players in one transaction.
func (r *PlayerRepository) CreateBatch(ctx context.Context, players []models.Player) error {
	if len(players) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&players).Error; err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}
	return nil
}

// SetAvatarPath records the served path of an uploaded avatar.
func (r *PlayerRepository) SetAvatarPath(ctx context.Context, playerID uint, path string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", playerID).
		Update("avatar_path", path)

	if result.Error != nil {
		return fmt.Errorf("failed to update avatar path: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("player not found with ID: %d", playerID)
	}
	return nil
}

// Delete removes a player together with its metrics, coach notes and
// assigned drills in one transaction. instructor_players rows referencing
// the player are intentionally left behind.
func (r *PlayerRepository) Delete(ctx context.Context, playerID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", playerID).Delete(&models.Metric{}).Error; err != nil {
			return err
		}
		if err := tx.Where("player_id = ?", playerID).Delete(&models.CoachNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("player_id = ?", playerID).Delete(&models.AssignedDrill{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", playerID).Delete(&models.Player{}).Error
	})

	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// CodeExists reports whether any player already holds the login code.
func (r *PlayerRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("login_code = ?", code).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check login code: %w", err)
	}
	return count > 0, nil
}
