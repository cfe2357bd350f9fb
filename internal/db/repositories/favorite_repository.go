package repositories

import (
	"context"
	"fmt"

	"hit4power/clubhouse/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository handles instructor_players table operations
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new GORM-based favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle flips the favorite flag for an (instructor, player) pair. When no
// row exists yet one is created already favorited. Returns the new state.
func (r *FavoriteRepository) Toggle(ctx context.Context, instructorID, playerID uint) (bool, error) {
	var row models.InstructorPlayer

	err := r.db.WithContext(ctx).
		Where("instructor_id = ? AND player_id = ?", instructorID, playerID).
		First(&row).Error

	if err == gorm.ErrRecordNotFound {
		row = models.InstructorPlayer{
			InstructorID: instructorID,
			PlayerID:     playerID,
			IsFavorite:   true,
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return false, fmt.Errorf("failed to create favorite: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch favorite: %w", err)
	}

	row.IsFavorite = !row.IsFavorite
	if err := r.db.WithContext(ctx).
		Model(&models.InstructorPlayer{}).
		Where("id = ?", row.ID).
		Update("is_favorite", row.IsFavorite).Error; err != nil {
		return false, fmt.Errorf("failed to update favorite: %w", err)
	}

	return row.IsFavorite, nil
}

// FavoritePlayerIDs returns the set of player IDs the instructor has
// currently favorited, used for dashboard highlighting.
func (r *FavoriteRepository) FavoritePlayerIDs(ctx context.Context, instructorID uint) (map[uint]bool, error) {
	var rows []models.InstructorPlayer

	err := r.db.WithContext(ctx).
		Where("instructor_id = ? AND is_favorite = ?", instructorID, true).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	ids := make(map[uint]bool, len(rows))
	for _, row := range rows {
		ids[row.PlayerID] = true
	}
	return ids, nil
}
