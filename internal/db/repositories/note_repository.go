package repositories

import (
	"context"
	"fmt"

	"hit4power/clubhouse/internal/models"

	"gorm.io/gorm"
)

// NoteRepository handles coach_notes table operations using GORM
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new GORM-based coach note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a new coach note.
func (r *NoteRepository) Create(ctx context.Context, note *models.CoachNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to create coach note: %w", err)
	}
	return nil
}

// GetForPlayer retrieves every note for a player, newest first.
func (r *NoteRepository) GetForPlayer(ctx context.Context, playerID uint) ([]models.CoachNote, error) {
	var notes []models.CoachNote

	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch coach notes: %w", err)
	}

	return notes, nil
}

// GetSharedForPlayer retrieves notes marked visible to the player, newest
// first. This is the only note view the player dashboard gets.
func (r *NoteRepository) GetSharedForPlayer(ctx context.Context, playerID uint) ([]models.CoachNote, error) {
	var notes []models.CoachNote

	err := r.db.WithContext(ctx).
		Where("player_id = ? AND shared_to_player = ?", playerID, true).
		Order("created_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch shared notes: %w", err)
	}

	return notes, nil
}
