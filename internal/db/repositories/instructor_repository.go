package repositories

import (
	"context"
	"fmt"

	"hit4power/clubhouse/internal/models"

	"gorm.io/gorm"
)

// InstructorRepository handles instructors table operations using GORM
type InstructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository creates a new GORM-based instructor repository
func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// GetByID retrieves an instructor by ID. Returns (nil, nil) when not found.
func (r *InstructorRepository) GetByID(ctx context.Context, instructorID uint) (*models.Instructor, error) {
	var instructor models.Instructor

	err := r.db.WithContext(ctx).
		Where("id = ?", instructorID).
		First(&instructor).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch instructor: %w", err)
	}

	return &instructor, nil
}

// GetByCode retrieves an instructor by their code. Returns (nil, nil) when
// no instructor carries the code.
func (r *InstructorRepository) GetByCode(ctx context.Context, code string) (*models.Instructor, error) {
	var instructor models.Instructor

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&instructor).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch instructor: %w", err)
	}

	return &instructor, nil
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	if err := r.db.WithContext(ctx).Create(instructor).Error; err != nil {
		return fmt.Errorf("failed to create instructor: %w", err)
	}
	return nil
}

// CodeExists reports whether any instructor already holds the code.
func (r *InstructorRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Instructor{}).
		Where("code = ?", code).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check instructor code: %w", err)
	}
	return count > 0, nil
}
