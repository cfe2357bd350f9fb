package repositories

import (
	"context"
	"fmt"
	"time"

	"hit4power/clubhouse/internal/constants"
	"hit4power/clubhouse/internal/models"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// MetricRepository handles metrics table operations. Writes go through
// GORM; the chart series read uses the raw sqlx handle.
type MetricRepository struct {
	db  *gorm.DB
	raw *sqlx.DB
}

// MetricSample is one point of the exit velocity chart.
type MetricSample struct {
	Date         time.Time `db:"date"`
	ExitVelocity *float64  `db:"exit_velocity"`
}

// NewMetricRepository creates a new metric repository
func NewMetricRepository(db *gorm.DB, raw *sqlx.DB) *MetricRepository {
	return &MetricRepository{db: db, raw: raw}
}

// Create inserts a new metric sample.
func (r *MetricRepository) Create(ctx context.Context, metric *models.Metric) error {
	if err := r.db.WithContext(ctx).Create(metric).Error; err != nil {
		return fmt.Errorf("failed to create metric: %w", err)
	}
	return nil
}

// GetForPlayer retrieves all samples for a player, date ascending.
func (r *MetricRepository) GetForPlayer(ctx context.Context, playerID uint) ([]models.Metric, error) {
	var metrics []models.Metric

	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("date ASC").
		Find(&metrics).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	return metrics, nil
}

// RecentSeries returns the most recent chart samples date-ascending,
// capped at constants.MetricChartLimit.
func (r *MetricRepository) RecentSeries(ctx context.Context, playerID uint) ([]MetricSample, error) {
	var samples []MetricSample

	query := r.raw.Rebind(constants.MetricSeriesForPlayer)
	err := r.raw.SelectContext(ctx, &samples, query, playerID, constants.MetricChartLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metric series: %w", err)
	}

	return samples, nil
}
