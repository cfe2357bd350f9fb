package constants

const (
	// MetricSeriesForPlayer returns the most recent samples for a player,
	// re-ordered ascending for charting. Bindvars are ? style; callers
	// rebind for the active driver.
	MetricSeriesForPlayer = `
	SELECT date, exit_velocity FROM (
		SELECT date, exit_velocity FROM metrics
		WHERE player_id = ?
		ORDER BY date DESC
		LIMIT ?
	) recent
	ORDER BY date ASC
	`
)
