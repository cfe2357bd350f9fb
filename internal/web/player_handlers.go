package web

import (
	"net/http"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/logging"
)

// PlayerDashboardHandler renders the logged-in player's progress view:
// chart series, shared notes, assigned drills.
func (h *Handlers) PlayerDashboardHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())

	player, err := h.players.GetByID(r.Context(), *session.PlayerID)
	if err != nil {
		logging.Error("failed to load player", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if player == nil {
		// Session points at a deleted player
		h.clearSession(w, r)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	series, err := h.samples.RecentSeries(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load metric series", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notes, err := h.notes.GetSharedForPlayer(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load shared notes", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	assigned, err := h.drills.GetAssignedForPlayer(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load assigned drills", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	RenderTemplate(w, "player_dashboard.html", map[string]interface{}{
		"PageTitle": player.Name,
		"Player":    player,
		"Series":    series,
		"Notes":     notes,
		"Assigned":  assigned,
	})
}
