package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/models"

	"github.com/go-chi/chi/v5"
)

// DrillsPageHandler renders the drill library, newest first.
func (h *Handlers) DrillsPageHandler(w http.ResponseWriter, r *http.Request) {
	drills, err := h.drills.GetAll(r.Context())
	if err != nil {
		logging.Error("failed to load drills", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	RenderTemplate(w, "drills_library.html", map[string]interface{}{
		"PageTitle": "Drill Library",
		"Drills":    drills,
	})
}

// UploadDrillHandler stores an instructional file and records it as a drill.
func (h *Handlers) UploadDrillHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Drill file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fname := fmt.Sprintf("d%d_%d_%s", *session.InstructorID, time.Now().UTC().Unix(), header.Filename)
	if err := writeUpload(filepath.Join(h.cfg.DrillsDir, fname), file); err != nil {
		logging.Error("failed to store drill file", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	drill := models.Drill{
		Title:                trimmedForm(r, "title"),
		Filename:             fname,
		UploaderInstructorID: *session.InstructorID,
	}
	if err := h.drills.Create(r.Context(), &drill); err != nil {
		logging.Error("failed to create drill", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/instructor/drills", http.StatusSeeOther)
}

// AssignDrillHandler links a drill to a player. When either side fails to
// resolve the action is a silent no-op that still redirects.
func (h *Handlers) AssignDrillHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseUint(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
		return
	}
	redirect := fmt.Sprintf("/instructor/player/%d", playerID)

	drillID, err := strconv.ParseUint(trimmedForm(r, "drill_id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	player, err := h.players.GetByID(r.Context(), uint(playerID))
	if err != nil {
		logging.Error("failed to load player", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	drill, err := h.drills.GetByID(r.Context(), uint(drillID))
	if err != nil {
		logging.Error("failed to load drill", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if player != nil && drill != nil {
		if err := h.drills.Assign(r.Context(), player.ID, drill.ID); err != nil {
			logging.Error("failed to assign drill", "error", err.Error())
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		h.metricsReg.DrillsAssignedTotal.Inc()

		if r.FormValue("text_player") != "" {
			url := baseURL(r) + "/media/drills/" + drill.Filename
			h.notifyPlayer(r, player.Phone, fmt.Sprintf("New drill assigned: %s - %s", drill.Title, url))
		}
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
