package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/constants"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/models"

	"github.com/go-chi/chi/v5"
)

// DashboardHandler renders the instructor dashboard: every player grouped
// into the five age buckets, plus the instructor's favorite set.
func (h *Handlers) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())

	players, err := h.players.GetAll(r.Context())
	if err != nil {
		logging.Error("failed to load players", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groups := make(map[string][]models.Player, len(constants.AgeGroups))
	for _, g := range constants.AgeGroups {
		groups[g] = nil
	}
	for _, p := range players {
		g := common.AgeGroup(p.Age)
		groups[g] = append(groups[g], p)
	}

	favIDs, err := h.favorites.FavoritePlayerIDs(r.Context(), *session.InstructorID)
	if err != nil {
		logging.Error("failed to load favorites", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flash, _ := h.sessions.PopFlash(r.Context(), session.SessionID)

	RenderTemplate(w, "instructor_dashboard.html", map[string]interface{}{
		"PageTitle":   "Instructor Dashboard",
		"GroupOrder":  constants.AgeGroups,
		"Groups":      groups,
		"FavoriteIDs": favIDs,
		"Flash":       flash,
	})
}

// NewPlayerPageHandler renders the create-player form.
func (h *Handlers) NewPlayerPageHandler(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "create_player.html", map[string]interface{}{
		"PageTitle": "New Player",
	})
}

// NewPlayerHandler creates a player with a freshly minted login code.
func (h *Handlers) NewPlayerHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())

	name := trimmedForm(r, "name")
	age, err := strconv.Atoi(trimmedForm(r, "age"))
	if err != nil || name == "" || age <= 0 {
		RenderTemplateStatus(w, http.StatusBadRequest, "create_player.html", map[string]interface{}{
			"PageTitle": "New Player",
			"Error":     "Name and a positive age are required.",
		})
		return
	}

	code, err := h.mintLoginCode(r)
	if err != nil {
		logging.Error("failed to mint login code", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	player := models.Player{
		Name:      name,
		Age:       age,
		LoginCode: code,
	}
	if phone := trimmedForm(r, "phone"); phone != "" {
		player.Phone = &phone
	}

	if err := h.players.Create(r.Context(), &player); err != nil {
		logging.Error("failed to create player", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.metricsReg.PlayersCreatedTotal.Inc()

	h.sessions.SetFlash(r.Context(), session.SessionID, fmt.Sprintf("Player created. Login code: %s", code))
	http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
}

// PlayerDetailHandler renders a player's chart, drills and notes for the
// instructor view.
func (h *Handlers) PlayerDetailHandler(w http.ResponseWriter, r *http.Request) {
	player := h.resolvePlayer(w, r)
	if player == nil {
		return
	}

	series, err := h.samples.RecentSeries(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load metric series", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	drills, err := h.drills.GetAll(r.Context())
	if err != nil {
		logging.Error("failed to load drills", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	assigned, err := h.drills.GetAssignedForPlayer(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load assigned drills", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notes, err := h.notes.GetForPlayer(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to load notes", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	RenderTemplate(w, "instructor_player_detail.html", map[string]interface{}{
		"PageTitle": player.Name,
		"Player":    player,
		"Series":    series,
		"Drills":    drills,
		"Assigned":  assigned,
		"Notes":     notes,
	})
}

// AddMetricHandler records a performance sample. Exit velocity is
// required; launch angle and spin rate stay NULL when absent or zero. A
// malformed date is an explicit validation failure, never a silent "now".
func (h *Handlers) AddMetricHandler(w http.ResponseWriter, r *http.Request) {
	player := h.resolvePlayer(w, r)
	if player == nil {
		return
	}

	ev, err := strconv.ParseFloat(trimmedForm(r, "ev"), 64)
	if err != nil {
		http.Error(w, "Exit velocity is required", http.StatusBadRequest)
		return
	}

	date := time.Now().UTC()
	if raw := trimmedForm(r, "date"); raw != "" {
		date, err = time.Parse(constants.MetricDateLayout, raw)
		if err != nil {
			http.Error(w, "Date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	metric := models.Metric{
		PlayerID:     player.ID,
		Date:         date,
		ExitVelocity: &ev,
		LaunchAngle:  optionalFloat(trimmedForm(r, "la")),
		SpinRate:     optionalFloat(trimmedForm(r, "sr")),
	}

	if err := h.samples.Create(r.Context(), &metric); err != nil {
		logging.Error("failed to create metric", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.metricsReg.SamplesRecordedTotal.Inc()

	h.notifyPlayer(r, player.Phone, fmt.Sprintf("Your metrics were updated: Exit Velo %g mph.", ev))

	http.Redirect(w, r, fmt.Sprintf("/instructor/player/%d", player.ID), http.StatusSeeOther)
}

// AddNoteHandler records a coach note, optionally shared to the player and
// optionally texted to them.
func (h *Handlers) AddNoteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.GetSessionData(r.Context())
	player := h.resolvePlayer(w, r)
	if player == nil {
		return
	}

	content := trimmedForm(r, "content")
	note := models.CoachNote{
		PlayerID:       player.ID,
		InstructorID:   *session.InstructorID,
		Content:        content,
		SharedToPlayer: r.FormValue("share_to_player") != "",
	}

	if err := h.notes.Create(r.Context(), &note); err != nil {
		logging.Error("failed to create note", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if r.FormValue("text_player") != "" {
		h.notifyPlayer(r, player.Phone, "Coach note: "+content)
	}

	http.Redirect(w, r, fmt.Sprintf("/instructor/player/%d", player.ID), http.StatusSeeOther)
}

// UploadAvatarHandler stores an avatar under the data dir and records its
// served path on the player.
func (h *Handlers) UploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	player := h.resolvePlayer(w, r)
	if player == nil {
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fname := fmt.Sprintf("p%d_%d_%s", player.ID, time.Now().UTC().Unix(), header.Filename)
	if err := writeUpload(filepath.Join(h.cfg.AvatarsDir, fname), file); err != nil {
		logging.Error("failed to store avatar", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.players.SetAvatarPath(r.Context(), player.ID, "/media/avatars/"+fname); err != nil {
		logging.Error("failed to record avatar path", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/instructor/player/%d", player.ID), http.StatusSeeOther)
}

// favoriteResponse is the structured payload the toggle endpoint returns
// instead of a redirect.
type favoriteResponse struct {
	OK        bool   `json:"ok"`
	Favorited *bool  `json:"favorited,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToggleFavoriteHandler flips the favorite flag for the current
// instructor. Replies with a distinct 401 payload when no instructor
// session is present.
func (h *Handlers) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session := auth.GetSessionData(r.Context())
	if session == nil || !session.IsInstructor() {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(favoriteResponse{OK: false, Error: "Not logged in"})
		return
	}

	playerID, err := strconv.ParseUint(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(favoriteResponse{OK: false, Error: "Invalid player id"})
		return
	}

	favorited, err := h.favorites.Toggle(r.Context(), *session.InstructorID, uint(playerID))
	if err != nil {
		logging.Error("failed to toggle favorite", "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(favoriteResponse{OK: false, Error: "Internal error"})
		return
	}

	json.NewEncoder(w).Encode(favoriteResponse{OK: true, Favorited: &favorited})
}

// resolvePlayer loads the player from the route. A missing player is a
// silent redirect back to the dashboard, not a 404.
func (h *Handlers) resolvePlayer(w http.ResponseWriter, r *http.Request) *models.Player {
	playerID, err := strconv.ParseUint(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
		return nil
	}

	player, err := h.players.GetByID(r.Context(), uint(playerID))
	if err != nil {
		logging.Error("failed to load player", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if player == nil {
		http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
		return nil
	}
	return player
}

// mintLoginCode generates a unique player login code, retrying the rare
// collision.
func (h *Handlers) mintLoginCode(r *http.Request) (string, error) {
	for i := 0; i < 5; i++ {
		code := common.NewLoginCode()
		exists, err := h.players.CodeExists(r.Context(), code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errLoginCodeSpace
}

// optionalFloat maps empty or zero form values to NULL.
func optionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

func writeUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
