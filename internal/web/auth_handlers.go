package web

import (
	"net/http"

	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/models"
)

// IndexHandler renders the player login form.
func (h *Handlers) IndexHandler(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "index.html", map[string]interface{}{
		"PageTitle": "Player Login",
	})
}

// PlayerLoginHandler matches the submitted code against player login codes.
func (h *Handlers) PlayerLoginHandler(w http.ResponseWriter, r *http.Request) {
	code := trimmedForm(r, "login_code")

	player, err := h.players.GetByLoginCode(r.Context(), code)
	if err != nil {
		logging.Error("player lookup failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if player == nil {
		RenderTemplateStatus(w, http.StatusBadRequest, "index.html", map[string]interface{}{
			"PageTitle": "Player Login",
			"Error":     "Invalid player code.",
		})
		return
	}

	h.clearSession(w, r)
	sessionID, err := h.sessions.CreatePlayerSession(r.Context(), player.ID)
	if err != nil {
		logging.Error("failed to create session", "error", err.Error())
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, sessionID)

	http.Redirect(w, r, "/player/dashboard", http.StatusSeeOther)
}

// LogoutHandler clears the session and returns to the login page.
func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// InstructorLoginPageHandler renders the instructor login form.
func (h *Handlers) InstructorLoginPageHandler(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "instructor_login.html", map[string]interface{}{
		"PageTitle": "Instructor Login",
	})
}

// InstructorLoginHandler checks the master code first, then persisted
// instructor codes. Matching the master code grants access to the
// instructor-creation flow without establishing an identity.
func (h *Handlers) InstructorLoginHandler(w http.ResponseWriter, r *http.Request) {
	code := trimmedForm(r, "code")

	if h.cfg.MasterCode != "" && code == h.cfg.MasterCode {
		http.Redirect(w, r, "/instructor/create", http.StatusSeeOther)
		return
	}

	instructor, err := h.instructors.GetByCode(r.Context(), code)
	if err != nil {
		logging.Error("instructor lookup failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if instructor == nil {
		RenderTemplateStatus(w, http.StatusBadRequest, "instructor_login.html", map[string]interface{}{
			"PageTitle": "Instructor Login",
			"Error":     "Invalid instructor code.",
		})
		return
	}

	h.clearSession(w, r)
	sessionID, err := h.sessions.CreateInstructorSession(r.Context(), instructor.ID)
	if err != nil {
		logging.Error("failed to create session", "error", err.Error())
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, sessionID)

	http.Redirect(w, r, "/instructor/dashboard", http.StatusSeeOther)
}

// InstructorCreatePageHandler renders the instructor signup form.
func (h *Handlers) InstructorCreatePageHandler(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "instructor_create.html", map[string]interface{}{
		"PageTitle": "Create Instructor",
	})
}

// InstructorCreateHandler mints a fresh instructor behind the master code
// and logs the new instructor in immediately.
func (h *Handlers) InstructorCreateHandler(w http.ResponseWriter, r *http.Request) {
	if trimmedForm(r, "master_code") != h.cfg.MasterCode || h.cfg.MasterCode == "" {
		RenderTemplateStatus(w, http.StatusBadRequest, "instructor_create.html", map[string]interface{}{
			"PageTitle": "Create Instructor",
			"Error":     "Invalid master code.",
		})
		return
	}

	code, err := h.mintInstructorCode(r)
	if err != nil {
		logging.Error("failed to mint instructor code", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	instructor := models.Instructor{
		Name: trimmedForm(r, "name"),
		Code: code,
	}
	if err := h.instructors.Create(r.Context(), &instructor); err != nil {
		logging.Error("failed to create instructor", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.clearSession(w, r)
	sessionID, err := h.sessions.CreateInstructorSession(r.Context(), instructor.ID)
	if err != nil {
		logging.Error("failed to create session", "error", err.Error())
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, sessionID)

	RenderTemplate(w, "instructor_created.html", map[string]interface{}{
		"PageTitle": "Instructor Created",
		"Code":      code,
	})
}

// mintInstructorCode generates a unique instructor code, retrying the
// rare collision.
func (h *Handlers) mintInstructorCode(r *http.Request) (string, error) {
	for i := 0; i < 5; i++ {
		code := common.NewInstructorCode()
		exists, err := h.instructors.CodeExists(r.Context(), code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	// Five straight collisions over a million-code space means something
	// else is wrong.
	return "", errInstructorCodeSpace
}
