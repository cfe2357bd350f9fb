package web

import (
	"net/http"
	"strings"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/constants"
	"hit4power/clubhouse/internal/db/repositories"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/metrics"
	"hit4power/clubhouse/internal/notify"
)

// Handlers bundles the dependencies every page handler needs.
type Handlers struct {
	cfg         *config.Config
	sessions    *common.SessionService
	signer      *common.TokenSigner
	sender      notify.Sender
	metricsReg  *metrics.MetricsRegistry
	players     *repositories.PlayerRepository
	instructors *repositories.InstructorRepository
	samples     *repositories.MetricRepository
	notes       *repositories.NoteRepository
	drills      *repositories.DrillRepository
	favorites   *repositories.FavoriteRepository
}

// NewHandlers creates the handler set.
func NewHandlers(
	cfg *config.Config,
	sessions *common.SessionService,
	signer *common.TokenSigner,
	sender notify.Sender,
	metricsReg *metrics.MetricsRegistry,
	players *repositories.PlayerRepository,
	instructors *repositories.InstructorRepository,
	samples *repositories.MetricRepository,
	notes *repositories.NoteRepository,
	drills *repositories.DrillRepository,
	favorites *repositories.FavoriteRepository,
) *Handlers {
	return &Handlers{
		cfg:         cfg,
		sessions:    sessions,
		signer:      signer,
		sender:      sender,
		metricsReg:  metricsReg,
		players:     players,
		instructors: instructors,
		samples:     samples,
		notes:       notes,
		drills:      drills,
		favorites:   favorites,
	}
}

// setSessionCookie signs the session ID and sets it on the response.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, sessionID string) {
	token, err := h.signer.Sign(sessionID)
	if err != nil {
		logging.Error("failed to sign session cookie", "error", err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(common.SessionTTL.Seconds()),
	})
}

// clearSession deletes any session the request carries and expires the cookie.
func (h *Handlers) clearSession(w http.ResponseWriter, r *http.Request) {
	if session := auth.GetSessionData(r.Context()); session != nil {
		h.sessions.DeleteSession(r.Context(), session.SessionID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   constants.SessionCookieName,
		Path:   "/",
		MaxAge: -1,
	})
}

// notifyPlayer dispatches a best-effort SMS. Failures are counted and
// logged, never surfaced.
func (h *Handlers) notifyPlayer(r *http.Request, phone *string, body string) {
	if phone == nil || *phone == "" {
		return
	}

	h.metricsReg.SMSAttemptsTotal.Inc()
	if err := h.sender.Send(r.Context(), *phone, body); err != nil {
		h.metricsReg.SMSFailuresTotal.Inc()
		logging.Warn("notification dispatch failed", "error", err.Error())
	}
}

// baseURL reconstructs the externally visible origin, preferring the
// reverse proxy forwarding headers.
func baseURL(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}

	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return ""
	}

	return scheme + "://" + host
}

func trimmedForm(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}
