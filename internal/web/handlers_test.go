package web

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/constants"
	"hit4power/clubhouse/internal/db/repositories"
	"hit4power/clubhouse/internal/metrics"
	"hit4power/clubhouse/internal/middleware"
	"hit4power/clubhouse/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// promauto registers into the default registry, so the whole test binary
// shares one MetricsRegistry.
var (
	metricsOnce   sync.Once
	sharedMetrics *metrics.MetricsRegistry
)

func testMetrics() *metrics.MetricsRegistry {
	metricsOnce.Do(func() {
		sharedMetrics = metrics.NewMetricsRegistry()
	})
	return sharedMetrics
}

// recordingSender captures outbound messages instead of hitting Twilio.
type recordingSender struct {
	to   []string
	body []string
}

func (s *recordingSender) Send(ctx context.Context, toNumber, body string) error {
	s.to = append(s.to, toNumber)
	s.body = append(s.body, body)
	return nil
}

type testEnv struct {
	db       *gorm.DB
	router   *chi.Mux
	sessions *common.SessionService
	signer   *common.TokenSigner
	sender   *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Instructor{},
		&models.Player{},
		&models.InstructorPlayer{},
		&models.Metric{},
		&models.CoachNote{},
		&models.Drill{},
		&models.AssignedDrill{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	raw := sqlx.NewDb(sqlDB, "sqlite3")

	dataDir := t.TempDir()
	cfg := &config.Config{
		DataDir:       dataDir,
		AvatarsDir:    filepath.Join(dataDir, "avatars"),
		DrillsDir:     filepath.Join(dataDir, "drills"),
		SessionSecret: "test-secret",
		MasterCode:    "MASTER1",
	}
	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("Failed to create data dirs: %v", err)
	}

	cache := common.NewCacheService(common.SessionTTL, time.Minute)
	sessions := common.NewSessionService(cache)
	signer := common.NewTokenSigner(cfg.SessionSecret)
	sender := &recordingSender{}

	h := NewHandlers(
		cfg,
		sessions,
		signer,
		sender,
		testMetrics(),
		repositories.NewPlayerRepository(db),
		repositories.NewInstructorRepository(db),
		repositories.NewMetricRepository(db, raw),
		repositories.NewNoteRepository(db),
		repositories.NewDrillRepository(db),
		repositories.NewFavoriteRepository(db),
	)

	r := chi.NewRouter()
	r.Use(middleware.Sessions(sessions, signer))
	r.Route("/instructor", func(r chi.Router) {
		r.Post("/favorite/{playerID}", h.ToggleFavoriteHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireInstructor)
			r.Post("/player/{playerID}/metric", h.AddMetricHandler)
			r.Post("/player/{playerID}/note", h.AddNoteHandler)
			r.Post("/import", h.ImportHandler)
		})
	})

	return &testEnv{db: db, router: r, sessions: sessions, signer: signer, sender: sender}
}

// instructorCookie creates an instructor row plus a live session for it.
func (env *testEnv) instructorCookie(t *testing.T) (*models.Instructor, *http.Cookie) {
	instructor := models.Instructor{Name: "Coach", Code: "H4P001"}
	if err := env.db.Create(&instructor).Error; err != nil {
		t.Fatalf("Failed to create instructor: %v", err)
	}

	sessionID, err := env.sessions.CreateInstructorSession(context.Background(), instructor.ID)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	token, err := env.signer.Sign(sessionID)
	if err != nil {
		t.Fatalf("Failed to sign session: %v", err)
	}
	return &instructor, &http.Cookie{Name: constants.SessionCookieName, Value: token}
}

func (env *testEnv) createPlayer(t *testing.T, name string, phone *string) *models.Player {
	player := models.Player{Name: name, Age: 12, LoginCode: "ABC" + name[:3], Phone: phone}
	if err := env.db.Create(&player).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	return &player
}

func postForm(router http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAddMetricRequiresInstructorSession(t *testing.T) {
	env := newTestEnv(t)
	player := env.createPlayer(t, "Alice", nil)

	form := url.Values{"ev": {"70"}}
	rr := postForm(env.router, "/instructor/player/1/metric", form, nil)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/instructor/login" {
		t.Errorf("expected redirect to /instructor/login, got %q", loc)
	}

	var count int64
	env.db.Model(&models.Metric{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no metric rows, found %d", count)
	}
}

func TestAddMetricStoresSample(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.instructorCookie(t)
	phone := "+15550001111"
	player := env.createPlayer(t, "Alice", &phone)

	form := url.Values{
		"ev":   {"72.5"},
		"la":   {"12"},
		"sr":   {"0"},
		"date": {"2024-03-15"},
	}
	rr := postForm(env.router, "/instructor/player/1/metric", form, cookie)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rr.Code, rr.Body.String())
	}

	var metric models.Metric
	if err := env.db.Where("player_id = ?", player.ID).First(&metric).Error; err != nil {
		t.Fatalf("expected a metric row: %v", err)
	}
	if metric.ExitVelocity == nil || *metric.ExitVelocity != 72.5 {
		t.Errorf("unexpected exit velocity: %v", metric.ExitVelocity)
	}
	if metric.LaunchAngle == nil || *metric.LaunchAngle != 12 {
		t.Errorf("unexpected launch angle: %v", metric.LaunchAngle)
	}
	if metric.SpinRate != nil {
		t.Errorf("expected zero spin rate to store as NULL, got %v", *metric.SpinRate)
	}

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !metric.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, metric.Date)
	}

	if len(env.sender.body) != 1 || !strings.Contains(env.sender.body[0], "72.5") {
		t.Errorf("expected one SMS mentioning the exit velocity, got %v", env.sender.body)
	}
	if len(env.sender.to) != 1 || env.sender.to[0] != phone {
		t.Errorf("expected SMS to %s, got %v", phone, env.sender.to)
	}
}

func TestAddMetricRejectsMalformedDate(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.instructorCookie(t)
	player := env.createPlayer(t, "Alice", nil)

	form := url.Values{
		"ev":   {"70"},
		"date": {"03/15/2024"},
	}
	rr := postForm(env.router, "/instructor/player/1/metric", form, cookie)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rr.Code)
	}

	var count int64
	env.db.Model(&models.Metric{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no metric rows, found %d", count)
	}
}

func TestToggleFavoriteWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "Alice", nil)

	rr := postForm(env.router, "/instructor/favorite/1", url.Values{}, nil)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	var resp favoriteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.OK || resp.Error == "" {
		t.Errorf("expected error payload, got %+v", resp)
	}
}

func TestToggleFavoriteFlips(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.instructorCookie(t)
	env.createPlayer(t, "Alice", nil)

	expected := []bool{true, false, true}
	for i, want := range expected {
		rr := postForm(env.router, "/instructor/favorite/1", url.Values{}, cookie)
		if rr.Code != http.StatusOK {
			t.Fatalf("toggle %d: expected 200, got %d", i, rr.Code)
		}

		var resp favoriteResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("toggle %d: invalid JSON: %v", i, err)
		}
		if !resp.OK || resp.Favorited == nil || *resp.Favorited != want {
			t.Errorf("toggle %d: expected favorited=%v, got %+v", i, want, resp)
		}
	}
}

func TestAddNoteSharedFlagAndText(t *testing.T) {
	env := newTestEnv(t)
	instructor, cookie := env.instructorCookie(t)
	phone := "+15550002222"
	player := env.createPlayer(t, "Alice", &phone)

	form := url.Values{
		"content":     {"Keep your hands back."},
		"text_player": {"on"},
	}
	rr := postForm(env.router, "/instructor/player/1/note", form, cookie)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}

	var note models.CoachNote
	if err := env.db.Where("player_id = ?", player.ID).First(&note).Error; err != nil {
		t.Fatalf("expected a note row: %v", err)
	}
	if note.InstructorID != instructor.ID {
		t.Errorf("expected note attributed to instructor %d, got %d", instructor.ID, note.InstructorID)
	}
	if note.SharedToPlayer {
		t.Error("expected note to stay private without share_to_player")
	}

	if len(env.sender.body) != 1 || !strings.Contains(env.sender.body[0], "hands back") {
		t.Errorf("expected the note texted to the player, got %v", env.sender.body)
	}
}

func TestImportHandlerCreatesValidRows(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.instructorCookie(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "roster.csv")
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	part.Write([]byte("name,age,phone\nAlice,10,\n,12,\nBob,-1,\n"))
	mw.Close()

	req := httptest.NewRequest("POST", "/instructor/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rr.Code, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/instructor/dashboard" {
		t.Errorf("expected redirect to dashboard, got %q", loc)
	}

	var players []models.Player
	if err := env.db.Find(&players).Error; err != nil {
		t.Fatalf("failed to load players: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected only the valid row imported, got %d players", len(players))
	}
	if players[0].Name != "Alice" || len(players[0].LoginCode) != constants.LoginCodeLength {
		t.Errorf("unexpected imported player: %+v", players[0])
	}
}
