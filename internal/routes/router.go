package routes

import (
	"net/http"
	"time"

	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/db"
	"hit4power/clubhouse/internal/db/repositories"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/metrics"
	"hit4power/clubhouse/internal/middleware"
	"hit4power/clubhouse/internal/notify"
	"hit4power/clubhouse/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes wires the full HTTP surface.
func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// Session backend: in-process cache by default, Redis when configured
	var store common.CacheInterface
	if cfg.UseRedis() {
		redisStore, err := common.NewRedisCacheService(cfg)
		if err != nil {
			panic("Failed to connect to Redis: " + err.Error())
		}
		store = redisStore
		logging.Info("sessions backed by Redis")
	} else {
		store = common.NewCacheService(common.SessionTTL, 10*time.Minute)
		logging.Info("sessions backed by in-process cache")
	}

	sessionSvc := common.NewSessionService(store)
	signer := common.NewTokenSigner(cfg.SessionSecret)
	sender := notify.NewSender(cfg)

	players := repositories.NewPlayerRepository(db.ORM)
	instructors := repositories.NewInstructorRepository(db.ORM)
	samples := repositories.NewMetricRepository(db.ORM, db.DB)
	notes := repositories.NewNoteRepository(db.ORM)
	drills := repositories.NewDrillRepository(db.ORM)
	favorites := repositories.NewFavoriteRepository(db.ORM)

	handlers := web.NewHandlers(cfg, sessionSvc, signer, sender, metricsReg,
		players, instructors, samples, notes, drills, favorites)

	// global middleware
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.Sessions(sessionSvc, signer))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and session middleware")

	r.Get("/healthCheck", web.HealthCheckHandler(db.DB, upSince))

	// Public pages
	r.Get("/", handlers.IndexHandler)
	r.With(middleware.RateLimitMiddleware).Post("/player/login", handlers.PlayerLoginHandler)
	r.Post("/logout", handlers.LogoutHandler)

	r.Get("/instructor/login", handlers.InstructorLoginPageHandler)
	r.With(middleware.RateLimitMiddleware).Post("/instructor/login", handlers.InstructorLoginHandler)
	r.Get("/instructor/create", handlers.InstructorCreatePageHandler)
	r.Post("/instructor/create", handlers.InstructorCreateHandler)

	// Player pages
	r.Route("/player", func(player chi.Router) {
		player.Use(middleware.RequirePlayer)
		player.Get("/dashboard", handlers.PlayerDashboardHandler)
	})

	// Instructor pages. The favorite toggle stays outside the redirect
	// guard because it answers JSON, not a redirect.
	r.Route("/instructor", func(instructor chi.Router) {
		instructor.Post("/favorite/{playerID}", handlers.ToggleFavoriteHandler)

		instructor.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireInstructor)

			protected.Get("/dashboard", handlers.DashboardHandler)
			protected.Get("/players/new", handlers.NewPlayerPageHandler)
			protected.Post("/players/new", handlers.NewPlayerHandler)
			protected.Get("/import", handlers.ImportPageHandler)
			protected.Post("/import", handlers.ImportHandler)
			protected.Get("/player/{playerID}", handlers.PlayerDetailHandler)
			protected.Post("/player/{playerID}/metric", handlers.AddMetricHandler)
			protected.Post("/player/{playerID}/avatar", handlers.UploadAvatarHandler)
			protected.Post("/player/{playerID}/note", handlers.AddNoteHandler)
			protected.Post("/player/{playerID}/assign-drill", handlers.AssignDrillHandler)
			protected.Get("/drills", handlers.DrillsPageHandler)
			protected.Post("/drills/upload", handlers.UploadDrillHandler)
		})
	})

	// Media, served with no access control
	r.Get("/media/avatars/{filename}", handlers.AvatarHandler)
	r.Get("/media/drills/{filename}", handlers.DrillFileHandler)

	// Static assets
	fileServer := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	return r
}
