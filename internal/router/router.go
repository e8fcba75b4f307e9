package router

import (
	"database/sql"
	"net/http"

	"ask-astro/internal/adapters/chat/canned"
	"ask-astro/internal/adapters/quota"
	mem "ask-astro/internal/adapters/storage/memory"
	pg "ask-astro/internal/adapters/storage/postgres"
	"ask-astro/internal/domain/accounts"
	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/domain/chat"
	"ask-astro/internal/domain/dashboard"
	"ask-astro/internal/domain/plans"
	"ask-astro/internal/domain/profiles"
	"ask-astro/internal/middleware"
	"ask-astro/internal/platform/logger"
	"ask-astro/internal/ports/auth"

	_ "ask-astro/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil (modo dev, sin tokens)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
	// Opcional: contador de preguntas en Redis. Si no, in-memory.
	Redis *redis.Client

	// Opcional: por defecto el provider canned.
	Provider chat.ResponseProvider
	Logger   logger.Logger

	AllowedOrigins       []string
	SignupPromptAfter    int
	RateLimitRPS         float64
	RateLimitBurst       int
	AllowAllCapabilities bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID", "X-Debug-Email"},
			ExposedHeaders:   []string{"Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		profileRepo profiles.Repository
		messageRepo chat.Repository
		accountRepo accounts.Repository
		quotaStore  chat.QuotaStore
	)

	if opts.DB != nil {
		profileRepo = pg.NewProfilesRepo(opts.DB)
		messageRepo = pg.NewMessagesRepo(opts.DB)
		accountRepo = pg.NewAccountsRepo(opts.DB)
	} else {
		profileRepo = mem.NewProfileRepo()
		messageRepo = mem.NewMessageRepo()
		accountRepo = mem.NewAccountRepo()
	}

	if opts.Redis != nil {
		quotaStore = quota.NewRedis(opts.Redis, quota.DefaultTTL)
	} else {
		quotaStore = quota.NewMemory()
	}

	provider := opts.Provider
	if provider == nil {
		provider = canned.NewProvider(canned.DefaultPool())
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo)
	chatSvc := chat.NewService(messageRepo, quotaStore, provider, profilesSvc, chat.Options{
		SignupPromptAfter: opts.SignupPromptAfter,
		Logger:            log,
	})
	accountsSvc := accounts.NewService(accountRepo, opts.TokenIssuer, chatSvc)
	resolver := plans.NewResolver(accountsSvc, opts.AllowAllCapabilities)
	dashboardSvc := dashboard.NewService(profilesSvc, accountsSvc, resolver, dashboard.DefaultCatalog())

	rps, burst := opts.RateLimitRPS, opts.RateLimitBurst
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 5
	}
	limiter := middleware.NewRateLimiter(rps, burst)

	// Rutas por módulo
	astrology.RegisterRoutes(r)
	profiles.RegisterRoutes(r, profilesSvc, log)
	chat.RegisterRoutes(r, chatSvc, limiter.Middleware)
	accounts.RegisterRoutes(r, accountsSvc, log)
	plans.RegisterRoutes(r, resolver)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
