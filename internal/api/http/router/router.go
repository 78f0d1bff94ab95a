package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/chirpy-server/internal/api/http/handler"
	"github.com/dtroode/chirpy-server/internal/api/http/middleware"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/metrics"
	"github.com/dtroode/chirpy-server/internal/model"
)

const appPrefix = "/app"

// Services groups the business services behind the HTTP API.
type Services struct {
	Auth          handler.AuthService
	Authenticator middleware.Authenticator
	Users         handler.UserService
	Chirps        handler.ChirpService
	Admin         handler.AdminService
}

// Router builds the HTTP route table and its middleware chain.
type Router struct {
	services       Services
	assets         model.AssetStorage
	metrics        *metrics.Metrics
	polkaKey       string
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	assets model.AssetStorage,
	metrics *metrics.Metrics,
	polkaKey string,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		assets:         assets,
		metrics:        metrics,
		polkaKey:       polkaKey,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires every route and returns the root handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	counter := middleware.NewMetrics(r.metrics.RequestsTotal)

	m := mux.NewRouter()
	m.Use(counter.Handle)
	m.NotFoundHandler = counter.Handle(http.NotFoundHandler())
	m.MethodNotAllowedHandler = counter.Handle(http.HandlerFunc(methodNotAllowed))

	r.registerAPIRoutes(m.PathPrefix("/api").Subrouter())
	r.registerAdminRoutes(m.PathPrefix("/admin").Subrouter())
	r.registerAppRoutes(m)
	m.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	return logging.Handle(m)
}

func (r *Router) registerAPIRoutes(api *mux.Router) {
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)
	guard := authenticate.Handle

	authHandler := handler.NewAuth(r.services.Auth, r.logger)
	userHandler := handler.NewUser(r.services.Users, r.contextManager, r.logger)
	chirpHandler := handler.NewChirp(r.services.Chirps, r.contextManager, r.logger)
	webhookHandler := handler.NewWebhook(r.services.Users, r.polkaKey, r.logger)

	api.HandleFunc("/healthz", handler.Healthz).Methods(http.MethodGet)

	api.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	api.Handle("/users", guard(http.HandlerFunc(userHandler.Update))).Methods(http.MethodPut)

	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/revoke", authHandler.Revoke).Methods(http.MethodPost)

	api.HandleFunc("/chirps", chirpHandler.List).Methods(http.MethodGet)
	api.Handle("/chirps", guard(http.HandlerFunc(chirpHandler.Create))).Methods(http.MethodPost)
	api.HandleFunc("/chirps/{chirpID}", chirpHandler.Get).Methods(http.MethodGet)
	api.Handle("/chirps/{chirpID}", guard(http.HandlerFunc(chirpHandler.Delete))).Methods(http.MethodDelete)

	api.HandleFunc("/polka/webhooks", webhookHandler.Polka).Methods(http.MethodPost)
}

func (r *Router) registerAdminRoutes(admin *mux.Router) {
	adminHandler := handler.NewAdmin(r.services.Admin, r.logger)

	admin.HandleFunc("/metrics", adminHandler.Metrics).Methods(http.MethodGet)
	admin.HandleFunc("/reset", adminHandler.Reset).Methods(http.MethodPost)
}

func (r *Router) registerAppRoutes(m *mux.Router) {
	hits := middleware.NewHits(r.metrics.Hits)
	app := hits.Handle(handler.NewAssets(r.assets, appPrefix, r.logger))

	m.Handle(appPrefix, app).Methods(http.MethodGet, http.MethodHead)
	m.PathPrefix(appPrefix + "/").Handler(app).Methods(http.MethodGet, http.MethodHead)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}
