package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gamevault/internal/audit"
	"gamevault/internal/auth"
	"gamevault/internal/notify"
	"gamevault/internal/service"
)

type Server struct {
	router *mux.Router
	svc    *service.Service
	sink   *audit.Sink
	hub    *notify.Hub
	tokens *auth.TokenManager
}

func NewServer(svc *service.Service, sink *audit.Sink, hub *notify.Hub, tokens *auth.TokenManager) *Server {
	s := &Server{
		router: mux.NewRouter(),
		svc:    svc,
		sink:   sink,
		hub:    hub,
		tokens: tokens,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(corsMiddleware)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/ws", s.hub.HandleWebSocket)

	// Public catalog API. Everything here goes dark in maintenance
	// mode except auth, so admins can still get in.
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/auth/me", s.requireAuth(s.handleMe)).Methods("GET")

	public := api.NewRoute().Subrouter()
	public.Use(s.maintenanceMiddleware)
	public.HandleFunc("/games", s.handleListGames).Methods("GET")
	public.HandleFunc("/games/{id:[0-9]+}", s.handleGetGame).Methods("GET")
	public.HandleFunc("/games/{id:[0-9]+}/comments", s.handleGameComments).Methods("GET")
	public.HandleFunc("/games/{id:[0-9]+}/comments", s.handleSubmitComment).Methods("POST")
	public.HandleFunc("/categories", s.handlePublicCategories).Methods("GET")
	public.HandleFunc("/announcements", s.handleActiveAnnouncements).Methods("GET")
	public.HandleFunc("/carousel", s.handlePublicCarousel).Methods("GET")
	public.HandleFunc("/contact", s.handleSubmitContact).Methods("POST")

	// Admin API: every route needs a valid token plus the permission
	// named for its entity.
	admin := s.router.PathPrefix("/api/admin").Subrouter()

	admin.HandleFunc("/stats", s.requireAuth(s.handleStats)).Methods("GET")
	admin.HandleFunc("/logs", s.requirePermission("logs", s.handleListLogs)).Methods("GET")
	admin.HandleFunc("/logs", s.requirePermission("logs", s.handleClearLogs)).Methods("DELETE")

	admin.HandleFunc("/games", s.requirePermission("games", s.handleAdminListGames)).Methods("GET")
	admin.HandleFunc("/games", s.requirePermission("games", s.handleCreateGame)).Methods("POST")
	admin.HandleFunc("/games/{id:[0-9]+}", s.requirePermission("games", s.handleUpdateGame)).Methods("PUT")
	admin.HandleFunc("/games/{id:[0-9]+}", s.requirePermission("games", s.handleDeleteGame)).Methods("DELETE")

	admin.HandleFunc("/categories", s.requirePermission("categories", s.handleListCategories)).Methods("GET")
	admin.HandleFunc("/categories", s.requirePermission("categories", s.handleCreateCategory)).Methods("POST")
	admin.HandleFunc("/categories/{id}", s.requirePermission("categories", s.handleUpdateCategory)).Methods("PUT")
	admin.HandleFunc("/categories/{id}", s.requirePermission("categories", s.handleDeleteCategory)).Methods("DELETE")

	admin.HandleFunc("/comments", s.requirePermission("comments", s.handleListComments)).Methods("GET")
	admin.HandleFunc("/comments/{id:[0-9]+}/approval", s.requirePermission("comments", s.handleToggleComment)).Methods("POST")
	admin.HandleFunc("/comments/{id:[0-9]+}", s.requirePermission("comments", s.handleDeleteComment)).Methods("DELETE")

	admin.HandleFunc("/users", s.requirePermission("users", s.handleListUsers)).Methods("GET")
	admin.HandleFunc("/users", s.requirePermission("users", s.handleCreateUser)).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}", s.requirePermission("users", s.handleUpdateUser)).Methods("PUT")
	admin.HandleFunc("/users/{id:[0-9]+}", s.requirePermission("users", s.handleDeleteUser)).Methods("DELETE")
	admin.HandleFunc("/users/{id:[0-9]+}/status", s.requirePermission("users", s.handleSetUserStatus)).Methods("POST")

	admin.HandleFunc("/announcements", s.requirePermission("announcements", s.handleListAnnouncements)).Methods("GET")
	admin.HandleFunc("/announcements", s.requirePermission("announcements", s.handleCreateAnnouncement)).Methods("POST")
	admin.HandleFunc("/announcements/{id}", s.requirePermission("announcements", s.handleUpdateAnnouncement)).Methods("PUT")
	admin.HandleFunc("/announcements/{id}", s.requirePermission("announcements", s.handleDeleteAnnouncement)).Methods("DELETE")
	admin.HandleFunc("/announcements/{id}/active", s.requirePermission("announcements", s.handleToggleAnnouncement)).Methods("POST")

	admin.HandleFunc("/carousel", s.requirePermission("carousel", s.handleAdminCarousel)).Methods("GET")
	admin.HandleFunc("/carousel", s.requirePermission("carousel", s.handleCreateCarouselItem)).Methods("POST")
	admin.HandleFunc("/carousel/{id:[0-9]+}", s.requirePermission("carousel", s.handleUpdateCarouselItem)).Methods("PUT")
	admin.HandleFunc("/carousel/{id:[0-9]+}", s.requirePermission("carousel", s.handleDeleteCarouselItem)).Methods("DELETE")
	admin.HandleFunc("/carousel/{id:[0-9]+}/active", s.requirePermission("carousel", s.handleToggleCarouselItem)).Methods("POST")
	admin.HandleFunc("/carousel/{id:[0-9]+}/reorder", s.requirePermission("carousel", s.handleReorderCarouselItem)).Methods("POST")

	admin.HandleFunc("/settings", s.requirePermission("settings", s.handleGetSettings)).Methods("GET")
	admin.HandleFunc("/settings", s.requirePermission("settings", s.handleUpdateSettings)).Methods("PUT")

	admin.HandleFunc("/contacts", s.requirePermission("contacts", s.handleListContacts)).Methods("GET")
	admin.HandleFunc("/contacts/{id}/status", s.requirePermission("contacts", s.handleSetContactStatus)).Methods("POST")
	admin.HandleFunc("/contacts/{id}/respond", s.requirePermission("contacts", s.handleRespondContact)).Methods("POST")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
