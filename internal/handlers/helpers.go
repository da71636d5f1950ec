package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service and collection errors onto HTTP
// statuses. Validation failures carry the offending field names so
// the UI can show them instead of silently dropping the action.
func respondServiceError(w http.ResponseWriter, err error) {
	var validation *collection.ValidationError
	switch {
	case errors.As(err, &validation):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validation.Fields,
		})
	case errors.Is(err, collection.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, collection.ErrConflict):
		respondError(w, http.StatusConflict, "record was modified by someone else, reload and retry")
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "username already taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrCommentsDisabled):
		respondError(w, http.StatusForbidden, "comments are disabled")
	case errors.Is(err, service.ErrRegistrationDisabled):
		respondError(w, http.StatusForbidden, "registration is disabled")
	default:
		log.Printf("[handlers] internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// clientIP extracts the real client address, preferring the first
// X-Forwarded-For hop when the server sits behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// actorFrom builds the audit actor for a request. Authenticated
// requests use the token subject; anonymous ones record "visitor".
func (s *Server) actorFrom(r *http.Request) audit.Actor {
	username := "visitor"
	if claims, ok := claimsFrom(r); ok {
		username = claims.Username
	}
	return audit.Actor{
		Username:  username,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// actorWithName is actorFrom with an explicit username, for requests
// that identify themselves in the body rather than a token.
func (s *Server) actorWithName(r *http.Request, username string) audit.Actor {
	actor := s.actorFrom(r)
	if username != "" {
		actor.Username = username
	}
	return actor
}
