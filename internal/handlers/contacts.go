package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gamevault/internal/service"
)

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.svc.SubmitContactRequest(s.actorWithName(r, body.Name), body.Name, body.Email, body.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	requests, err := s.svc.ListContactRequests(service.ContactQuery{
		Q:      r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleSetContactStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.svc.SetContactStatus(s.actorFrom(r), mux.Vars(r)["id"], body.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleRespondContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.svc.RespondToContactRequest(s.actorFrom(r), mux.Vars(r)["id"], body.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
