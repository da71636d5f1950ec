package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gamevault/internal/models"
	"gamevault/internal/service"
)

// handleGameComments is the public view: approved comments only.
func (s *Server) handleGameComments(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	comments, err := s.svc.ApprovedComments(gameID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

func (s *Server) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	comment.GameID = gameID

	created, err := s.svc.SubmitComment(s.actorWithName(r, comment.Username), comment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	gameID, _ := strconv.Atoi(r.URL.Query().Get("game_id"))
	comments, err := s.svc.ListComments(service.CommentQuery{
		Q:      r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		GameID: gameID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

func (s *Server) handleToggleComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	toggled, err := s.svc.ToggleCommentApproval(s.actorFrom(r), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toggled)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := s.svc.DeleteComment(s.actorFrom(r), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
