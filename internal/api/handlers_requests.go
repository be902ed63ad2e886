package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type createRequestRequest struct {
	Description string `json:"description"`
}

func (s *HTTPServer) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestorID, err := actingUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	request, err := s.requests.CreateRequest(r.Context(), requestorID, body.Description)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, requestResponse{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       []itemResponse{},
	})
}

func (s *HTTPServer) handleGetUserRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requests, err := s.requests.GetUserRequests(r.Context(), userID)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}

	out := make([]requestResponse, 0, len(requests))
	for _, d := range requests {
		out = append(out, toRequestDetailsResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleGetAllRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requests, err := s.requests.GetAllRequests(r.Context(), userID)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}

	out := make([]requestResponse, 0, len(requests))
	for _, d := range requests {
		out = append(out, toRequestDetailsResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	if _, err := actingUserID(r); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := s.requests.GetRequestByID(r.Context(), requestID)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestDetailsResponse(details))
}
