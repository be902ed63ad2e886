package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shareit/internal/worker"
)

type exportRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// handleExport ставит в очередь выгрузку бронирований за период.
// Доступен только администраторам из конфигурации.
func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.isAdmin(userID) {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	var body exportRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.From == nil || body.To == nil {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	if !body.To.After(*body.From) {
		writeError(w, http.StatusBadRequest, "to must be after from")
		return
	}

	task := worker.ExportTask{From: *body.From, To: *body.To, RequestedBy: userID}
	if err := s.exporter.Enqueue(task); err != nil {
		if errors.Is(err, worker.ErrQueueFull) {
			writeError(w, http.StatusServiceUnavailable, "export queue is full, try again later")
			return
		}
		respondError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (s *HTTPServer) isAdmin(userID int64) bool {
	for _, id := range s.cfg.Admins {
		if id == userID {
			return true
		}
	}
	return false
}
