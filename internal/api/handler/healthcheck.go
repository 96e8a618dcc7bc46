package handler

import (
	"net/http"
	"time"
)

type healthcheckResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, healthcheckResponse{
			Status:    "ok",
			Timestamp: time.Now().Format(time.RFC3339),
			Message:   "Servidor ativo",
		})
	})
}
