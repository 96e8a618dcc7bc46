package handler

import (
	"net/http"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/probing"
	"github.com/vfg2006/admanager-revenue-api/pkg/log"
)

type testConnectionResponse struct {
	Success     bool               `json:"success"`
	NetworkInfo *gamdomain.Network `json:"networkInfo,omitempty"`
	Message     string             `json:"message,omitempty"`
	Error       string             `json:"error,omitempty"`
	// Ponteiro para o campo só aparecer nas respostas de falha
	RequiresSetup *bool `json:"requiresSetup,omitempty"`
}

// TestConnection verifica credenciais e conectividade com o Ad Manager.
// Configuração ausente responde 400 com requiresSetup=true; qualquer outra
// falha responde 500 com requiresSetup=false.
func TestConnection(service probing.Prober) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		network, err := service.TestConnection(r.Context())
		if err != nil {
			requiresSetup := gamdomain.KindOf(err) == gamdomain.KindConfigMissing

			status := http.StatusInternalServerError
			if requiresSetup {
				status = http.StatusBadRequest
			}

			logger.WithFields(log.Fields{
				"status_code":    status,
				"requires_setup": requiresSetup,
				"error":          err.Error(),
			}).Warn("connection: test failed")

			respondJSON(w, status, testConnectionResponse{
				Success:       false,
				Error:         err.Error(),
				RequiresSetup: &requiresSetup,
			})
			return
		}

		logger.WithField("network_code", network.NetworkCode).Info("connection: test succeeded")

		respondJSON(w, http.StatusOK, testConnectionResponse{
			Success:     true,
			NetworkInfo: network,
			Message:     "Conexão com o Ad Manager verificada com sucesso",
		})
	})
}
