package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/admanager-revenue-api/internal/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/admanager-revenue-api/pkg/log"
	"github.com/vfg2006/admanager-revenue-api/pkg/utils"
)

type RevenueRequest struct {
	UTMCampaign string `json:"utmCampaign"`
	WebsiteURL  string `json:"websiteUrl"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type revenueResponse struct {
	Success      bool          `json:"success"`
	TotalRevenue float64       `json:"totalRevenue"`
	Source       string        `json:"source"`
	UTMCampaign  string        `json:"utmCampaign"`
	WebsiteURL   string        `json:"websiteUrl,omitempty"`
	Period       domain.Period `json:"period"`
	RecordsFound int           `json:"recordsFound"`
	Error        string        `json:"error,omitempty"`
	RequiresAuth *bool         `json:"requiresAuth,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CampaignRevenue responde a consulta de receita por tag de campanha.
// Parâmetros ausentes ou datas malformadas respondem 400; qualquer falha de
// negócio responde 200 com um resultado "mock" (política fail-soft do
// agregador).
func CampaignRevenue(service revenue.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req RevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("revenue: invalid request body")
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   "Formato de requisição inválido",
			})
			return
		}

		var missing []string
		if req.UTMCampaign == "" {
			missing = append(missing, "utmCampaign")
		}
		if req.StartDate == "" {
			missing = append(missing, "startDate")
		}
		if req.EndDate == "" {
			missing = append(missing, "endDate")
		}

		if len(missing) > 0 {
			logger.WithField("missing", missing).Warn("revenue: missing required parameters")
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   "Parâmetros obrigatórios ausentes: " + strings.Join(missing, ", "),
			})
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": req.StartDate,
				"error":      err.Error(),
			}).Warn("revenue: invalid startDate parameter")
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   "startDate inválido, use o formato YYYY-MM-DD",
			})
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": req.EndDate,
				"error":    err.Error(),
			}).Warn("revenue: invalid endDate parameter")
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   "endDate inválido, use o formato YYYY-MM-DD",
			})
			return
		}

		query := &domain.RevenueQuery{
			UTMCampaign: req.UTMCampaign,
			WebsiteURL:  req.WebsiteURL,
			StartDate:   startDate,
			EndDate:     endDate,
		}

		logger.WithFields(log.Fields{
			"utm_campaign": query.UTMCampaign,
			"start_date":   req.StartDate,
			"end_date":     req.EndDate,
		}).Info("revenue: fetching campaign revenue")

		result := service.GetCampaignRevenue(r.Context(), query)

		response := revenueResponse{
			Success:      true,
			TotalRevenue: result.TotalRevenue,
			Source:       result.Source,
			UTMCampaign:  result.UTMCampaign,
			WebsiteURL:   result.WebsiteURL,
			Period:       result.Period,
			RecordsFound: result.RecordsFound,
		}

		if result.Source == domain.SourceMock {
			response.Error = result.Error
			requiresAuth := result.RequiresAuth
			response.RequiresAuth = &requiresAuth
		}

		respondJSON(w, http.StatusOK, response)
	})
}
