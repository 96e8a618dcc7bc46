package revenue

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
	"github.com/vfg2006/admanager-revenue-api/internal/domain"
	"github.com/vfg2006/admanager-revenue-api/pkg/utils"
)

// Índice da coluna de receita no CSV do relatório (DATE, AD_UNIT_NAME, AD_EXCHANGE_REVENUE)
const revenueColumnIndex = 2

type Service struct {
	cfg     *config.Config
	fetcher ReportFetcher
}

func NewService(cfg *config.Config, fetcher ReportFetcher) Aggregator {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// GetCampaignRevenue executa o relatório de receita do Ad Exchange filtrado
// pela tag de campanha e soma a coluna de receita do CSV resultante.
func (s *Service) GetCampaignRevenue(ctx context.Context, query *domain.RevenueQuery) *domain.RevenueResult {
	reportQuery := gamdomain.NewRevenueReportQuery(query.UTMCampaign, query.StartDate, query.EndDate)

	csvBody, err := s.fetcher.FetchRevenueReportCSV(ctx, reportQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"utm_campaign": query.UTMCampaign,
			"error":        err.Error(),
		}).Error("revenue: falling back to mock result after report failure")

		return s.mockResult(query, err)
	}

	total, records := sumRevenueCSV(csvBody)

	logrus.WithFields(logrus.Fields{
		"utm_campaign":  query.UTMCampaign,
		"total_revenue": total,
		"records_found": records,
	}).Info("revenue: successfully aggregated campaign revenue")

	return &domain.RevenueResult{
		TotalRevenue: utils.RoundWithTwoDecimalPlace(total),
		Source:       domain.SourceReal,
		RecordsFound: records,
		UTMCampaign:  query.UTMCampaign,
		WebsiteURL:   query.WebsiteURL,
		Period:       query.PeriodEcho(),
	}
}

// mockResult devolve o resultado sintético de receita zero usado para não
// quebrar o frontend quando o backend falha. O chamador distingue pelo campo
// Source.
func (s *Service) mockResult(query *domain.RevenueQuery, cause error) *domain.RevenueResult {
	return &domain.RevenueResult{
		TotalRevenue: 0,
		Source:       domain.SourceMock,
		RecordsFound: 0,
		UTMCampaign:  query.UTMCampaign,
		WebsiteURL:   query.WebsiteURL,
		Period:       query.PeriodEcho(),
		Error:        cause.Error(),
		RequiresAuth: gamdomain.IsAuthRelated(cause),
	}
}

// sumRevenueCSV soma a coluna de receita do CSV do relatório: pula o
// cabeçalho, ignora linhas em branco e trata valor não numérico como zero.
func sumRevenueCSV(body string) (float64, int) {
	lines := strings.Split(body, "\n")

	var total float64
	var records int

	for i, line := range lines {
		if i == 0 {
			continue // cabeçalho
		}

		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		records++

		columns := strings.Split(line, ",")
		if len(columns) <= revenueColumnIndex {
			logrus.WithField("line", line).Warn("revenue: report line has too few columns")
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(columns[revenueColumnIndex]), 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"revenue_value": columns[revenueColumnIndex],
				"error":         err.Error(),
			}).Warn("revenue: error converting revenue value to float")
			continue
		}

		total += value
	}

	return total, records
}
