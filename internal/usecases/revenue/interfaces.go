package revenue

import (
	"context"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/domain"
)

// Aggregator define a interface do agregador de receita por campanha
type Aggregator interface {
	// GetCampaignRevenue nunca retorna erro: qualquer falha no caminho até o
	// Ad Manager vira um resultado "mock" com receita zero (fail-soft).
	GetCampaignRevenue(ctx context.Context, query *domain.RevenueQuery) *domain.RevenueResult
}

// ReportFetcher abstrai o ciclo de relatório do integrador do Ad Manager
type ReportFetcher interface {
	FetchRevenueReportCSV(ctx context.Context, query *gamdomain.ReportQuery) (string, error)
}
