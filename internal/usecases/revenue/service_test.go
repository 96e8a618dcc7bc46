package revenue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager"
	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/gamclient/mocks"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
	"github.com/vfg2006/admanager-revenue-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const sampleCSV = "Dimension.DATE,Dimension.AD_UNIT_NAME,Column.AD_EXCHANGE_REVENUE\n" +
	"2024-01-01,unidade_verao2024_topo,12.5\n" +
	"2024-01-02,unidade_verao2024_lateral,bad\n" +
	"2024-01-03,unidade_verao2024_rodape,7.5"

func testQuery() *domain.RevenueQuery {
	return &domain.RevenueQuery{
		UTMCampaign: "verao2024",
		WebsiteURL:  "https://loja.example.com",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func newServiceWithClient(t *testing.T) (Aggregator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		Report: config.Report{
			PollIntervalSeconds: 0,
			PollMaxAttempts:     3,
		},
	}

	return NewService(cfg, admanager.New(cfg, client)), client
}

func TestGetCampaignRevenue_AggregatesCSV(t *testing.T) {
	service, client := newServiceWithClient(t)

	client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).Return("job-1", nil)
	client.EXPECT().GetReportJobStatus(gomock.Any(), "job-1").Return(gamdomain.ReportStatusCompleted, nil)
	client.EXPECT().GetReportDownloadURL(gomock.Any(), "job-1").Return("https://storage.example/report.csv", nil)
	client.EXPECT().DownloadReport(gomock.Any(), "https://storage.example/report.csv").Return(sampleCSV, nil)

	result := service.GetCampaignRevenue(context.Background(), testQuery())

	// Linha com valor não numérico conta como registro de receita zero
	assert.Equal(t, 20.0, result.TotalRevenue)
	assert.Equal(t, 3, result.RecordsFound)
	assert.Equal(t, domain.SourceReal, result.Source)
	assert.Equal(t, "verao2024", result.UTMCampaign)
	assert.Equal(t, "https://loja.example.com", result.WebsiteURL)
	assert.Equal(t, domain.Period{StartDate: "2024-01-01", EndDate: "2024-01-31"}, result.Period)
	assert.Empty(t, result.Error)
	assert.False(t, result.RequiresAuth)
}

func TestGetCampaignRevenue_FilterStatement(t *testing.T) {
	service, client := newServiceWithClient(t)

	var submitted *gamdomain.ReportQuery
	client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query *gamdomain.ReportQuery) (string, error) {
			submitted = query
			return "job-1", nil
		})
	client.EXPECT().GetReportJobStatus(gomock.Any(), "job-1").Return(gamdomain.ReportStatusCompleted, nil)
	client.EXPECT().GetReportDownloadURL(gomock.Any(), "job-1").Return("https://storage.example/report.csv", nil)
	client.EXPECT().DownloadReport(gomock.Any(), gomock.Any()).Return(sampleCSV, nil)

	query := testQuery()
	query.UTMCampaign = "ver'ao"

	service.GetCampaignRevenue(context.Background(), query)

	assert.NotNil(t, submitted)
	assert.Equal(t, "WHERE AD_UNIT_NAME LIKE '%ver''ao%'", submitted.Statement)
	assert.Equal(t, "2024-01-01", submitted.StartDate)
	assert.Equal(t, "2024-01-31", submitted.EndDate)
}

func TestGetCampaignRevenue_FallsBackToMock(t *testing.T) {
	tests := []struct {
		name                 string
		failure              error
		expectedRequiresAuth bool
	}{
		{
			name:                 "Falha de autenticação etiquetada exige nova configuração",
			failure:              gamdomain.NewFailure(gamdomain.KindAuthFailure, "falha ao autenticar a service account", errors.New("invalid_grant")),
			expectedRequiresAuth: true,
		},
		{
			name:                 "Configuração ausente exige nova configuração",
			failure:              gamdomain.NewFailure(gamdomain.KindConfigMissing, "credencial ausente: ADMANAGER_PRIVATE_KEY não configurado", nil),
			expectedRequiresAuth: true,
		},
		{
			name:                 "Falha de requisição não é problema de autenticação",
			failure:              gamdomain.NewFailure(gamdomain.KindRequestFailure, "requisição falhou com status: 503 Service Unavailable", nil),
			expectedRequiresAuth: false,
		},
		{
			name:                 "Erro não etiquetado cai na heurística de substring",
			failure:              errors.New("could not load credential file"),
			expectedRequiresAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newServiceWithClient(t)

			client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).Return("", tt.failure)

			result := service.GetCampaignRevenue(context.Background(), testQuery())

			assert.Equal(t, domain.SourceMock, result.Source)
			assert.Equal(t, 0.0, result.TotalRevenue)
			assert.Equal(t, 0, result.RecordsFound)
			assert.NotEmpty(t, result.Error)
			assert.Equal(t, tt.expectedRequiresAuth, result.RequiresAuth)

			// O eco da consulta permanece presente mesmo no resultado mock
			assert.Equal(t, "verao2024", result.UTMCampaign)
			assert.Equal(t, domain.Period{StartDate: "2024-01-01", EndDate: "2024-01-31"}, result.Period)
		})
	}
}

func TestGetCampaignRevenue_PollingTimeout(t *testing.T) {
	service, client := newServiceWithClient(t)

	client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).Return("job-9", nil)
	client.EXPECT().GetReportJobStatus(gomock.Any(), "job-9").
		Return(gamdomain.ReportStatusInProgress, nil).
		Times(3)

	result := service.GetCampaignRevenue(context.Background(), testQuery())

	assert.Equal(t, domain.SourceMock, result.Source)
	assert.Equal(t, 0.0, result.TotalRevenue)
	assert.Contains(t, result.Error, "3 tentativas")
	assert.False(t, result.RequiresAuth)
}

func TestSumRevenueCSV(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedTotal   float64
		expectedRecords int
	}{
		{
			name:            "Valor inválido vira zero sem derrubar a soma",
			body:            "header\nA,B,12.5\nC,D,bad\nE,F,7.5",
			expectedTotal:   20.0,
			expectedRecords: 3,
		},
		{
			name:            "Linhas em branco são ignoradas",
			body:            "header\n\nA,B,1.25\n\nC,D,2.75\n",
			expectedTotal:   4.0,
			expectedRecords: 2,
		},
		{
			name:            "Linha com colunas de menos conta como registro de receita zero",
			body:            "header\nA,B\nC,D,3.5",
			expectedTotal:   3.5,
			expectedRecords: 2,
		},
		{
			name:            "Relatório só com cabeçalho",
			body:            "header\n",
			expectedTotal:   0,
			expectedRecords: 0,
		},
		{
			name:            "Corpo vazio",
			body:            "",
			expectedTotal:   0,
			expectedRecords: 0,
		},
		{
			name:            "Fim de linha CRLF",
			body:            "header\r\nA,B,2.5\r\nC,D,2.5\r\n",
			expectedTotal:   5.0,
			expectedRecords: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, records := sumRevenueCSV(tt.body)

			assert.Equal(t, tt.expectedTotal, total)
			assert.Equal(t, tt.expectedRecords, records)
		})
	}
}
