package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager"
	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/gamclient/mocks"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
	"github.com/vfg2006/admanager-revenue-api/internal/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/revenue"
	"go.uber.org/mock/gomock"
)

func newRevenueServiceWithClient(t *testing.T) (revenue.Aggregator, *mocks.MockClient) {
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

	return revenue.NewService(cfg, admanager.New(cfg, client)), client
}

func postRevenue(t *testing.T, service revenue.Aggregator, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/admanager-revenue", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CampaignRevenue(service).ServeHTTP(rec, req)

	return rec
}

func TestCampaignRevenue_MissingParameters(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMention string
	}{
		{
			name:            "Sem utmCampaign",
			body:            `{"startDate":"2024-01-01","endDate":"2024-01-31"}`,
			expectedMention: "utmCampaign",
		},
		{
			name:            "Sem startDate",
			body:            `{"utmCampaign":"verao2024","endDate":"2024-01-31"}`,
			expectedMention: "startDate",
		},
		{
			name:            "Sem endDate",
			body:            `{"utmCampaign":"verao2024","startDate":"2024-01-01"}`,
			expectedMention: "endDate",
		},
		{
			name:            "Corpo vazio",
			body:            `{}`,
			expectedMention: "utmCampaign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postRevenue(t, nil, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

			assert.False(t, response.Success)
			assert.Contains(t, response.Error, tt.expectedMention)
		})
	}
}

func TestCampaignRevenue_InvalidBodyAndDates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "JSON malformado",
			body: `{"utmCampaign":`,
		},
		{
			name: "startDate fora do formato YYYY-MM-DD",
			body: `{"utmCampaign":"verao2024","startDate":"01/01/2024","endDate":"2024-01-31"}`,
		},
		{
			name: "endDate fora do formato YYYY-MM-DD",
			body: `{"utmCampaign":"verao2024","startDate":"2024-01-01","endDate":"31-01-2024"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postRevenue(t, nil, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
		})
	}
}

func TestCampaignRevenue_Success(t *testing.T) {
	service, client := newRevenueServiceWithClient(t)

	client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).Return("job-1", nil)
	client.EXPECT().GetReportJobStatus(gomock.Any(), "job-1").Return(gamdomain.ReportStatusCompleted, nil)
	client.EXPECT().GetReportDownloadURL(gomock.Any(), "job-1").Return("https://storage.example/report.csv", nil)
	client.EXPECT().DownloadReport(gomock.Any(), gomock.Any()).
		Return("header\nA,unidade_verao2024,12.5\nB,unidade_verao2024,7.5", nil)

	rec := postRevenue(t, service,
		`{"utmCampaign":"verao2024","websiteUrl":"https://loja.example.com","startDate":"2024-01-01","endDate":"2024-01-31"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response revenueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 20.0, response.TotalRevenue)
	assert.Equal(t, domain.SourceReal, response.Source)
	assert.Equal(t, "verao2024", response.UTMCampaign)
	assert.Equal(t, "https://loja.example.com", response.WebsiteURL)
	assert.Equal(t, domain.Period{StartDate: "2024-01-01", EndDate: "2024-01-31"}, response.Period)
	assert.Equal(t, 2, response.RecordsFound)
	assert.Empty(t, response.Error)
	assert.Nil(t, response.RequiresAuth)
}

func TestCampaignRevenue_FailureIsMaskedAsMock(t *testing.T) {
	service, client := newRevenueServiceWithClient(t)

	client.EXPECT().RunReportJob(gomock.Any(), gomock.Any()).
		Return("", gamdomain.NewFailure(gamdomain.KindAuthFailure, "falha ao autenticar a service account", nil))

	rec := postRevenue(t, service,
		`{"utmCampaign":"verao2024","startDate":"2024-01-01","endDate":"2024-01-31"}`)

	// Falha de negócio nunca vira status de erro: o frontend sempre recebe
	// um payload de receita bem formado
	assert.Equal(t, http.StatusOK, rec.Code)

	var response revenueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 0.0, response.TotalRevenue)
	assert.Equal(t, domain.SourceMock, response.Source)
	assert.Equal(t, 0, response.RecordsFound)
	assert.NotEmpty(t, response.Error)
	require.NotNil(t, response.RequiresAuth)
	assert.True(t, *response.RequiresAuth)
}
