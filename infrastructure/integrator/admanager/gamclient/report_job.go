package gamclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
)

type runReportJobRequest struct {
	ReportQuery *gamdomain.ReportQuery `json:"reportQuery"`
}

type reportJobResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type downloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// RunReportJob submete o job de relatório e retorna o identificador usado no
// polling de status.
func (c *GAMClient) RunReportJob(ctx context.Context, query *gamdomain.ReportQuery) (string, error) {
	endpoint := fmt.Sprintf("%s/networks/%s/reportJobs", c.cfg.AdManager.URL, c.cfg.AdManager.NetworkCode)

	var job reportJobResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, runReportJobRequest{ReportQuery: query}, &job); err != nil {
		return "", err
	}

	if job.ID == "" {
		return "", gamdomain.NewFailure(gamdomain.KindRequestFailure,
			"Ad Manager não retornou o identificador do job de relatório", errors.New("empty report job id"))
	}

	return job.ID, nil
}

// GetReportJobStatus consulta o status atual do job de relatório.
func (c *GAMClient) GetReportJobStatus(ctx context.Context, jobID string) (string, error) {
	endpoint := fmt.Sprintf("%s/networks/%s/reportJobs/%s/status",
		c.cfg.AdManager.URL, c.cfg.AdManager.NetworkCode, url.PathEscape(jobID))

	var job reportJobResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &job); err != nil {
		return "", err
	}

	return job.Status, nil
}

// GetReportDownloadURL obtém a URL de download do relatório pronto, em CSV.
func (c *GAMClient) GetReportDownloadURL(ctx context.Context, jobID string) (string, error) {
	endpoint := fmt.Sprintf("%s/networks/%s/reportJobs/%s/downloadUrl?exportFormat=CSV_DUMP",
		c.cfg.AdManager.URL, c.cfg.AdManager.NetworkCode, url.PathEscape(jobID))

	var download downloadURLResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &download); err != nil {
		return "", err
	}

	if download.DownloadURL == "" {
		return "", gamdomain.NewFailure(gamdomain.KindDownloadFailure,
			"Ad Manager não retornou a URL de download do relatório", errors.New("empty download url"))
	}

	return download.DownloadURL, nil
}
