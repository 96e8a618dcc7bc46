package gamclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
)

// DownloadReport baixa o conteúdo CSV do relatório a partir da URL assinada
// retornada pelo ReportService. A URL já carrega a autorização, então a
// requisição usa um cliente HTTP simples com timeout próprio.
func (c *GAMClient) DownloadReport(ctx context.Context, downloadURL string) (string, error) {
	timeout := time.Duration(c.cfg.Report.DownloadTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", gamdomain.NewFailure(gamdomain.KindDownloadFailure, "erro ao criar a requisição de download", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", gamdomain.NewFailure(gamdomain.KindDownloadFailure, "erro ao baixar o relatório", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", gamdomain.NewFailure(gamdomain.KindDownloadFailure,
			fmt.Sprintf("download do relatório falhou com status: %s", resp.Status), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", gamdomain.NewFailure(gamdomain.KindDownloadFailure, "erro ao ler o conteúdo do relatório", err)
	}

	return string(data), nil
}
