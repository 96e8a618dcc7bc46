package gamclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
	"golang.org/x/oauth2"
)

type Client interface {
	GetCurrentNetwork(ctx context.Context) (*gamdomain.Network, error)
	RunReportJob(ctx context.Context, query *gamdomain.ReportQuery) (string, error)
	GetReportJobStatus(ctx context.Context, jobID string) (string, error)
	GetReportDownloadURL(ctx context.Context, jobID string) (string, error)
	DownloadReport(ctx context.Context, downloadURL string) (string, error)
}

type GAMClient struct {
	cfg *config.Config

	mu         sync.Mutex
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GAMClient{cfg: cfg}
}

// doJSON executa uma chamada autenticada contra a API do Ad Manager e
// decodifica a resposta JSON em out.
func (c *GAMClient) doJSON(ctx context.Context, method, url string, body, out any) error {
	httpClient, err := c.authorizedClient()
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return gamdomain.NewFailure(gamdomain.KindRequestFailure, "erro ao codificar o corpo da requisição", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return gamdomain.NewFailure(gamdomain.KindRequestFailure, "erro ao criar a requisição", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// Falhas na obtenção do token chegam embrulhadas pelo transport do oauth2
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return gamdomain.NewFailure(gamdomain.KindAuthFailure, "falha ao autenticar a service account", err)
		}
		return gamdomain.NewFailure(gamdomain.KindRequestFailure, "erro ao executar a requisição", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gamdomain.NewFailure(gamdomain.KindRequestFailure, "erro ao ler a resposta", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return gamdomain.NewFailure(gamdomain.KindAuthFailure,
			fmt.Sprintf("autenticação rejeitada pelo Ad Manager: %s", resp.Status), nil)
	}

	if resp.StatusCode != http.StatusOK {
		return gamdomain.NewFailure(gamdomain.KindRequestFailure,
			fmt.Sprintf("requisição falhou com status: %s", resp.Status), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return gamdomain.NewFailure(gamdomain.KindParseFailure, "erro ao decodificar JSON", err)
	}

	return nil
}
