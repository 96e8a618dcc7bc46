package gamclient

import (
	"context"
	"fmt"
	"net/http"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
)

// GetCurrentNetwork busca os metadados da rede configurada. Usado como smoke
// test de credenciais e conectividade.
func (c *GAMClient) GetCurrentNetwork(ctx context.Context) (*gamdomain.Network, error) {
	url := fmt.Sprintf("%s/networks/%s", c.cfg.AdManager.URL, c.cfg.AdManager.NetworkCode)

	var network gamdomain.Network
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &network); err != nil {
		return nil, err
	}

	return &network, nil
}
