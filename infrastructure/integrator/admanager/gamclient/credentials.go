package gamclient

import (
	"context"
	"net/http"

	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// Escopos fixos exigidos pela API de relatórios: administração do Ad Manager
// e leitura do Ad Exchange.
var scopes = []string{
	"https://www.googleapis.com/auth/dfp",
	"https://www.googleapis.com/auth/adexchange.seller.readonly",
}

// authorizedClient devolve um *http.Client autenticado via JWT da service
// account. O cliente é construído na primeira chamada e reutilizado; a
// validação das credenciais acontece aqui para que o servidor suba mesmo sem
// configuração e os endpoints reportem o problema.
func (c *GAMClient) authorizedClient() (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return c.httpClient, nil
	}

	creds := c.cfg.AdManager

	// A redação destas mensagens é contrato de fato: operadores e o endpoint
	// de diagnóstico dependem delas para apontar a variável ausente.
	if creds.ServiceAccountEmail == "" {
		return nil, gamdomain.NewFailure(gamdomain.KindConfigMissing,
			"credencial ausente: ADMANAGER_SERVICE_ACCOUNT_EMAIL não configurado", nil)
	}

	if creds.PrivateKey == "" {
		return nil, gamdomain.NewFailure(gamdomain.KindConfigMissing,
			"credencial ausente: ADMANAGER_PRIVATE_KEY não configurado", nil)
	}

	if creds.NetworkCode == "" {
		return nil, gamdomain.NewFailure(gamdomain.KindConfigMissing,
			"configuração ausente: ADMANAGER_NETWORK_CODE não configurado", nil)
	}

	jwtConfig := &jwt.Config{
		Email:      creds.ServiceAccountEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}

	c.httpClient = jwtConfig.Client(context.Background())

	return c.httpClient, nil
}
