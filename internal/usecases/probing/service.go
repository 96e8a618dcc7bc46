package probing

import (
	"context"

	"github.com/sirupsen/logrus"
	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
)

// Prober define a interface do teste de credenciais/conectividade
type Prober interface {
	TestConnection(ctx context.Context) (*gamdomain.Network, error)
}

// NetworkFetcher abstrai a consulta de rede do integrador do Ad Manager
type NetworkFetcher interface {
	GetNetworkInfo(ctx context.Context) (*gamdomain.Network, error)
}

type Service struct {
	fetcher NetworkFetcher
}

func NewService(fetcher NetworkFetcher) Prober {
	return &Service{fetcher: fetcher}
}

// TestConnection verifica se as credenciais autenticam e devolve os metadados
// da rede. Ao contrário do agregador de receita, falhas aqui são propagadas:
// o propósito do endpoint é justamente diagnosticar problemas de configuração.
func (s *Service) TestConnection(ctx context.Context) (*gamdomain.Network, error) {
	network, err := s.fetcher.GetNetworkInfo(ctx)
	if err != nil {
		logrus.WithError(err).Warn("probing: connection test failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"network_code":  network.NetworkCode,
		"display_name":  network.DisplayName,
		"currency_code": network.CurrencyCode,
	}).Info("probing: connection test succeeded")

	return network, nil
}
