package admanager

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gamdomain "github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/domain"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/gamclient"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultPollMaxAttempts = 30
)

type AdManagerIntegrator struct {
	cfg    *config.Config
	Client gamclient.Client
}

func New(cfg *config.Config, client gamclient.Client) *AdManagerIntegrator {
	return &AdManagerIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetNetworkInfo busca os metadados da rede como verificação de credenciais.
func (s *AdManagerIntegrator) GetNetworkInfo(ctx context.Context) (*gamdomain.Network, error) {
	network, err := s.Client.GetCurrentNetwork(ctx)
	if err != nil {
		logrus.WithError(err).Error("admanager: failed to get current network")
		return nil, errors.Wrap(err, "falha ao consultar a rede do Ad Manager")
	}

	logrus.WithFields(logrus.Fields{
		"network_code": network.NetworkCode,
		"display_name": network.DisplayName,
	}).Debug("admanager: successfully retrieved network metadata")

	return network, nil
}

// FetchRevenueReportCSV executa o ciclo completo do relatório: submete o job,
// faz polling até a conclusão e baixa o resultado em CSV.
func (s *AdManagerIntegrator) FetchRevenueReportCSV(ctx context.Context, query *gamdomain.ReportQuery) (string, error) {
	jobID, err := s.Client.RunReportJob(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("admanager: failed to run report job")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"job_id":    jobID,
		"statement": query.Statement,
	}).Info("admanager: report job submitted")

	if err := s.waitForCompletion(ctx, jobID); err != nil {
		return "", err
	}

	downloadURL, err := s.Client.GetReportDownloadURL(ctx, jobID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"error":  err.Error(),
		}).Error("admanager: failed to get report download URL")
		return "", err
	}

	csvBody, err := s.Client.DownloadReport(ctx, downloadURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"error":  err.Error(),
		}).Error("admanager: failed to download report")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"job_id":     jobID,
		"body_bytes": len(csvBody),
	}).Debug("admanager: report downloaded")

	return csvBody, nil
}

// waitForCompletion faz o polling do status do job em intervalo fixo até o
// limite de tentativas, respeitando o cancelamento do contexto. Um job que
// reporta FAILED encerra o ciclo de imediato em vez de consumir o orçamento
// inteiro de tentativas.
func (s *AdManagerIntegrator) waitForCompletion(ctx context.Context, jobID string) error {
	interval := time.Duration(s.cfg.Report.PollIntervalSeconds) * time.Second
	if s.cfg.Report.PollIntervalSeconds < 0 {
		interval = defaultPollInterval
	}

	maxAttempts := s.cfg.Report.PollMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultPollMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, err := s.Client.GetReportJobStatus(ctx, jobID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"job_id":  jobID,
				"attempt": attempt,
				"error":   err.Error(),
			}).Error("admanager: failed to get report job status")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"job_id":  jobID,
			"attempt": attempt,
			"status":  status,
		}).Debug("admanager: report job status")

		switch status {
		case gamdomain.ReportStatusCompleted:
			return nil
		case gamdomain.ReportStatusFailed:
			return gamdomain.NewFailure(gamdomain.KindRequestFailure,
				fmt.Sprintf("job de relatório %s falhou no Ad Manager", jobID), nil)
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return gamdomain.NewFailure(gamdomain.KindTimeout,
				"consulta do relatório cancelada antes da conclusão", ctx.Err())
		case <-timer.C:
		}
	}

	return gamdomain.NewFailure(gamdomain.KindTimeout,
		fmt.Sprintf("relatório não ficou pronto após %d tentativas", maxAttempts), nil)
}
