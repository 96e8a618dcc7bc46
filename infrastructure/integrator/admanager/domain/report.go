package gamdomain

import (
	"fmt"
	"strings"
	"time"
)

// Dimensões e colunas usadas no relatório de receita
const (
	DimensionDate           = "DATE"
	DimensionAdUnitName     = "AD_UNIT_NAME"
	ColumnAdExchangeRevenue = "AD_EXCHANGE_REVENUE"
)

// Status possíveis de um job de relatório no Ad Manager
const (
	ReportStatusCompleted  = "COMPLETED"
	ReportStatusFailed     = "FAILED"
	ReportStatusInProgress = "IN_PROGRESS"
)

// ReportQuery descreve o job de relatório submetido ao ReportService
type ReportQuery struct {
	Dimensions    []string `json:"dimensions"`
	Columns       []string `json:"columns"`
	DateRangeType string   `json:"dateRangeType"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Statement     string   `json:"statement,omitempty"`
}

// NewRevenueReportQuery monta a consulta de receita do Ad Exchange filtrada
// pelo nome da unidade de anúncio que contém a tag de campanha (UTM).
func NewRevenueReportQuery(utmCampaign string, startDate, endDate time.Time) *ReportQuery {
	return &ReportQuery{
		Dimensions:    []string{DimensionDate, DimensionAdUnitName},
		Columns:       []string{ColumnAdExchangeRevenue},
		DateRangeType: "CUSTOM_DATE",
		StartDate:     startDate.Format(time.DateOnly),
		EndDate:       endDate.Format(time.DateOnly),
		Statement:     fmt.Sprintf("WHERE %s LIKE '%%%s%%'", DimensionAdUnitName, SanitizeStatementValue(utmCampaign)),
	}
}

// SanitizeStatementValue escapa o valor antes da interpolação no statement.
// Aspas simples são duplicadas para que o termo de busca não consiga encerrar
// a string da consulta.
func SanitizeStatementValue(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
