package domain

import "time"

// Origem do resultado de receita: "real" quando veio do relatório do Ad
// Manager, "mock" quando o backend mascarou uma falha com valor zero.
const (
	SourceReal = "real"
	SourceMock = "mock"
)

// RevenueQuery é a consulta de receita por tag de campanha (UTM)
type RevenueQuery struct {
	UTMCampaign string
	WebsiteURL  string
	StartDate   time.Time
	EndDate     time.Time
}

// Period ecoa o intervalo consultado na resposta
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// RevenueResult é o resultado agregado devolvido ao chamador. Nada disso é
// persistido; o valor morre com a requisição.
type RevenueResult struct {
	TotalRevenue float64
	Source       string
	RecordsFound int
	UTMCampaign  string
	WebsiteURL   string
	Period       Period
	Error        string
	RequiresAuth bool
}

func (q *RevenueQuery) PeriodEcho() Period {
	return Period{
		StartDate: q.StartDate.Format(time.DateOnly),
		EndDate:   q.EndDate.Format(time.DateOnly),
	}
}
