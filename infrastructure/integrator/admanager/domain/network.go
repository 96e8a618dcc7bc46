package gamdomain

// Network representa os metadados da rede retornados pela API do Ad Manager
type Network struct {
	NetworkCode           string `json:"networkCode"`
	DisplayName           string `json:"displayName"`
	TimeZone              string `json:"timeZone"`
	CurrencyCode          string `json:"currencyCode"`
	PublisherID           string `json:"publisherId"`
	EffectiveRootAdUnitID string `json:"effectiveRootAdUnitId"`
}
