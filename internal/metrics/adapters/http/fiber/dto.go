package fiber

type MetricRowResponse struct {
	AccountID string  `json:"account_id"`
	Value     float64 `json:"value"`
}

type CountRowResponse struct {
	AccountID string `json:"account_id"`
	Count     int    `json:"count"`
}

type AverageDAUResponse struct {
	From string              `json:"from"`
	To   string              `json:"to"`
	Days float64             `json:"days"`
	Rows []MetricRowResponse `json:"rows"`
}

type MAUResponse struct {
	From string             `json:"from"`
	To   string             `json:"to"`
	Rows []CountRowResponse `json:"rows"`
}

type GrowthResponse struct {
	PriorFrom   string              `json:"prior_from"`
	PriorTo     string              `json:"prior_to"`
	CurrentFrom string              `json:"current_from"`
	CurrentTo   string              `json:"current_to"`
	Rows        []MetricRowResponse `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"from and to are required"`
}
