package fiber

// CreateEventRequest represents event creation payload
// @Description Event creation DTO
type CreateEventRequest struct {
	AccountID  string         `json:"account_id"`
	UserID     string         `json:"user_id"`
	EventName  string         `json:"event_name"`
	OccurredOn string         `json:"occurred_on" example:"2021-01-05"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []bulkEventItem `json:"events"`
}

type bulkEventItem struct {
	AccountID  string         `json:"account_id"`
	UserID     string         `json:"user_id"`
	EventName  string         `json:"event_name"`
	OccurredOn string         `json:"occurred_on" example:"2021-01-05"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
