package set_date_limit

// SetDateLimitRequest HTTP request model
type SetDateLimitRequest struct {
	Limit *int `json:"limit"`
}
