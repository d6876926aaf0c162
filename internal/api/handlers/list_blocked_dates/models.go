package list_blocked_dates

// BlockedDatesResponse blocked dates within the requested range
type BlockedDatesResponse struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	BlockedDates []string `json:"blockedDates"`
}
