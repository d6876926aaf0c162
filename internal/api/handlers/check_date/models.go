package check_date

// DateAvailabilityResponse availability of a single date
type DateAvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}
