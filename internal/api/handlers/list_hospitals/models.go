package list_hospitals

// HospitalsRequest HTTP request model
type HospitalsRequest struct {
	State string `json:"state"`
	City  string `json:"city"`
}
