package model

// DashboardSummary aggregates resource counts for the dashboard landing page.
// AuthorizedPersons is nil when the viewer lacks the supervisory capability.
type DashboardSummary struct {
	Customers         int  `json:"customers"`
	Products          int  `json:"products"`
	Maintenances      int  `json:"maintenances"`
	AuthorizedPersons *int `json:"authorizedPersons,omitempty"`
}
