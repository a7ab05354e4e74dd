package model

// Maintenance is a maintenance agreement between a customer and the company.
// Status fields arrive as display strings on reads but are submitted as
// numeric enum values on writes, matching the backend contract.
type Maintenance struct {
	ID                  int64            `json:"id"`
	CustomerID          int64            `json:"customerId"`
	CustomerName        string           `json:"customerName"`
	Subject             string           `json:"subject"`
	StartDate           string           `json:"startDate"`
	EndDate             string           `json:"endDate"`
	PassportCreatedDate string           `json:"passportCreatedDate,omitempty"`
	OfferStatus         string           `json:"offerStatus"`
	ContractStatus      string           `json:"contractStatus"`
	LicenseStatus       string           `json:"licenseStatus"`
	FirmSituation       string           `json:"firmSituation"`
	Products            []ProductSummary `json:"products"`
	Description         string           `json:"description,omitempty"`
	ExtendBy6Months     bool             `json:"extendBy6Months,omitempty"`
	ExtendBy1Year       bool             `json:"extendBy1Year,omitempty"`
}

// CreateMaintenanceRequest carries the fields for creating an agreement.
type CreateMaintenanceRequest struct {
	CustomerID          int64   `json:"customerId"`
	Subject             string  `json:"subject"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	PassportCreatedDate string  `json:"passportCreatedDate,omitempty"`
	OfferStatus         int     `json:"offerStatus"`
	ContractStatus      int     `json:"contractStatus"`
	LicenseStatus       int     `json:"licenseStatus"`
	FirmSituation       int     `json:"firmSituation"`
	Description         string  `json:"description,omitempty"`
	ProductIDs          []int64 `json:"productIds"`
	ExtendBy6Months     bool    `json:"extendBy6Months,omitempty"`
	ExtendBy1Year       bool    `json:"extendBy1Year,omitempty"`
}

// UpdateMaintenanceRequest carries a full agreement replacement.
type UpdateMaintenanceRequest struct {
	ID int64 `json:"id"`
	CreateMaintenanceRequest
}
