package model

// Customer mirrors the backend customer resource. Optional fields stay
// pointer-free; the backend sends empty strings for absent values except
// SalesDate, which can be null.
type Customer struct {
	ID          int64            `json:"id"`
	CompanyName string           `json:"companyName"`
	BranchName  string           `json:"branchName,omitempty"`
	OwnerName   string           `json:"ownerName"`
	Phone       string           `json:"phone,omitempty"`
	Email       string           `json:"email"`
	City        string           `json:"city,omitempty"`
	District    string           `json:"district,omitempty"`
	Address     string           `json:"address,omitempty"`
	TaxNumber   string           `json:"taxNumber,omitempty"`
	TaxOffice   string           `json:"taxOffice,omitempty"`
	WebSite     string           `json:"webSite,omitempty"`
	SalesDate   *string          `json:"salesDate"`
	Status      int              `json:"status"`
	Products    []ProductSummary `json:"products,omitempty"`
}

// ProductSummary is the reduced product shape embedded in customer payloads.
type ProductSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCustomerRequest carries the fields for creating a customer.
type CreateCustomerRequest struct {
	CompanyName string  `json:"companyName"`
	BranchName  string  `json:"branchName,omitempty"`
	OwnerName   string  `json:"ownerName"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email"`
	City        string  `json:"city,omitempty"`
	District    string  `json:"district,omitempty"`
	Address     string  `json:"address,omitempty"`
	TaxNumber   string  `json:"taxNumber,omitempty"`
	TaxOffice   string  `json:"taxOffice,omitempty"`
	WebSite     string  `json:"webSite,omitempty"`
	SalesDate   *string `json:"salesDate"`
	Status      int     `json:"status"`
	ProductIDs  []int64 `json:"productIds,omitempty"`
}

// UpdateCustomerRequest carries a full customer replacement; the backend
// expects the id repeated in the body.
type UpdateCustomerRequest struct {
	ID int64 `json:"id"`
	CreateCustomerRequest
}

// CustomerChangeLog is one audited field change on a customer record.
type CustomerChangeLog struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	FieldName  string  `json:"fieldName"`
	OldValue   *string `json:"oldValue"`
	NewValue   *string `json:"newValue"`
	ChangedBy  string  `json:"changedBy"`
	ChangedAt  string  `json:"changedAt"`
}
