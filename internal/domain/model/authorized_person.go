package model

// AuthorizedPerson is a customer contact authorized to act on the customer's
// behalf. CustomerName is populated only when the backend includes the parent
// company in the payload.
type AuthorizedPerson struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customerId"`
	FullName     string `json:"fullName"`
	Title        string `json:"title"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BirthDate    string `json:"birthDate,omitempty"`
	IsActive     bool   `json:"isActive"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
}

// CreateAuthorizedPersonRequest carries the fields for adding a contact.
type CreateAuthorizedPersonRequest struct {
	CustomerID int64  `json:"customerId"`
	FullName   string `json:"fullName"`
	Title      string `json:"title"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateAuthorizedPersonRequest carries a full contact replacement.
type UpdateAuthorizedPersonRequest struct {
	ID int64 `json:"id"`
	CreateAuthorizedPersonRequest
}
