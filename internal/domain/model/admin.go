package model

// Admin is an administrator record as returned by the backend. The client
// never invents or infers this data; it is fetched, displayed, and
// selectively mutated subject to the action-gate rules in the admin service.
type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	IsActive     bool   `json:"isActive"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

// AddAdminRequest carries the fields for creating an administrator account.
type AddAdminRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AdminStatusUpdate toggles an administrator's active flag.
type AdminStatusUpdate struct {
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
}
