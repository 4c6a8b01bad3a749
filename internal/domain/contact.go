package domain

import "time"

// ContactInquiry represents a "contact us" form submission
type ContactInquiry struct {
	ServiceRequested string `json:"serviceRequested"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	CompanyName      string `json:"companyName,omitempty"`
	Position         string `json:"position,omitempty"`
	Country          string `json:"country"`
	StateProvince    string `json:"stateProvince"`
	Message          string `json:"message"`
	// SubmittedAt is assigned by the server; any client value is ignored
	SubmittedAt time.Time `json:"-"`
}

// WorkApplication represents a "work with us" form submission
type WorkApplication struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Message     string    `json:"message"`
	HasResume   bool      `json:"hasResume"`
	SubmittedAt time.Time `json:"-"`
}
