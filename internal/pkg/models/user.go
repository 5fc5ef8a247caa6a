package models

import "time"

// User roles
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
)

// UserProfile represents the authenticated user as returned by the backend.
// Driver-only fields are zero-valued for passengers; IsActivated and
// ActivationExpires are meaningful only when Role is driver.
type UserProfile struct {
	ID                    string     `json:"id"`
	Phone                 string     `json:"phone"`
	Name                  string     `json:"name"`
	Role                  string     `json:"user_type"`
	CarRegistrationNumber string     `json:"car_registration_number,omitempty"`
	OperatingNumber       string     `json:"operating_number,omitempty"`
	TaxiOfficeName        string     `json:"taxi_office_name,omitempty"`
	TaxiOfficePhone       string     `json:"taxi_office_phone,omitempty"`
	IsActivated           bool       `json:"is_activated,omitempty"`
	ActivationExpires     *time.Time `json:"activation_expires,omitempty"`
}

// IsDriver reports whether the profile belongs to a driver account
func (p *UserProfile) IsDriver() bool {
	return p != nil && p.Role == RoleDriver
}

// IsActiveDriver reports whether the profile belongs to an activated driver
func (p *UserProfile) IsActiveDriver() bool {
	return p.IsDriver() && p.IsActivated
}

// LoginRequest is the credential exchange payload
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// PassengerRegistration is the passenger account provisioning payload
type PassengerRegistration struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

// DriverRegistration is the driver account provisioning payload. The
// activation code is issued out of band and validated by the backend.
type DriverRegistration struct {
	Phone                 string `json:"phone"`
	Name                  string `json:"name"`
	CarRegistrationNumber string `json:"car_registration_number"`
	OperatingNumber       string `json:"operating_number"`
	TaxiOfficeName        string `json:"taxi_office_name"`
	TaxiOfficePhone       string `json:"taxi_office_phone"`
	Password              string `json:"password"`
	ActivationCode        string `json:"activation_code"`
}

// AuthResponse is the backend response for login and registration
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type,omitempty"`
	User        *UserProfile `json:"user"`
	Message     string       `json:"message,omitempty"`
}
