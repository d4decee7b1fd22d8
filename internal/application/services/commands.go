package services

import "github.com/payform/billing-service/internal/application"

// Profile is the billing form's customer fields, straight from untrusted
// input. It lives only for the duration of one request.
type Profile struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Zip     string
}

type CardEnrollCommand struct {
	Profile Profile
	TokenID string
}

type ACHEnrollCommand struct {
	Profile     Profile
	PublicToken string
	AccountID   string
}

// customerRequest maps a profile and a payment source into the processor's
// customer-creation shape. Country is always US. Company is collected by the
// form but never forwarded.
func customerRequest(p Profile, source string) application.CustomerRequest {
	return application.CustomerRequest{
		Email:  p.Email,
		Source: source,
		Shipping: application.Shipping{
			Name:  p.Name,
			Phone: p.Phone,
			Address: application.Address{
				Line1:      p.Address,
				City:       p.City,
				State:      p.State,
				PostalCode: p.Zip,
				Country:    "US",
			},
		},
	}
}
