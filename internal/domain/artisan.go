package domain

import "time"

// Document types accepted for identity declaration.
const (
	DocumentAadhar  = "aadhar"
	DocumentPAN     = "pan"
	DocumentLicense = "license"
)

// DefaultCountry is used when a submission omits the country.
const DefaultCountry = "India"

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Website   string `json:"website,omitempty"`
}

type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
}

// Verification is replaced wholesale on every successful validated
// submission; it is never merged field-by-field.
type Verification struct {
	IsVerified     bool        `json:"isVerified"`
	DocumentType   string      `json:"documentType"`
	DocumentNumber string      `json:"documentNumber"`
	BankDetails    BankDetails `json:"bankDetails"`
	VerifiedAt     time.Time   `json:"verifiedAt"`
}

// Artisan is the persisted seller profile. At most one record exists per
// user; all mutation goes through an upsert keyed by UserID.
type Artisan struct {
	ID           int64
	UserID       int64
	Name         string
	Bio          string
	Location     Location
	Specialties  []string
	Experience   int
	Socials      SocialLinks
	Verification Verification
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
