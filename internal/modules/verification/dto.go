package verification

// VerifyBankAccountRequest is the fixed verification schema. Optional
// fields are pointers so the upsert can distinguish "absent" (leave the
// stored value unchanged) from an explicit value.
type VerifyBankAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`

	Name        string           `json:"name"`
	Bio         *string          `json:"bio"`
	Location    *LocationPayload `json:"location"`
	Specialties []string         `json:"specialties"`
	Experience  *int             `json:"experience"`
	Socials     *SocialsPayload  `json:"socials"`

	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
}

type LocationPayload struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type SocialsPayload struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Website   string `json:"website"`
}

// FieldError is one entry of the details list returned on rejection.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ArtisanView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
}
