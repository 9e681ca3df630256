package verification

import (
	"net/url"
	"regexp"
	"unicode/utf8"

	"craftconnect/internal/domain"
)

var (
	// 9 to 18 decimal digits, nothing else.
	accountNumberRe = regexp.MustCompile(`^[0-9]{9,18}$`)
	// 4 uppercase letters, a literal zero, then 6 alphanumerics.
	ifscRe = regexp.MustCompile(`^[A-Z]{4}0[A-Za-z0-9]{6}$`)
)

// Validate checks the request against the fixed schema and returns the
// full list of field-level failures. An empty result means the payload
// is acceptable; validation never mutates the request. Length limits
// count characters, not bytes.
func (r *VerifyBankAccountRequest) Validate() []FieldError {
	var details []FieldError
	add := func(field, message string) {
		details = append(details, FieldError{Field: field, Message: message})
	}

	if !accountNumberRe.MatchString(r.AccountNumber) {
		add("accountNumber", "must be 9 to 18 digits")
	}
	if !ifscRe.MatchString(r.IFSCCode) {
		add("ifscCode", "must match format AAAA0XXXXXX")
	}
	if l := utf8.RuneCountInString(r.BankName); l < 1 || l > 100 {
		add("bankName", "must be between 1 and 100 characters")
	}

	if l := utf8.RuneCountInString(r.Name); l < 1 || l > 200 {
		add("name", "must be between 1 and 200 characters")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > 1000 {
		add("bio", "must be at most 1000 characters")
	}

	if r.Location == nil {
		add("location.city", "is required")
		add("location.state", "is required")
	} else {
		if l := utf8.RuneCountInString(r.Location.City); l < 1 || l > 100 {
			add("location.city", "must be between 1 and 100 characters")
		}
		if l := utf8.RuneCountInString(r.Location.State); l < 1 || l > 100 {
			add("location.state", "must be between 1 and 100 characters")
		}
	}

	if r.Experience != nil && *r.Experience < 0 {
		add("experience", "must not be negative")
	}

	if r.Socials != nil && r.Socials.Website != "" {
		if !isValidURL(r.Socials.Website) {
			add("socials.website", "must be a valid URL")
		}
	}

	switch r.DocumentType {
	case domain.DocumentAadhar, domain.DocumentPAN, domain.DocumentLicense:
	default:
		add("documentType", "must be one of aadhar, pan, license")
	}
	if r.DocumentNumber == "" {
		add("documentNumber", "is required")
	}

	return details
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
