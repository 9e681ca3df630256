package verification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() VerifyBankAccountRequest {
	return VerifyBankAccountRequest{
		AccountNumber:  "123456789",
		IFSCCode:       "ABCD0123456",
		BankName:       "Test Bank",
		Name:           "Jane",
		Location:       &LocationPayload{City: "Pune", State: "MH"},
		DocumentType:   "aadhar",
		DocumentNumber: "X1",
	}
}

func fieldsOf(details []FieldError) []string {
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestValidate_AcceptsMinimalValidPayload(t *testing.T) {
	req := validRequest()
	require.Empty(t, req.Validate())
}

func TestValidate_AccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		account string
		ok      bool
	}{
		{"nine digits", "123456789", true},
		{"eighteen digits", "123456789012345678", true},
		{"too short", "12345", false},
		{"eight digits", "12345678", false},
		{"nineteen digits", "1234567890123456789", false},
		{"letters", "12345678A", false},
		{"spaces", "123 456 789", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.AccountNumber = tt.account
			details := req.Validate()
			if tt.ok {
				assert.Empty(t, details)
			} else {
				assert.Contains(t, fieldsOf(details), "accountNumber")
			}
		})
	}
}

func TestValidate_IFSCCode(t *testing.T) {
	tests := []struct {
		name string
		ifsc string
		ok   bool
	}{
		{"standard", "ABCD0123456", true},
		{"alnum branch", "SBIN0A1B2C3", true},
		{"lowercase bank", "abcd0123456", false},
		{"missing zero", "ABCD1123456", false},
		{"too short", "ABCD012345", false},
		{"too long", "ABCD01234567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.IFSCCode = tt.ifsc
			details := req.Validate()
			if tt.ok {
				assert.Empty(t, details)
			} else {
				assert.Contains(t, fieldsOf(details), "ifscCode")
			}
		})
	}
}

func TestValidate_ProfileFields(t *testing.T) {
	longBio := make([]byte, 1001)
	for i := range longBio {
		longBio[i] = 'a'
	}

	t.Run("missing name", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		assert.Contains(t, fieldsOf(req.Validate()), "name")
	})

	t.Run("bio too long", func(t *testing.T) {
		req := validRequest()
		bio := string(longBio)
		req.Bio = &bio
		assert.Contains(t, fieldsOf(req.Validate()), "bio")
	})

	t.Run("missing location", func(t *testing.T) {
		req := validRequest()
		req.Location = nil
		fields := fieldsOf(req.Validate())
		assert.Contains(t, fields, "location.city")
		assert.Contains(t, fields, "location.state")
	})

	t.Run("missing state only", func(t *testing.T) {
		req := validRequest()
		req.Location = &LocationPayload{City: "Pune"}
		fields := fieldsOf(req.Validate())
		assert.Contains(t, fields, "location.state")
		assert.NotContains(t, fields, "location.city")
	})

	t.Run("negative experience", func(t *testing.T) {
		req := validRequest()
		exp := -1
		req.Experience = &exp
		assert.Contains(t, fieldsOf(req.Validate()), "experience")
	})

	t.Run("bad website", func(t *testing.T) {
		req := validRequest()
		req.Socials = &SocialsPayload{Website: "not a url"}
		assert.Contains(t, fieldsOf(req.Validate()), "socials.website")
	})

	t.Run("good website", func(t *testing.T) {
		req := validRequest()
		req.Socials = &SocialsPayload{Website: "https://example.com/shop"}
		assert.Empty(t, req.Validate())
	})

	t.Run("unknown document type", func(t *testing.T) {
		req := validRequest()
		req.DocumentType = "passport"
		assert.Contains(t, fieldsOf(req.Validate()), "documentType")
	})

	t.Run("missing document number", func(t *testing.T) {
		req := validRequest()
		req.DocumentNumber = ""
		assert.Contains(t, fieldsOf(req.Validate()), "documentNumber")
	})
}

func TestValidate_LengthLimitsCountCharacters(t *testing.T) {
	// 600 Devanagari characters is 1800 bytes; the bio limit is 1000
	// characters, so this must pass.
	t.Run("multibyte bio under limit", func(t *testing.T) {
		req := validRequest()
		bio := strings.Repeat("क", 600)
		req.Bio = &bio
		assert.Empty(t, req.Validate())
	})

	t.Run("multibyte bio over limit", func(t *testing.T) {
		req := validRequest()
		bio := strings.Repeat("क", 1001)
		req.Bio = &bio
		assert.Contains(t, fieldsOf(req.Validate()), "bio")
	})

	t.Run("multibyte name and location", func(t *testing.T) {
		req := validRequest()
		req.Name = strings.Repeat("आ", 200)
		req.Location = &LocationPayload{
			City:  strings.Repeat("न", 100),
			State: "राजस्थान",
		}
		assert.Empty(t, req.Validate())

		req.Name = strings.Repeat("आ", 201)
		assert.Contains(t, fieldsOf(req.Validate()), "name")
	})
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	req := VerifyBankAccountRequest{}
	details := req.Validate()
	fields := fieldsOf(details)

	assert.Contains(t, fields, "accountNumber")
	assert.Contains(t, fields, "ifscCode")
	assert.Contains(t, fields, "bankName")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "documentType")
	assert.Contains(t, fields, "documentNumber")
	for _, d := range details {
		assert.NotEmpty(t, d.Message)
	}
}
