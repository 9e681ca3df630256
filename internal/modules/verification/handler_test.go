package verification_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"craftconnect/internal/database"
	"craftconnect/internal/domain"
	"craftconnect/internal/middleware"
	"craftconnect/internal/modules/verification"
	jwtsvc "craftconnect/internal/pkg/jwt"
	"craftconnect/internal/repository"
)

type verifyEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	artisan *repository.ArtisanRepository
	token   string
}

func newVerifyEnv(t *testing.T) *verifyEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	artisanRepo := repository.NewArtisanRepository(db)
	svc := verification.NewService(artisanRepo)
	handler := verification.NewHandler(svc)

	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken(7, "artisan")
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth(j))
	handler.RegisterRoutes(api)

	return &verifyEnv{router: r, db: db, artisan: artisanRepo, token: token}
}

func (e *verifyEnv) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/verify/bank-account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const fullSubmission = `{
	"accountNumber": "123456789012",
	"ifscCode": "HDFC0001234",
	"bankName": "HDFC Bank",
	"name": "Asha Devi",
	"bio": "Third generation blue pottery artisan",
	"location": {"city": "Jaipur", "state": "Rajasthan"},
	"specialties": ["pottery", "ceramics"],
	"experience": 15,
	"socials": {"instagram": "@ashapottery", "website": "https://ashapottery.example.com"},
	"documentType": "aadhar",
	"documentNumber": "1234-5678-9012"
}`

func TestVerifyBankAccount_CreatesVerifiedArtisan(t *testing.T) {
	env := newVerifyEnv(t)

	w := env.post(t, fullSubmission)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Bank account verified and artisan profile updated", body["message"])

	artisan, ok := body["artisan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha Devi", artisan["name"])
	assert.Equal(t, true, artisan["isVerified"])
	assert.NotZero(t, artisan["id"])

	stored, err := env.artisan.GetByUserID(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", stored.Name)
	assert.Equal(t, "Jaipur", stored.Location.City)
	assert.Equal(t, "India", stored.Location.Country)
	assert.Equal(t, []string{"pottery", "ceramics"}, stored.Specialties)
	assert.Equal(t, 15, stored.Experience)
	assert.True(t, stored.Verification.IsVerified)
	assert.Equal(t, "HDFC0001234", stored.Verification.BankDetails.IFSCCode)
	assert.False(t, stored.Verification.VerifiedAt.IsZero())
}

func TestVerifyBankAccount_ResubmissionUpdatesInPlace(t *testing.T) {
	env := newVerifyEnv(t)

	w := env.post(t, fullSubmission)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["artisan"].(map[string]any)

	// Minimal resubmission: optional profile fields absent.
	w = env.post(t, `{
		"accountNumber": "987654321",
		"ifscCode": "ICIC0004321",
		"bankName": "ICICI Bank",
		"name": "Asha D.",
		"location": {"city": "Jaipur", "state": "Rajasthan"},
		"documentType": "pan",
		"documentNumber": "ABCDE1234F"
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decodeBody(t, w)["artisan"].(map[string]any)

	assert.Equal(t, first["id"], second["id"])

	stored, err := env.artisan.GetByUserID(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Asha D.", stored.Name)
	// Absent optional fields kept their previous values.
	assert.Equal(t, "Third generation blue pottery artisan", stored.Bio)
	assert.Equal(t, []string{"pottery", "ceramics"}, stored.Specialties)
	assert.Equal(t, 15, stored.Experience)
	// Verification block replaced wholesale.
	assert.Equal(t, "pan", stored.Verification.DocumentType)
	assert.Equal(t, "987654321", stored.Verification.BankDetails.AccountNumber)
	assert.Equal(t, "ICICI Bank", stored.Verification.BankDetails.BankName)
}

func TestVerifyBankAccount_ValidationFailureShape(t *testing.T) {
	env := newVerifyEnv(t)

	w := env.post(t, `{
		"accountNumber": "12345",
		"ifscCode": "HDFC0001234",
		"bankName": "HDFC Bank",
		"name": "Asha Devi",
		"location": {"city": "Jaipur", "state": "Rajasthan"},
		"documentType": "aadhar",
		"documentNumber": "1234-5678-9012"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	detail := details[0].(map[string]any)
	assert.Equal(t, "accountNumber", detail["field"])
	assert.NotEmpty(t, detail["message"])

	// A rejected submission never touches the store.
	_, err := env.artisan.GetByUserID(t.Context(), 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVerifyBankAccount_MalformedJSON(t *testing.T) {
	env := newVerifyEnv(t)

	w := env.post(t, `{"accountNumber": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	details := body["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "body", details[0].(map[string]any)["field"])
}

type brokenArtisanStore struct{}

func (brokenArtisanStore) GetByUserID(context.Context, int64) (*domain.Artisan, error) {
	return nil, errors.New("store unavailable")
}

func (brokenArtisanStore) Save(context.Context, *domain.Artisan) error {
	return errors.New("store unavailable")
}

func TestVerifyBankAccount_StoreFailureShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := verification.NewHandler(verification.NewService(brokenArtisanStore{}))
	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken(7, "artisan")
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth(j))
	handler.RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bank-account", strings.NewReader(fullSubmission))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to validate and store form"}`, w.Body.String())
}

func TestVerifyBankAccount_RequiresAuth(t *testing.T) {
	env := newVerifyEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bank-account", strings.NewReader(fullSubmission))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
