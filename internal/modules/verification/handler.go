package verification

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/verify/bank-account", h.VerifyBankAccount)
}

// VerifyBankAccount validates the submitted bank and profile fields,
// then creates or updates the caller's artisan record with a fresh
// verification block. Rejections carry the full field-level detail list
// and never touch the store.
func (h *Handler) VerifyBankAccount(c *gin.Context) {
	var req VerifyBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []FieldError{{Field: "body", Message: "must be valid JSON"}},
		})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": details,
		})
		return
	}

	userID := c.GetInt64("user_id")

	artisan, err := h.service.VerifyAndStore(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("verify_bank_account user_id=%d error=%q", userID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to validate and store form",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bank account verified and artisan profile updated",
		"artisan": ArtisanView{
			ID:         artisan.ID,
			Name:       artisan.Name,
			IsVerified: artisan.Verification.IsVerified,
		},
	})
}
