package seller

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"craftconnect/internal/domain"
	"craftconnect/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sellers := rg.Group("/sellers")
	{
		sellers.POST("/register", h.Register)
		sellers.GET("/me", h.GetMyApplication)
	}
}

func (h *Handler) Register(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RegisterSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request body",
				"details": validationDetails(err),
			},
		})
		return
	}

	app, err := h.service.Register(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrAlreadyRegistered) {
			response.Error(c, http.StatusConflict, "ALREADY_REGISTERED", "A seller application already exists for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register seller")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"application": RegisterSellerResponse{
			ID:     app.ID,
			Status: string(app.Status),
		},
	})
}

func (h *Handler) GetMyApplication(c *gin.Context) {
	userID := c.GetInt64("user_id")

	app, err := h.service.GetMyApplication(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No seller application for this account")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": toApplicationView(app)})
}

func toApplicationView(app *domain.SellerApplication) ApplicationView {
	return ApplicationView{
		ID:               app.ID,
		BusinessName:     app.BusinessName,
		OwnerName:        app.OwnerName,
		Email:            app.Email,
		Phone:            app.Phone,
		Address:          app.Address,
		Experience:       app.Experience,
		SellerType:       app.SellerType,
		GSTNumber:        app.GSTNumber,
		PANNumber:        app.PANNumber,
		Categories:       app.Categories,
		Description:      app.Description,
		PriceRange:       app.PriceRange,
		StockQuantity:    app.StockQuantity,
		PickupAvailable:  app.PickupAvailable,
		DispatchTime:     app.DispatchTime,
		PackagingType:    app.PackagingType,
		AccountNumber:    app.AccountNumber,
		IFSCCode:         app.IFSCCode,
		BankName:         app.BankName,
		PaymentFrequency: app.PaymentFrequency,
		Story:            app.Story,
		ProfilePhoto:     app.ProfilePhotoURL,
		Certificate:      app.CertificateURL,
		IdentityProof:    app.IdentityProofURL,
		ProductPhotos:    app.ProductPhotoURLs,
		CraftVideo:       app.CraftVideoURL,
		Status:           string(app.Status),
	}
}

// validationDetails maps binding failures onto json field names.
func validationDetails(err error) map[string]string {
	fieldErrors := map[string]string{}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		requestType := reflect.TypeOf(RegisterSellerRequest{})
		for _, fieldError := range validationErrors {
			fieldName := fieldError.Field()
			if field, ok := requestType.FieldByName(fieldError.StructField()); ok {
				if jsonTag := field.Tag.Get("json"); jsonTag != "" {
					fieldName = strings.Split(jsonTag, ",")[0]
				}
			}
			fieldErrors[fieldName] = validationErrorMessage(fieldError)
		}
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func validationErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}
