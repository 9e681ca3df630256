package sellerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// registerPayload is the wire form of a submission: the plain fields
// plus the uploaded locations. Raw file fields never appear here, and
// locations for absent attachments are omitted entirely.
type registerPayload struct {
	BusinessName     string   `json:"businessName"`
	OwnerName        string   `json:"ownerName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address,omitempty"`
	Experience       string   `json:"experience,omitempty"`
	SellerType       string   `json:"sellerType,omitempty"`
	GSTNumber        string   `json:"gstNumber,omitempty"`
	PANNumber        string   `json:"panNumber,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Description      string   `json:"description,omitempty"`
	PriceRange       string   `json:"priceRange,omitempty"`
	StockQuantity    string   `json:"stockQuantity,omitempty"`
	PickupAvailable  string   `json:"pickupAvailable,omitempty"`
	DispatchTime     string   `json:"dispatchTime,omitempty"`
	PackagingType    string   `json:"packagingType,omitempty"`
	AccountNumber    string   `json:"accountNumber,omitempty"`
	IFSCCode         string   `json:"ifscCode,omitempty"`
	BankName         string   `json:"bankName,omitempty"`
	PaymentFrequency string   `json:"paymentFrequency,omitempty"`
	Story            string   `json:"story,omitempty"`

	ProfilePhoto  string   `json:"profilePhoto,omitempty"`
	Certificate   string   `json:"certificate,omitempty"`
	IdentityProof string   `json:"identityProof,omitempty"`
	ProductPhotos []string `json:"productPhotos,omitempty"`
	CraftVideo    string   `json:"craftVideo,omitempty"`
}

type RegisterResult struct {
	ID     int64
	Status string
}

// Register uploads every attachment, merges the resulting locations
// over the form fields and posts the composed payload. Any upload
// failure aborts the flow before the registration request is sent.
func (c *Client) Register(ctx context.Context, sub *SellerSubmission) (*RegisterResult, error) {
	uploaded, err := c.uploadAttachments(ctx, sub)
	if err != nil {
		return nil, err
	}

	payload := registerPayload{
		BusinessName:     sub.BusinessName,
		OwnerName:        sub.OwnerName,
		Email:            sub.Email,
		Phone:            sub.Phone,
		Address:          sub.Address,
		Experience:       sub.Experience,
		SellerType:       sub.SellerType,
		GSTNumber:        sub.GSTNumber,
		PANNumber:        sub.PANNumber,
		Categories:       sub.Categories,
		Description:      sub.Description,
		PriceRange:       sub.PriceRange,
		StockQuantity:    sub.StockQuantity,
		PickupAvailable:  sub.PickupAvailable,
		DispatchTime:     sub.DispatchTime,
		PackagingType:    sub.PackagingType,
		AccountNumber:    sub.AccountNumber,
		IFSCCode:         sub.IFSCCode,
		BankName:         sub.BankName,
		PaymentFrequency: sub.PaymentFrequency,
		Story:            sub.Story,

		ProfilePhoto:  uploaded.ProfilePhoto,
		Certificate:   uploaded.Certificate,
		IdentityProof: uploaded.IdentityProof,
		ProductPhotos: uploaded.ProductPhotos,
		CraftVideo:    uploaded.CraftVideo,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sellers/register", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, "seller registration failed")
	if err != nil {
		return nil, err
	}

	var out struct {
		Data struct {
			Application struct {
				ID     int64  `json:"id"`
				Status string `json:"status"`
			} `json:"application"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	return &RegisterResult{
		ID:     out.Data.Application.ID,
		Status: out.Data.Application.Status,
	}, nil
}
