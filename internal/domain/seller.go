package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// SellerApplication is the composed onboarding submission as received by
// the registration endpoint: the form fields plus the URLs of any files
// the client already uploaded. One application per user.
type SellerApplication struct {
	ID               int64
	UserID           int64
	BusinessName     string
	OwnerName        string
	Email            string
	Phone            string
	Address          string
	Experience       string
	SellerType       string
	GSTNumber        string
	PANNumber        string
	Categories       []string
	Description      string
	PriceRange       string
	StockQuantity    string
	PickupAvailable  string
	DispatchTime     string
	PackagingType    string
	AccountNumber    string
	IFSCCode         string
	BankName         string
	PaymentFrequency string
	Story            string
	ProfilePhotoURL  string
	CertificateURL   string
	IdentityProofURL string
	ProductPhotoURLs []string
	CraftVideoURL    string
	Status           ApplicationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
