package seller

// RegisterSellerRequest is the composed onboarding payload: the form
// fields plus the URLs the client received for any uploaded files. The
// raw files themselves never reach this endpoint.
type RegisterSellerRequest struct {
	BusinessName     string   `json:"businessName" binding:"required"`
	OwnerName        string   `json:"ownerName" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone" binding:"required"`
	Address          string   `json:"address"`
	Experience       string   `json:"experience"`
	SellerType       string   `json:"sellerType"`
	GSTNumber        string   `json:"gstNumber"`
	PANNumber        string   `json:"panNumber"`
	Categories       []string `json:"categories"`
	Description      string   `json:"description"`
	PriceRange       string   `json:"priceRange"`
	StockQuantity    string   `json:"stockQuantity"`
	PickupAvailable  string   `json:"pickupAvailable"`
	DispatchTime     string   `json:"dispatchTime"`
	PackagingType    string   `json:"packagingType"`
	AccountNumber    string   `json:"accountNumber"`
	IFSCCode         string   `json:"ifscCode"`
	BankName         string   `json:"bankName"`
	PaymentFrequency string   `json:"paymentFrequency"`
	Story            string   `json:"story"`

	ProfilePhoto  string   `json:"profilePhoto"`
	Certificate   string   `json:"certificate"`
	IdentityProof string   `json:"identityProof"`
	ProductPhotos []string `json:"productPhotos"`
	CraftVideo    string   `json:"craftVideo"`
}

type RegisterSellerResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ApplicationView is the read shape of a stored application.
type ApplicationView struct {
	ID               int64    `json:"id"`
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
	ProfilePhoto     string   `json:"profilePhoto,omitempty"`
	Certificate      string   `json:"certificate,omitempty"`
	IdentityProof    string   `json:"identityProof,omitempty"`
	ProductPhotos    []string `json:"productPhotos,omitempty"`
	CraftVideo       string   `json:"craftVideo,omitempty"`
	Status           string   `json:"status"`
}
