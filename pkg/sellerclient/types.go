package sellerclient

// FileKind is the declared kind of an uploaded file.
type FileKind string

const (
	FileDocument FileKind = "document"
	FileImage    FileKind = "image"
	FileVideo    FileKind = "video"
)

// FileAttachment carries a file's bytes through the onboarding flow.
type FileAttachment struct {
	Filename string
	Content  []byte
}

// SellerSubmission is the full onboarding form as collected from the
// seller: plain fields plus up to five optional attachments. It is
// consumed exactly once by Register and discarded afterwards.
type SellerSubmission struct {
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

	ProfilePhoto  *FileAttachment
	Certificate   *FileAttachment
	IdentityProof *FileAttachment
	ProductPhotos []FileAttachment
	CraftVideo    *FileAttachment
}
