package domain

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

type ExtensionStatus string

const (
	ExtensionStatusPending  ExtensionStatus = "PENDING"
	ExtensionStatusAccepted ExtensionStatus = "ACCEPTED"
	ExtensionStatusDeclined ExtensionStatus = "DECLINED"
)

// OutfitSnapshot is a value copy of the listing captured at request time.
// Later edits to the listing never touch an existing rental.
type OutfitSnapshot struct {
	OutfitID        string   `json:"outfit_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURLs       []string `json:"image_urls"`
	DailyPriceCents int32    `json:"daily_price_cents"`
}

// PartySnapshot is a value copy of one party (owner or renter) captured at
// request time.
type PartySnapshot struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type RentalPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int32  `json:"total_days"`
}

type Payment struct {
	TotalAmountCents int32         `json:"total_amount_cents"`
	Status           PaymentStatus `json:"status"`
	ReceiptImage     *string       `json:"receipt_image,omitempty"`
	TransactionDate  *string       `json:"transaction_date,omitempty"`
}

// ExtensionRequest is the single in-flight extension slot. A new round
// overwrites the previous one; prior rounds survive only in the history log.
type ExtensionRequest struct {
	Requested       bool            `json:"requested"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	TotalDays       int32           `json:"total_days"`
	AmountCents     int32           `json:"amount_cents"`
	Status          ExtensionStatus `json:"status"`
	ReceiptImage    *string         `json:"receipt_image,omitempty"`
	TransactionDate *string         `json:"transaction_date,omitempty"`
}

// InFlight reports whether this extension round still awaits an owner decision.
func (e *ExtensionRequest) InFlight() bool {
	return e != nil && e.Requested && e.Status == ExtensionStatusPending
}

type Rental struct {
	ID        string            `json:"id"`
	Outfit    OutfitSnapshot    `json:"outfit"`
	Owner     PartySnapshot     `json:"owner"`
	Renter    PartySnapshot     `json:"renter"`
	Period    RentalPeriod      `json:"rental_period"`
	Payment   Payment           `json:"payment"`
	Status    RentalStatus      `json:"status"`
	Extension *ExtensionRequest `json:"extension_request,omitempty"`
	// Version guards concurrent transitions: every write is conditional on the
	// version the transition loaded, so only one competing transition lands.
	Version   int32  `json:"version"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// IsParticipant reports whether userID is the owner or the renter.
func (r *Rental) IsParticipant(userID string) bool {
	return r.Owner.UserID == userID || r.Renter.UserID == userID
}
