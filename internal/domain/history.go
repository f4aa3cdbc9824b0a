package domain

// HistoryStatus is the expanded status vocabulary of the audit trail. It covers
// both rental states and extension sub-states, so the log disambiguates paths
// that collapse on the rental itself (owner decline vs renter cancel).
type HistoryStatus string

const (
	HistoryStatusPending                  HistoryStatus = "pending"
	HistoryStatusAccepted                 HistoryStatus = "accepted"
	HistoryStatusDeclined                 HistoryStatus = "declined"
	HistoryStatusCancelled                HistoryStatus = "cancelled"
	HistoryStatusCompleted                HistoryStatus = "completed"
	HistoryStatusReceiptUploaded          HistoryStatus = "receipt_uploaded"
	HistoryStatusExtensionRequested       HistoryStatus = "extension_requested"
	HistoryStatusExtensionReceiptUploaded HistoryStatus = "extension_receipt_uploaded"
	HistoryStatusExtensionAccepted        HistoryStatus = "extension_accepted"
	HistoryStatusExtensionDeclined        HistoryStatus = "extension_declined"
)

// RentalHistoryEntry is one immutable snapshot of a rental, appended for every
// accepted transition. Entries are self-contained: each carries full value
// copies, so rendering history never needs replay or reconciliation.
type RentalHistoryEntry struct {
	ID         string            `json:"id"`
	RentalID   string            `json:"rental_id"`
	Outfit     OutfitSnapshot    `json:"outfit"`
	Owner      PartySnapshot     `json:"owner"`
	Renter     PartySnapshot     `json:"renter"`
	Period     RentalPeriod      `json:"rental_period"`
	Payment    Payment           `json:"payment"`
	Extension  *ExtensionRequest `json:"extension_request,omitempty"`
	Status     HistoryStatus     `json:"status"`
	ActionDate string            `json:"action_date"`
	ActionBy   PartySnapshot     `json:"action_by"`
}

// SnapshotOf builds a history entry capturing the rental as it stands right
// after a transition. ActionDate is filled by the repository at append time.
func SnapshotOf(r *Rental, status HistoryStatus, actionBy PartySnapshot) *RentalHistoryEntry {
	entry := &RentalHistoryEntry{
		RentalID: r.ID,
		Outfit:   r.Outfit,
		Owner:    r.Owner,
		Renter:   r.Renter,
		Period:   r.Period,
		Payment:  r.Payment,
		Status:   status,
		ActionBy: actionBy,
	}
	if r.Extension != nil {
		ext := *r.Extension
		entry.Extension = &ext
	}
	return entry
}
