package models

// RecurringRequest is the input for a single Recurring service call.
//
// Which fields are required depends on the operation:
//
//	List                    MerchantAccount, Shopper.Reference
//	Disable                 MerchantAccount, Shopper.Reference (RecurringDetailReference optional)
//	StoreToken              MerchantAccount, Shopper.Reference, Shopper.Email, Card or ELV
//	ScheduleAccountUpdater  MerchantAccount, Reference (Card and/or Token optional)
//
// A request is read-only once handed to the client and is not retained after the call.
type RecurringRequest struct {
	// MerchantAccount is the merchant account the shopper's details are stored under.
	MerchantAccount string

	// Reference identifies an account updater job.
	Reference string

	// RecurringDetailReference selects a single detail to disable.
	// When empty, Disable disables all of the shopper's details.
	RecurringDetailReference string

	Shopper *Shopper
	Card    *Card
	ELV     *ELV
	Token   *Token
}

// Shopper identifies the customer on whose behalf details are stored.
type Shopper struct {
	Reference string
	Email     string
}

// Card contains payment card details.
type Card struct {
	HolderName string

	// Number is the full card number (PAN).
	Number string

	// CVC is ignored when tokenising a card.
	CVC string

	// ExpiryYear is the four-digit expiry year (e.g. "2027").
	ExpiryYear string

	// ExpiryMonth is the expiry month, with or without a leading zero ("2" or "02").
	ExpiryMonth string
}

// ELV contains German direct-debit (Elektronisches Lastschriftverfahren) account details.
type ELV struct {
	// BankLocation is not sent when tokenising.
	BankLocation   string
	BankName       string
	BankLocationID string
	HolderName     string
	Number         string
}

// Token references an already stored recurring detail.
type Token struct {
	ShopperReference                 string
	SelectedRecurringDetailReference string
}
