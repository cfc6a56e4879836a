package models

import "time"

// AdditionalDataKeyLastAccountUpdaterCheck is the only additional data key whose value is a timestamp.
const AdditionalDataKeyLastAccountUpdaterCheck = "lastAccountUpdaterCheck"

// ListResult contains the parsed listRecurringDetails result.
// All fields are zero when the shopper has no stored details.
type ListResult struct {
	// CreationDate is when the shopper's recurring contract was created. Nil when absent.
	CreationDate *time.Time

	Details               []RecurringDetail
	LastKnownShopperEmail string
	ShopperReference      string
}

// RecurringDetail is a stored, tokenised payment method.
type RecurringDetail struct {
	RecurringDetailReference string

	// Variant is the payment method identifier (e.g. "visa", "mc", "elv").
	Variant string

	// CreationDate is nil when the reply carries no parseable date.
	CreationDate *time.Time

	// AdditionalData is nil when the detail has no additional data entries.
	AdditionalData map[string]AdditionalDataValue

	// Instrument is exactly one of *CardDetails, *ELVDetails or *BankDetails.
	Instrument Instrument
}

// Card returns the card details when the detail is a card.
func (d RecurringDetail) Card() (*CardDetails, bool) {
	c, ok := d.Instrument.(*CardDetails)
	return c, ok
}

// ELV returns the direct-debit details when the detail is an ELV account.
func (d RecurringDetail) ELV() (*ELVDetails, bool) {
	e, ok := d.Instrument.(*ELVDetails)
	return e, ok
}

// Bank returns the bank account details when the detail is a bank account.
func (d RecurringDetail) Bank() (*BankDetails, bool) {
	b, ok := d.Instrument.(*BankDetails)
	return b, ok
}

// Instrument is the payment instrument behind a stored detail.
// It is implemented only by *CardDetails, *ELVDetails and *BankDetails.
type Instrument interface {
	instrument()
}

// CardDetails is the card sub-record of a stored detail.
type CardDetails struct {
	// ExpiryDate is the last calendar day of the expiry month. Zero when the reply has no valid expiry.
	ExpiryDate time.Time
	HolderName string

	// Number holds the last digits of the card number as returned by the processor.
	Number string
}

// ELVDetails is the direct-debit sub-record of a stored detail.
type ELVDetails struct {
	HolderName     string
	Number         string
	BankLocation   string
	BankLocationID string
	BankName       string
}

// BankDetails is the bank account sub-record of a stored detail.
type BankDetails struct {
	Number         string
	BankLocationID string
	BankName       string
	BIC            string
	CountryCode    string
	IBAN           string
	HolderName     string
}

func (*CardDetails) instrument() {}
func (*ELVDetails) instrument()  {}
func (*BankDetails) instrument() {}

// AdditionalDataValue is a single additional data value.
// Time is set only for lastAccountUpdaterCheck and only when the value parses.
type AdditionalDataValue struct {
	Text string
	Time *time.Time
}

// String returns the raw text of the value.
func (v AdditionalDataValue) String() string {
	return v.Text
}
