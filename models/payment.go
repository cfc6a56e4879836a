package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount in the currency's minor units, as the processor expects it.
type Amount struct {
	// Currency is the ISO 4217 currency code.
	Currency string

	// Value is in minor units (e.g. cents).
	Value int64
}

// currencyExponents lists currencies whose minor unit is not 1/100.
var currencyExponents = map[string]int32{
	"BHD": 3, "CVE": 0, "DJF": 0, "GNF": 0, "IDR": 0, "JOD": 3, "JPY": 0, "KMF": 0,
	"KRW": 0, "KWD": 3, "LYD": 3, "OMR": 3, "PYG": 0, "RWF": 0, "TND": 3, "UGX": 0,
	"VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
}

// CurrencyExponent returns the number of minor-unit digits for currency.
func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// NewAmount converts a major-unit decimal (e.g. 12.34 EUR) into an Amount in minor units.
// Digits beyond the currency's precision are rounded half away from zero.
func NewAmount(currency string, major decimal.Decimal) Amount {
	exp := CurrencyExponent(currency)
	return Amount{
		Currency: strings.ToUpper(currency),
		Value:    major.Round(exp).Shift(exp).IntPart(),
	}
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.Value, -CurrencyExponent(a.Currency))
}

// Address is a billing address.
type Address struct {
	City              string
	Street            string
	HouseNumberOrName string
	PostalCode        string
	StateOrProvince   string
	Country           string
}

// RecurringContract selects which recurring contract a payment creates or uses.
type RecurringContract string

const (
	ContractNone              RecurringContract = ""
	ContractRecurring         RecurringContract = "RECURRING"
	ContractOneClick          RecurringContract = "ONECLICK"
	ContractRecurringOneClick RecurringContract = "RECURRING,ONECLICK"
)

// PaymentRequest is the input for an authorise body on the sibling Payment service.
type PaymentRequest struct {
	MerchantAccount string
	Reference       string
	Amount          Amount

	// Card is sent with its optional CVC and billing address. Nil for recurring payments.
	Card           *Card
	BillingAddress *Address

	// ELV pays by direct debit instead of a card.
	ELV *ELV

	Shopper *PaymentShopper

	// Contract with an empty SelectedRecurringDetailReference enables recurring
	// contracts for the card; with a reference it pays with the stored detail.
	Contract                         RecurringContract
	SelectedRecurringDetailReference string
}

// PaymentShopper holds the optional shopper fields of a payment.
type PaymentShopper struct {
	Reference string
	Email     string
	IP        string
	Statement string
}

// ModificationRequest is the input for capture, refund, cancel and cancelOrRefund bodies.
type ModificationRequest struct {
	MerchantAccount   string
	OriginalReference string

	// Amount is required for capture and refund and ignored otherwise.
	Amount *Amount
}
