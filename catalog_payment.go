package adyen_soap_recurring

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"
)

// ModificationOperation names a Payment service modification.
type ModificationOperation string

const (
	OpCapture        ModificationOperation = "capture"
	OpRefund         ModificationOperation = "refund"
	OpCancel         ModificationOperation = "cancel"
	OpCancelOrRefund ModificationOperation = "cancelOrRefund"
)

// requiresAmount reports whether the modification carries a modificationAmount.
func (op ModificationOperation) requiresAmount() bool {
	return op == OpCapture || op == OpRefund
}

// BuildAuthoriseBody builds the payment:authorise body for the sibling Payment service.
// Either Card, ELV or a SelectedRecurringDetailReference must be set.
func BuildAuthoriseBody(req models.PaymentRequest) (string, error) {
	switch {
	case req.MerchantAccount == "":
		return "", &MissingParameterError{Path: "merchant_account"}
	case req.Reference == "":
		return "", &MissingParameterError{Path: "reference"}
	case req.Amount.Currency == "":
		return "", &MissingParameterError{Path: "amount.currency"}
	}

	root := operationRoot("payment:authorise", "payment", "recurring", "common")
	pr := root.CreateElement("payment:paymentRequest")
	leaf(pr, "payment:merchantAccount", req.MerchantAccount)
	leaf(pr, "payment:reference", req.Reference)

	var content fragment
	content = append(content, amountPartial("payment:amount", req.Amount)...)

	switch {
	case req.Card != nil:
		month, err := expiryMonth(req.Card.ExpiryMonth)
		if err != nil {
			return "", err
		}
		content = append(content, paymentCardPartial(req.Card, month, req.BillingAddress)...)
	case req.ELV != nil:
		e := req.ELV
		content = append(content, elvPartial("payment:elv", e.BankLocation, e.BankName, e.BankLocationID, e.HolderName, e.Number)...)
	case req.SelectedRecurringDetailReference == "":
		return "", fmt.Errorf("adyen_soap_recurring: the required parameter 'card', 'elv' or 'selected_recurring_detail_reference' is missing")
	}

	switch {
	case req.SelectedRecurringDetailReference != "" && req.Contract == models.ContractOneClick:
		content = append(content, oneClickPaymentBodyPartial(req.SelectedRecurringDetailReference)...)
	case req.SelectedRecurringDetailReference != "":
		content = append(content, recurringPaymentBodyPartial(req.SelectedRecurringDetailReference)...)
	case req.Contract != models.ContractNone:
		content = append(content, paymentContractPartial(string(req.Contract))...)
	}

	if req.Shopper != nil {
		content = append(content, shopperPartials(req.Shopper)...)
	}

	content.appendTo(pr)
	return render(root)
}

// BuildModificationBody builds a capture, refund, cancel or cancelOrRefund body.
func BuildModificationBody(op ModificationOperation, req models.ModificationRequest) (string, error) {
	switch op {
	case OpCapture, OpRefund, OpCancel, OpCancelOrRefund:
	default:
		return "", fmt.Errorf("adyen_soap_recurring: unknown modification %q", op)
	}
	if req.MerchantAccount == "" {
		return "", &MissingParameterError{Path: "merchant_account"}
	}
	if req.OriginalReference == "" {
		return "", &MissingParameterError{Path: "original_reference"}
	}
	if op.requiresAmount() && req.Amount == nil {
		return "", &MissingParameterError{Path: "amount"}
	}

	root := operationRoot("payment:"+string(op), "payment", "recurring", "common")
	mr := root.CreateElement("payment:modificationRequest")
	leaf(mr, "payment:merchantAccount", req.MerchantAccount)
	leaf(mr, "payment:originalReference", req.OriginalReference)
	if op.requiresAmount() {
		amountPartial("payment:modificationAmount", *req.Amount).appendTo(mr)
	}
	return render(root)
}

// ============================================
// Payment service partials
// ============================================

func amountPartial(tag string, amount models.Amount) fragment {
	el := etree.NewElement(tag)
	leaf(el, "common:currency", amount.Currency)
	leaf(el, "common:value", strconv.FormatInt(amount.Value, 10))
	return fragment{el}
}

// paymentCardPartial differs from the recurring card partial in element order;
// the CVC and billing address are only present when given.
func paymentCardPartial(card *models.Card, month int, address *models.Address) fragment {
	el := etree.NewElement("payment:card")
	leaf(el, "payment:holderName", card.HolderName)
	leaf(el, "payment:number", card.Number)
	leaf(el, "payment:expiryYear", card.ExpiryYear)
	leaf(el, "payment:expiryMonth", fmt.Sprintf("%02d", month))
	if card.CVC != "" {
		leaf(el, "payment:cvc", card.CVC)
	}
	if address != nil {
		billingAddressPartial(address).appendTo(el)
	}
	return fragment{el}
}

func billingAddressPartial(a *models.Address) fragment {
	el := etree.NewElement("payment:billingAddress")
	leaf(el, "common:city", a.City)
	leaf(el, "common:street", a.Street)
	leaf(el, "common:houseNumberOrName", a.HouseNumberOrName)
	leaf(el, "common:postalCode", a.PostalCode)
	leaf(el, "common:stateOrProvince", a.StateOrProvince)
	leaf(el, "common:country", a.Country)
	return fragment{el}
}

func paymentContractPartial(contract string) fragment {
	el := etree.NewElement("payment:recurring")
	leaf(el, "payment:contract", contract)
	return fragment{el}
}

func recurringPaymentBodyPartial(detailReference string) fragment {
	return join(
		paymentContractPartial(string(models.ContractRecurring)),
		fragment{
			newLeaf("payment:selectedRecurringDetailReference", detailReference),
			newLeaf("payment:shopperInteraction", "ContAuth"),
		},
	)
}

func oneClickPaymentBodyPartial(detailReference string) fragment {
	return join(
		paymentContractPartial(string(models.ContractOneClick)),
		fragment{newLeaf("payment:selectedRecurringDetailReference", detailReference)},
	)
}

func shopperPartials(s *models.PaymentShopper) fragment {
	var out fragment
	for _, f := range []struct{ tag, value string }{
		{"payment:shopperReference", s.Reference},
		{"payment:shopperEmail", s.Email},
		{"payment:shopperIP", s.IP},
		{"payment:shopperStatement", s.Statement},
	} {
		if f.value != "" {
			out = append(out, newLeaf(f.tag, f.value))
		}
	}
	return out
}
