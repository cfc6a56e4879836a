package adyen_soap_recurring

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"
)

// Required parameters per request body. Validation always runs before any element is built.
var (
	listRequirements = []requirement{
		required("merchant_account"),
		required("shopper", "reference"),
	}
	disableRequirements = []requirement{
		required("merchant_account"),
		required("shopper", "reference"),
	}
	storeTokenRequirements = []requirement{
		required("merchant_account"),
		required("shopper", "reference", "email"),
	}
	scheduleAccountUpdaterRequirements = []requirement{
		required("merchant_account"),
		required("reference"),
	}

	cardRequirement     = required("card", "holder_name", "number", "expiry_year", "expiry_month")
	elvTokenRequirement = required("elv", "bank_name", "bank_location_id", "holder_name", "number")
	tokenRequirement    = required("token", "shopper_reference", "selected_recurring_detail_reference")
)

func listRequestBody(req *models.RecurringRequest) (string, error) {
	if err := validateParameters(req, listRequirements...); err != nil {
		return "", err
	}
	return render(listLayout(req.MerchantAccount, req.Shopper.Reference))
}

func disableRequestBody(req *models.RecurringRequest) (string, error) {
	if err := validateParameters(req, disableRequirements...); err != nil {
		return "", err
	}
	var detail fragment
	if req.RecurringDetailReference != "" {
		detail = recurringDetailPartial(req.RecurringDetailReference)
	}
	return render(disableLayout(req.MerchantAccount, req.Shopper.Reference, detail))
}

func storeTokenRequestBody(req *models.RecurringRequest) (string, error) {
	if err := validateParameters(req, storeTokenRequirements...); err != nil {
		return "", err
	}

	var content fragment
	if req.Card != nil {
		// The CVC isn't needed when tokenising a card.
		card, err := recurringCardPartial(req, false)
		if err != nil {
			return "", err
		}
		content = append(content, card...)
	}
	if req.ELV != nil {
		if err := validateParameters(req, elvTokenRequirement); err != nil {
			return "", err
		}
		content = append(content, elvTokenPartial(req.ELV.BankName, req.ELV.BankLocationID, req.ELV.HolderName, req.ELV.Number)...)
	}
	if len(content) == 0 {
		return "", ErrInstrumentMissing
	}

	return render(storeTokenLayout(req.MerchantAccount, req.Shopper.Reference, req.Shopper.Email, content))
}

func scheduleAccountUpdaterRequestBody(req *models.RecurringRequest) (string, error) {
	if err := validateParameters(req, scheduleAccountUpdaterRequirements...); err != nil {
		return "", err
	}

	var card, token fragment
	if req.Card != nil {
		var err error
		if card, err = recurringCardPartial(req, true); err != nil {
			return "", err
		}
	}
	if req.Token != nil {
		if err := validateParameters(req, tokenRequirement); err != nil {
			return "", err
		}
		token = tokenPartial(req.Token.ShopperReference, req.Token.SelectedRecurringDetailReference)
	}

	return render(scheduleAccountUpdaterLayout(req.MerchantAccount, req.Reference, join(card, token)))
}

func recurringCardPartial(req *models.RecurringRequest, withCVC bool) (fragment, error) {
	if err := validateParameters(req, cardRequirement); err != nil {
		return nil, err
	}
	month, err := expiryMonth(req.Card.ExpiryMonth)
	if err != nil {
		return nil, err
	}
	cvc := ""
	if withCVC {
		cvc = req.Card.CVC
	}
	return cardPartial(req.Card.HolderName, req.Card.Number, cvc, req.Card.ExpiryYear, month), nil
}

// expiryMonth accepts "2", "02" and "2.0".
func expiryMonth(s string) (int, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(s), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	month, err := cast.ToIntE(trimmed)
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("adyen_soap_recurring: invalid card expiry month %q", s)
	}
	return month, nil
}

func expiryYear(s string) (int, error) {
	year, err := cast.ToIntE(strings.TrimSpace(s))
	if err != nil || year < 1 {
		return 0, fmt.Errorf("adyen_soap_recurring: invalid card expiry year %q", s)
	}
	return year, nil
}
