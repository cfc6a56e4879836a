package adyen_soap_recurring

import "github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"

// requirement names a required top-level parameter and, for parameter groups,
// the sub-keys that must be present within the group.
type requirement struct {
	key string
	sub []string
}

func required(key string, sub ...string) requirement {
	return requirement{key: key, sub: sub}
}

// validateParameters fails with the first missing key path. All top-level keys
// are checked before any group's sub-keys; an absent group is reported once,
// by its own key.
func validateParameters(req *models.RecurringRequest, reqs ...requirement) error {
	groups := make([]map[string]string, len(reqs))
	for i, r := range reqs {
		group, ok := lookupParameter(req, r.key)
		if !ok {
			return &MissingParameterError{Path: r.key}
		}
		groups[i] = group
	}
	for i, r := range reqs {
		for _, sub := range r.sub {
			if groups[i][sub] == "" {
				return &MissingParameterError{Path: r.key + "." + sub}
			}
		}
	}
	return nil
}

// lookupParameter reports whether key is present. Groups are returned as their
// sub-key values; scalar keys return a nil group.
func lookupParameter(req *models.RecurringRequest, key string) (map[string]string, bool) {
	if req == nil {
		return nil, false
	}
	switch key {
	case "merchant_account":
		return nil, req.MerchantAccount != ""
	case "reference":
		return nil, req.Reference != ""
	case "recurring_detail_reference":
		return nil, req.RecurringDetailReference != ""
	case "shopper":
		if req.Shopper == nil {
			return nil, false
		}
		return map[string]string{
			"reference": req.Shopper.Reference,
			"email":     req.Shopper.Email,
		}, true
	case "card":
		if req.Card == nil {
			return nil, false
		}
		return map[string]string{
			"holder_name":  req.Card.HolderName,
			"number":       req.Card.Number,
			"cvc":          req.Card.CVC,
			"expiry_year":  req.Card.ExpiryYear,
			"expiry_month": req.Card.ExpiryMonth,
		}, true
	case "elv":
		if req.ELV == nil {
			return nil, false
		}
		return map[string]string{
			"bank_location":    req.ELV.BankLocation,
			"bank_name":        req.ELV.BankName,
			"bank_location_id": req.ELV.BankLocationID,
			"holder_name":      req.ELV.HolderName,
			"number":           req.ELV.Number,
		}, true
	case "token":
		if req.Token == nil {
			return nil, false
		}
		return map[string]string{
			"shopper_reference":                   req.Token.ShopperReference,
			"selected_recurring_detail_reference": req.Token.SelectedRecurringDetailReference,
		}, true
	}
	return nil, false
}
