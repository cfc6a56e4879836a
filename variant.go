package adyen_soap_recurring

// Card variants as reported in a stored detail's variant field.
const (
	VariantVisa       = "visa"
	VariantMastercard = "mc"
	VariantAmex       = "amex"
	VariantDiscover   = "discover"
)

// DetectVariant returns the card variant for a card number (BIN/IIN),
// or "" if unknown.
func DetectVariant(number string) string {
	if number == "" {
		return ""
	}
	if number[0] == '4' {
		return VariantVisa
	}
	if hasPrefixIn(number, 2, "34", "37") {
		return VariantAmex
	}
	if inRange(number, 2, "51", "55") || inRange(number, 4, "2221", "2720") {
		return VariantMastercard
	}
	if hasPrefixIn(number, 2, "65") || hasPrefixIn(number, 4, "6011") ||
		inRange(number, 3, "644", "649") || inRange(number, 6, "622126", "622925") {
		return VariantDiscover
	}
	return ""
}

func hasPrefixIn(number string, n int, prefixes ...string) bool {
	if len(number) < n {
		return false
	}
	for _, p := range prefixes {
		if number[:n] == p {
			return true
		}
	}
	return false
}

// inRange compares the first n digits lexically, which equals numeric order at fixed width.
func inRange(number string, n int, lo, hi string) bool {
	if len(number) < n {
		return false
	}
	p := number[:n]
	return p >= lo && p <= hi
}
