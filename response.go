package adyen_soap_recurring

import (
	"strings"
	"sync"
	"time"

	"github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"
)

// Response wraps a raw reply document.
//
// Operation specific fields are extracted lazily on first access and cached for the
// lifetime of the response. Missing nodes yield zero values; parsing never fails.
type Response struct {
	// HTTPStatus is the HTTP status code of the reply.
	HTTPStatus int

	// Body is the raw SOAP XML reply.
	Body []byte

	q xmlNode
}

func newResponse(httpStatus int, body []byte) Response {
	return Response{HTTPStatus: httpStatus, Body: body, q: newXMLQuerier(body)}
}

// Success reports whether the exchange itself succeeded (2xx).
func (r *Response) Success() bool {
	return r.HTTPStatus >= 200 && r.HTTPStatus < 300
}

// ============================================
// disable
// ============================================

var disabledResponses = []string{
	"[detail-successfully-disabled]",
	"[all-details-successfully-disabled]",
}

// DisableResponse is the reply to Disable.
type DisableResponse struct {
	Response

	once     sync.Once
	response string
}

// NewDisableResponse wraps a disable reply.
func NewDisableResponse(httpStatus int, body []byte) *DisableResponse {
	return &DisableResponse{Response: newResponse(httpStatus, body)}
}

// Result returns the literal result text, e.g. "[detail-successfully-disabled]".
func (r *DisableResponse) Result() string {
	r.once.Do(func() {
		r.response = r.q.Text("//recurring:disableResponse/recurring:result/recurring:response")
	})
	return r.response
}

// Success is true when the service confirmed that one or all details were disabled.
func (r *DisableResponse) Success() bool {
	if !r.Response.Success() {
		return false
	}
	result := r.Result()
	for _, s := range disabledResponses {
		if result == s {
			return true
		}
	}
	return false
}

// Disabled is an alias of Success.
func (r *DisableResponse) Disabled() bool {
	return r.Success()
}

// ============================================
// listRecurringDetails
// ============================================

// ListResponse is the reply to List.
type ListResponse struct {
	Response

	once   sync.Once
	result models.ListResult
}

// NewListResponse wraps a listRecurringDetails reply.
func NewListResponse(httpStatus int, body []byte) *ListResponse {
	return &ListResponse{Response: newResponse(httpStatus, body)}
}

// Result returns the parsed result. It is empty when the shopper has no stored details.
func (r *ListResponse) Result() models.ListResult {
	r.once.Do(func() {
		r.result = parseListResult(r.q)
	})
	return r.result
}

// Details returns the shopper's stored details in reply order.
func (r *ListResponse) Details() []models.RecurringDetail {
	return r.Result().Details
}

// CreationDate returns the contract creation date, nil when absent.
func (r *ListResponse) CreationDate() *time.Time {
	return r.Result().CreationDate
}

func (r *ListResponse) LastKnownShopperEmail() string {
	return r.Result().LastKnownShopperEmail
}

func (r *ListResponse) ShopperReference() string {
	return r.Result().ShopperReference
}

// References returns the recurring detail reference of every detail, in order.
// It is empty, never nil, when there are no details.
func (r *ListResponse) References() []string {
	details := r.Details()
	refs := make([]string, 0, len(details))
	for _, d := range details {
		refs = append(refs, d.RecurringDetailReference)
	}
	return refs
}

// AdditionalData returns one single-entry map per detail, keyed by the detail's reference.
func (r *ListResponse) AdditionalData() []map[string]map[string]models.AdditionalDataValue {
	details := r.Details()
	out := make([]map[string]map[string]models.AdditionalDataValue, 0, len(details))
	for _, d := range details {
		out = append(out, map[string]map[string]models.AdditionalDataValue{
			d.RecurringDetailReference: d.AdditionalData,
		})
	}
	return out
}

func parseListResult(q xmlNode) models.ListResult {
	result, ok := q.First("//recurring:listRecurringDetailsResponse/recurring:result")
	if !ok {
		return models.ListResult{}
	}
	nodes := result.XPath(".//recurring:RecurringDetail")
	if len(nodes) == 0 {
		return models.ListResult{}
	}

	details := make([]models.RecurringDetail, 0, len(nodes))
	for _, node := range nodes {
		details = append(details, parseRecurringDetail(node))
	}
	return models.ListResult{
		CreationDate:          parseTimestamp(result.Text("./recurring:creationDate")),
		Details:               details,
		LastKnownShopperEmail: result.Text("./recurring:lastKnownShopperEmail"),
		ShopperReference:      result.Text("./recurring:shopperReference"),
	}
}

func parseRecurringDetail(node xmlNode) models.RecurringDetail {
	detail := models.RecurringDetail{
		RecurringDetailReference: node.Text("./recurring:recurringDetailReference"),
		Variant:                  node.Text("./recurring:variant"),
		CreationDate:             parseTimestamp(node.Text("./recurring:creationDate")),
		AdditionalData:           parseAdditionalData(node.XPath("./recurring:additionalData/recurring:entry")),
	}

	// Exactly one instrument: card, then elv, with bank as the fallback.
	card, _ := node.First("./recurring:card")
	elv, _ := node.First("./recurring:elv")
	bank, _ := node.First("./recurring:bank")
	switch {
	case !card.Empty():
		detail.Instrument = parseCardDetails(card)
	case !elv.Empty():
		detail.Instrument = parseELVDetails(elv)
	default:
		detail.Instrument = parseBankDetails(bank)
	}
	return detail
}

// parseAdditionalData folds entries into one map. On duplicate keys the last entry wins;
// entries without a key are skipped.
func parseAdditionalData(entries []xmlNode) map[string]models.AdditionalDataValue {
	if len(entries) == 0 {
		return nil
	}
	data := make(map[string]models.AdditionalDataValue, len(entries))
	for _, entry := range entries {
		key := entry.Text("./recurring:key")
		if key == "" {
			continue
		}
		value := models.AdditionalDataValue{Text: entry.Text("./recurring:value")}
		if key == models.AdditionalDataKeyLastAccountUpdaterCheck {
			value.Time = parseTimestamp(value.Text)
		}
		data[key] = value
	}
	return data
}

func parseCardDetails(card xmlNode) *models.CardDetails {
	return &models.CardDetails{
		ExpiryDate: lastDayOfMonth(card.Text("./payment:expiryYear"), card.Text("./payment:expiryMonth")),
		HolderName: card.Text("./payment:holderName"),
		Number:     card.Text("./payment:number"),
	}
}

func parseELVDetails(elv xmlNode) *models.ELVDetails {
	return &models.ELVDetails{
		HolderName:     elv.Text("./payment:accountHolderName"),
		Number:         elv.Text("./payment:bankAccountNumber"),
		BankLocation:   elv.Text("./payment:bankLocation"),
		BankLocationID: elv.Text("./payment:bankLocationId"),
		BankName:       elv.Text("./payment:bankName"),
	}
}

func parseBankDetails(bank xmlNode) *models.BankDetails {
	return &models.BankDetails{
		Number:         bank.Text("./payment:bankAccountNumber"),
		BankLocationID: bank.Text("./payment:bankLocationId"),
		BankName:       bank.Text("./payment:bankName"),
		BIC:            bank.Text("./payment:bic"),
		CountryCode:    bank.Text("./payment:countryCode"),
		IBAN:           bank.Text("./payment:iban"),
		HolderName:     bank.Text("./payment:ownerName"),
	}
}

// ============================================
// storeToken
// ============================================

// StoreTokenResponse is the reply to StoreToken.
type StoreTokenResponse struct {
	Response

	once                     sync.Once
	response                 string
	reference                string
	recurringDetailReference string
}

// NewStoreTokenResponse wraps a storeToken reply.
func NewStoreTokenResponse(httpStatus int, body []byte) *StoreTokenResponse {
	return &StoreTokenResponse{Response: newResponse(httpStatus, body)}
}

func (r *StoreTokenResponse) parse() {
	r.once.Do(func() {
		r.response = r.q.Text("//recurring:storeTokenResponse/recurring:result/recurring:result")
		r.reference = r.q.Text("//recurring:storeTokenResponse/recurring:result/recurring:rechargeReference")
		r.recurringDetailReference = r.q.Text("//recurring:storeTokenResponse/recurring:result/recurring:recurringDetailReference")
	})
}

// Result returns the literal status text, "Success" when the token was stored.
func (r *StoreTokenResponse) Result() string {
	r.parse()
	return r.response
}

// RecurringDetailReference returns the reference of the newly stored detail.
func (r *StoreTokenResponse) RecurringDetailReference() string {
	r.parse()
	return r.recurringDetailReference
}

// Reference returns the processor's recharge reference.
func (r *StoreTokenResponse) Reference() string {
	r.parse()
	return r.reference
}

func (r *StoreTokenResponse) Success() bool {
	return r.Response.Success() && r.Result() == "Success"
}

// Stored is an alias of Success.
func (r *StoreTokenResponse) Stored() bool {
	return r.Success()
}

// ============================================
// scheduleAccountUpdater
// ============================================

// ScheduleAccountUpdaterResponse is the reply to ScheduleAccountUpdater.
type ScheduleAccountUpdaterResponse struct {
	Response

	once     sync.Once
	response string
}

// NewScheduleAccountUpdaterResponse wraps a scheduleAccountUpdater reply.
func NewScheduleAccountUpdaterResponse(httpStatus int, body []byte) *ScheduleAccountUpdaterResponse {
	return &ScheduleAccountUpdaterResponse{Response: newResponse(httpStatus, body)}
}

func (r *ScheduleAccountUpdaterResponse) Result() string {
	r.once.Do(func() {
		r.response = r.q.Text("//recurring:scheduleAccountUpdaterResponse/recurring:result/recurring:result")
	})
	return r.response
}

func (r *ScheduleAccountUpdaterResponse) Success() bool {
	return r.Response.Success() && r.Result() == "Success"
}

// ============================================
// value helpers
// ============================================

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02",
}

// parseTimestamp returns nil for empty or unparseable values.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// lastDayOfMonth returns the zero time when year or month are not valid.
func lastDayOfMonth(year, month string) time.Time {
	y, err := expiryYear(year)
	if err != nil {
		return time.Time{}
	}
	m, err := expiryMonth(month)
	if err != nil {
		return time.Time{}
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC)
}
