package adyen_soap_recurring

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"
)

func testPaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		MerchantAccount: "SuperShopper",
		Reference:       "order-1",
		Amount:          models.NewAmount("eur", decimal.RequireFromString("12.34")),
	}
}

func TestBuildAuthoriseBody_Card(t *testing.T) {
	req := testPaymentRequest()
	req.Card = testCard()
	req.BillingAddress = &models.Address{
		City:              "Amsterdam",
		Street:            "Simon Carmiggeltstraat",
		HouseNumberOrName: "6-50",
		PostalCode:        "1011 DJ",
		StateOrProvince:   "NH",
		Country:           "NL",
	}
	req.Contract = models.ContractRecurring
	req.Shopper = &models.PaymentShopper{Reference: "user-id", Email: "s.hopper@example.com"}

	body, err := BuildAuthoriseBody(req)
	require.NoError(t, err)

	pr, ok := newXMLQuerier([]byte(body)).First("//payment:authorise/payment:paymentRequest")
	require.True(t, ok)
	assert.Equal(t, "SuperShopper", pr.Text("./payment:merchantAccount"))
	assert.Equal(t, "order-1", pr.Text("./payment:reference"))
	assert.Equal(t, "EUR", pr.Text("./payment:amount/common:currency"))
	assert.Equal(t, "1234", pr.Text("./payment:amount/common:value"))

	card, ok := pr.First("./payment:card")
	require.True(t, ok)
	assert.Equal(t, "737", card.Text("./payment:cvc"))
	assert.Equal(t, "03", card.Text("./payment:expiryMonth"))
	assert.Equal(t, "Amsterdam", card.Text("./payment:billingAddress/common:city"))
	assert.Equal(t, "NL", card.Text("./payment:billingAddress/common:country"))

	assert.Equal(t, "RECURRING", pr.Text("./payment:recurring/payment:contract"))
	assert.Equal(t, "user-id", pr.Text("./payment:shopperReference"))
	assert.Equal(t, "s.hopper@example.com", pr.Text("./payment:shopperEmail"))
	assert.NotContains(t, body, "shopperIP")
	assert.NotContains(t, body, "selectedRecurringDetailReference")
}

func TestBuildAuthoriseBody_CardWithoutCVC(t *testing.T) {
	req := testPaymentRequest()
	req.Card = testCard()
	req.Card.CVC = ""

	body, err := BuildAuthoriseBody(req)
	require.NoError(t, err)
	assert.NotContains(t, body, "payment:cvc")
	assert.NotContains(t, body, "billingAddress")
	assert.NotContains(t, body, "payment:recurring")
}

func TestBuildAuthoriseBody_ELV(t *testing.T) {
	req := testPaymentRequest()
	req.ELV = testELV()

	body, err := BuildAuthoriseBody(req)
	require.NoError(t, err)

	elv, ok := newXMLQuerier([]byte(body)).First("//payment:paymentRequest/payment:elv")
	require.True(t, ok)
	assert.Equal(t, "Berlin", elv.Text("./payment:bankLocation"))
	assert.Equal(t, "TestBank", elv.Text("./payment:bankName"))
	assert.Equal(t, "1234567890", elv.Text("./payment:bankAccountNumber"))
}

func TestBuildAuthoriseBody_RecurringDetail(t *testing.T) {
	req := testPaymentRequest()
	req.SelectedRecurringDetailReference = "RecurringDetailReference1"

	body, err := BuildAuthoriseBody(req)
	require.NoError(t, err)

	pr, _ := newXMLQuerier([]byte(body)).First("//payment:paymentRequest")
	assert.Equal(t, "RECURRING", pr.Text("./payment:recurring/payment:contract"))
	assert.Equal(t, "RecurringDetailReference1", pr.Text("./payment:selectedRecurringDetailReference"))
	assert.Equal(t, "ContAuth", pr.Text("./payment:shopperInteraction"))
	assert.NotContains(t, body, "payment:card")
}

func TestBuildAuthoriseBody_OneClickDetail(t *testing.T) {
	req := testPaymentRequest()
	req.Card = &models.Card{CVC: "737", ExpiryYear: "2030", ExpiryMonth: "3"}
	req.Contract = models.ContractOneClick
	req.SelectedRecurringDetailReference = "RecurringDetailReference1"

	body, err := BuildAuthoriseBody(req)
	require.NoError(t, err)

	pr, _ := newXMLQuerier([]byte(body)).First("//payment:paymentRequest")
	assert.Equal(t, "ONECLICK", pr.Text("./payment:recurring/payment:contract"))
	assert.Equal(t, "737", pr.Text("./payment:card/payment:cvc"))
	assert.NotContains(t, body, "shopperInteraction")
}

func TestBuildAuthoriseBody_MissingParameters(t *testing.T) {
	req := testPaymentRequest()
	req.MerchantAccount = ""
	_, err := BuildAuthoriseBody(req)
	requireMissing(t, err, "merchant_account")

	req = testPaymentRequest()
	req.Amount.Currency = ""
	_, err = BuildAuthoriseBody(req)
	requireMissing(t, err, "amount.currency")

	_, err = BuildAuthoriseBody(testPaymentRequest())
	assert.ErrorContains(t, err, "'card', 'elv' or 'selected_recurring_detail_reference'")
}

func TestBuildModificationBody(t *testing.T) {
	amount := models.NewAmount("JPY", decimal.NewFromInt(1500))
	req := models.ModificationRequest{
		MerchantAccount:   "SuperShopper",
		OriginalReference: "8313842560770001",
		Amount:            &amount,
	}

	for _, op := range []ModificationOperation{OpCapture, OpRefund} {
		body, err := BuildModificationBody(op, req)
		require.NoError(t, err, op)

		mr, ok := newXMLQuerier([]byte(body)).First("//payment:" + string(op) + "/payment:modificationRequest")
		require.True(t, ok, op)
		assert.Equal(t, "8313842560770001", mr.Text("./payment:originalReference"))
		assert.Equal(t, "JPY", mr.Text("./payment:modificationAmount/common:currency"))
		assert.Equal(t, "1500", mr.Text("./payment:modificationAmount/common:value"))
	}

	for _, op := range []ModificationOperation{OpCancel, OpCancelOrRefund} {
		body, err := BuildModificationBody(op, req)
		require.NoError(t, err, op)
		assert.True(t, strings.Contains(body, "<payment:"+string(op)), op)
		assert.NotContains(t, body, "modificationAmount")
	}
}

func TestBuildModificationBody_Errors(t *testing.T) {
	_, err := BuildModificationBody("void", models.ModificationRequest{MerchantAccount: "SuperShopper", OriginalReference: "1"})
	assert.ErrorContains(t, err, `unknown modification "void"`)

	_, err = BuildModificationBody(OpCancel, models.ModificationRequest{MerchantAccount: "SuperShopper"})
	requireMissing(t, err, "original_reference")

	_, err = BuildModificationBody(OpRefund, models.ModificationRequest{MerchantAccount: "SuperShopper", OriginalReference: "1"})
	requireMissing(t, err, "amount")
}
