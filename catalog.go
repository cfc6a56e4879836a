package adyen_soap_recurring

import (
	"fmt"

	"github.com/beevik/etree"
)

const (
	paymentNS   = "http://payment.services.adyen.com"
	recurringNS = "http://recurring.services.adyen.com"
	commonNS    = "http://common.services.adyen.com"
)

// namespacePrefixes maps the prefixes used by the layouts and by reply queries to their URIs.
var namespacePrefixes = map[string]string{
	"payment":   paymentNS,
	"recurring": recurringNS,
	"common":    commonNS,
}

// fragment is an ordered run of sibling elements spliced into a layout's content slot.
// Fragments are concatenated, never merged.
type fragment []*etree.Element

func (f fragment) appendTo(parent *etree.Element) {
	for _, el := range f {
		parent.AddChild(el)
	}
}

func join(parts ...fragment) fragment {
	var out fragment
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// operationRoot creates the namespaced root element of an operation body and
// declares the given prefixes on it.
func operationRoot(tag string, prefixes ...string) *etree.Element {
	root := etree.NewElement(tag)
	for _, prefix := range prefixes {
		root.CreateAttr("xmlns:"+prefix, namespacePrefixes[prefix])
	}
	return root
}

// leaf creates a child element holding text. etree escapes the text on output.
func leaf(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)
	return el
}

func newLeaf(tag, text string) *etree.Element {
	el := etree.NewElement(tag)
	el.SetText(text)
	return el
}

// render serialises a body element. The result carries no XML declaration
// since it is embedded in a SOAP envelope.
func render(root *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root)
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("adyen_soap_recurring: render %s: %w", root.FullTag(), err)
	}
	return s, nil
}

// ============================================
// Recurring service layouts
// ============================================

func listLayout(merchantAccount, shopperReference string) *etree.Element {
	root := operationRoot("recurring:listRecurringDetails", "recurring")
	req := root.CreateElement("recurring:request")

	recurring := req.CreateElement("recurring:recurring")
	contract := leaf(recurring, "payment:contract", "RECURRING")
	contract.CreateAttr("xmlns:payment", paymentNS)

	leaf(req, "recurring:merchantAccount", merchantAccount)
	leaf(req, "recurring:shopperReference", shopperReference)
	return root
}

// disableLayout takes an empty detail fragment to disable all of the shopper's details.
func disableLayout(merchantAccount, shopperReference string, detail fragment) *etree.Element {
	root := operationRoot("recurring:disable", "recurring")
	req := root.CreateElement("recurring:request")
	leaf(req, "recurring:merchantAccount", merchantAccount)
	leaf(req, "recurring:shopperReference", shopperReference)
	detail.appendTo(req)
	return root
}

func storeTokenLayout(merchantAccount, shopperReference, shopperEmail string, content fragment) *etree.Element {
	root := operationRoot("recurring:storeToken", "recurring", "payment")
	req := root.CreateElement("recurring:request")
	recurringContractPartial("RECURRING").appendTo(req)
	leaf(req, "recurring:merchantAccount", merchantAccount)
	leaf(req, "recurring:shopperReference", shopperReference)
	leaf(req, "recurring:shopperEmail", shopperEmail)
	content.appendTo(req)
	return root
}

func scheduleAccountUpdaterLayout(merchantAccount, reference string, content fragment) *etree.Element {
	root := operationRoot("recurring:scheduleAccountUpdater", "recurring", "payment")
	req := root.CreateElement("recurring:request")
	leaf(req, "recurring:merchantAccount", merchantAccount)
	leaf(req, "recurring:reference", reference)
	content.appendTo(req)
	return root
}

// ============================================
// Recurring service partials
// ============================================

func recurringDetailPartial(reference string) fragment {
	return fragment{newLeaf("recurring:recurringDetailReference", reference)}
}

func recurringContractPartial(contract string) fragment {
	recurring := etree.NewElement("recurring:recurring")
	leaf(recurring, "payment:contract", contract)
	return fragment{recurring}
}

// cardPartial fields are in wire order; the month is zero padded to two digits.
func cardPartial(holderName, number, cvc, expiryYear string, expiryMonth int) fragment {
	card := etree.NewElement("recurring:card")
	leaf(card, "payment:holderName", holderName)
	leaf(card, "payment:number", number)
	leaf(card, "payment:cvc", cvc)
	leaf(card, "payment:expiryYear", expiryYear)
	leaf(card, "payment:expiryMonth", fmt.Sprintf("%02d", expiryMonth))
	return fragment{card}
}

// elvPartial is the full ELV partial. The payment service nests it as payment:elv.
func elvPartial(tag, bankLocation, bankName, bankLocationID, holderName, number string) fragment {
	elv := etree.NewElement(tag)
	leaf(elv, "payment:bankLocation", bankLocation)
	elvAccount(elv, bankName, bankLocationID, holderName, number)
	return fragment{elv}
}

// elvTokenPartial is the ELV partial used when tokenising, which carries no bank location.
func elvTokenPartial(bankName, bankLocationID, holderName, number string) fragment {
	elv := etree.NewElement("recurring:elv")
	elvAccount(elv, bankName, bankLocationID, holderName, number)
	return fragment{elv}
}

func elvAccount(elv *etree.Element, bankName, bankLocationID, holderName, number string) {
	leaf(elv, "payment:bankName", bankName)
	leaf(elv, "payment:bankLocationId", bankLocationID)
	leaf(elv, "payment:accountHolderName", holderName)
	leaf(elv, "payment:bankAccountNumber", number)
}

func tokenPartial(shopperReference, selectedRecurringDetailReference string) fragment {
	return fragment{
		newLeaf("recurring:shopperReference", shopperReference),
		newLeaf("recurring:selectedRecurringDetailReference", selectedRecurringDetailReference),
	}
}
