package adyen_soap_recurring

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
)

const (
	wsuNS  = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"
	wsseNS = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	dsNS   = "http://www.w3.org/2000/09/xmldsig#"

	x509TokenProfile = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-x509-token-profile-1.0#X509v3"
	base64Encoding   = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-soap-message-security-1.0#Base64Binary"

	algExcC14N   = "http://www.w3.org/2001/10/xml-exc-c14n#"
	algRsaSha256 = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha256"
	algSha256    = "http://www.w3.org/2001/04/xmlenc#sha256"

	bodyID  = "Body"
	tokenID = "X509Token"
)

// signEnvelope adds a wsse:Security header to an enveloped request: the leaf
// certificate as a BinarySecurityToken and an RSA-SHA256 signature over the
// exclusive canonical form of soap:Body.
func signEnvelope(unsigned []byte, cert tls.Certificate) ([]byte, error) {
	leafCert, err := leafCertificate(cert)
	if err != nil {
		return nil, err
	}
	key, ok := cert.PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA (got %T)", cert.PrivateKey)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(unsigned); err != nil {
		return nil, fmt.Errorf("parse soap xml: %w", err)
	}
	env := doc.Root()
	if env == nil {
		return nil, fmt.Errorf("soap envelope missing")
	}
	body := childByLocalName(env, "Body")
	if body == nil {
		return nil, fmt.Errorf("soap Body not found")
	}
	header := childByLocalName(env, "Header")
	if header == nil {
		header = etree.NewElement("soap:Header")
		env.InsertChildAt(0, header)
	}

	// The canonicaliser cannot see declarations above the subtree it is given,
	// so Body declares the prefixes it uses itself.
	declareNS(body, "soap", soapNS)
	declareNS(body, "wsu", wsuNS)
	body.RemoveAttr("wsu:Id")
	body.CreateAttr("wsu:Id", bodyID)

	sec := newSecurityHeader(leafCert)
	header.AddChild(sec.security)

	// Indent before digesting so the canonical form matches the serialised output.
	doc.Indent(2)

	bodyC14N, err := canonicalize(body)
	if err != nil {
		return nil, fmt.Errorf("c14n body: %w", err)
	}
	digest := sha256.Sum256(bodyC14N)
	sec.digestValue.SetText(base64.StdEncoding.EncodeToString(digest[:]))

	signedInfoC14N, err := canonicalize(sec.signedInfo)
	if err != nil {
		return nil, fmt.Errorf("c14n signedInfo: %w", err)
	}
	hashed := sha256.Sum256(signedInfoC14N)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("rsa sign: %w", err)
	}
	sec.signatureValue.SetText(base64.StdEncoding.EncodeToString(signature))

	out := bytes.NewBuffer(nil)
	if _, err := doc.WriteTo(out); err != nil {
		return nil, fmt.Errorf("serialize signed xml: %w", err)
	}
	return out.Bytes(), nil
}

// securityHeader holds the wsse:Security element and the nodes filled in once
// the body has been digested.
type securityHeader struct {
	security       *etree.Element
	signedInfo     *etree.Element
	digestValue    *etree.Element
	signatureValue *etree.Element
}

// newSecurityHeader declares every namespace locally, on the element that uses it.
func newSecurityHeader(leafCert *x509.Certificate) securityHeader {
	var h securityHeader

	h.security = etree.NewElement("wsse:Security")
	declareNS(h.security, "wsse", wsseNS)

	bst := h.security.CreateElement("wsse:BinarySecurityToken")
	declareNS(bst, "wsu", wsuNS)
	bst.CreateAttr("ValueType", x509TokenProfile)
	bst.CreateAttr("EncodingType", base64Encoding)
	bst.CreateAttr("wsu:Id", tokenID)
	bst.SetText(base64.StdEncoding.EncodeToString(leafCert.Raw))

	sig := h.security.CreateElement("ds:Signature")
	declareNS(sig, "ds", dsNS)

	h.signedInfo = sig.CreateElement("ds:SignedInfo")
	declareNS(h.signedInfo, "ds", dsNS)
	h.signedInfo.CreateElement("ds:CanonicalizationMethod").CreateAttr("Algorithm", algExcC14N)
	h.signedInfo.CreateElement("ds:SignatureMethod").CreateAttr("Algorithm", algRsaSha256)

	ref := h.signedInfo.CreateElement("ds:Reference")
	ref.CreateAttr("URI", "#"+bodyID)
	ref.CreateElement("ds:Transforms").CreateElement("ds:Transform").CreateAttr("Algorithm", algExcC14N)
	ref.CreateElement("ds:DigestMethod").CreateAttr("Algorithm", algSha256)
	h.digestValue = ref.CreateElement("ds:DigestValue")

	h.signatureValue = sig.CreateElement("ds:SignatureValue")

	tokenRef := sig.CreateElement("ds:KeyInfo").CreateElement("wsse:SecurityTokenReference")
	tokenRef.CreateElement("wsse:Reference").CreateAttr("URI", "#"+tokenID)

	return h
}

func declareNS(el *etree.Element, prefix, uri string) {
	if el.SelectAttr("xmlns:"+prefix) == nil {
		el.CreateAttr("xmlns:"+prefix, uri)
	}
}

// childByLocalName finds a direct child by tag, ignoring its prefix.
func childByLocalName(parent *etree.Element, local string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if c.Tag == local {
			return c
		}
	}
	return nil
}

func leafCertificate(cert tls.Certificate) (*x509.Certificate, error) {
	if cert.Leaf != nil {
		return cert.Leaf, nil
	}
	if len(cert.Certificate) == 0 {
		return nil, fmt.Errorf("tls cert has no certificate chain")
	}
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return nil, fmt.Errorf("parse leaf: %w", err)
	}
	return leaf, nil
}

func canonicalize(el *etree.Element) ([]byte, error) {
	return dsig.MakeC14N10ExclusiveCanonicalizerWithPrefixList("").Canonicalize(el)
}
