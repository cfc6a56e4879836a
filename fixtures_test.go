package adyen_soap_recurring

import "fmt"

const replyEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <soap:Body>
%s
  </soap:Body>
</soap:Envelope>`

func envelope(body string) []byte {
	return []byte(fmt.Sprintf(replyEnvelope, body))
}

var listReply = envelope(`
<ns1:listRecurringDetailsResponse xmlns:ns1="http://recurring.services.adyen.com">
  <ns1:result>
    <ns1:creationDate>2009-10-27T11:26:22.203+01:00</ns1:creationDate>
    <details xmlns="http://recurring.services.adyen.com">
      <RecurringDetail>
        <additionalData>
          <entry>
            <key>cardBin</key>
            <value>411111</value>
          </entry>
          <entry>
            <key>lastAccountUpdaterCheck</key>
            <value>2014-10-15T09:30:00.000+02:00</value>
          </entry>
        </additionalData>
        <bank xsi:nil="true"/>
        <card>
          <cvc xmlns="http://payment.services.adyen.com" xsi:nil="true"/>
          <expiryMonth xmlns="http://payment.services.adyen.com">2</expiryMonth>
          <expiryYear xmlns="http://payment.services.adyen.com">2024</expiryYear>
          <holderName xmlns="http://payment.services.adyen.com">S. Hopper</holderName>
          <number xmlns="http://payment.services.adyen.com">1111</number>
        </card>
        <creationDate>2009-10-27T11:50:12.178+01:00</creationDate>
        <elv xsi:nil="true"/>
        <name/>
        <recurringDetailReference>RecurringDetailReference1</recurringDetailReference>
        <variant>mc</variant>
      </RecurringDetail>
      <RecurringDetail>
        <bank xsi:nil="true"/>
        <card xsi:nil="true"/>
        <creationDate>2009-10-27T11:26:22.216+01:00</creationDate>
        <elv>
          <accountHolderName xmlns="http://payment.services.adyen.com">S. Hopper</accountHolderName>
          <bankAccountNumber xmlns="http://payment.services.adyen.com">1234567890</bankAccountNumber>
          <bankLocation xmlns="http://payment.services.adyen.com">Amsterdam</bankLocation>
          <bankLocationId xmlns="http://payment.services.adyen.com">12345678</bankLocationId>
          <bankName xmlns="http://payment.services.adyen.com">TestBank</bankName>
        </elv>
        <name/>
        <recurringDetailReference>RecurringDetailReference2</recurringDetailReference>
        <variant>elv</variant>
      </RecurringDetail>
      <RecurringDetail>
        <bank>
          <bankAccountNumber xmlns="http://payment.services.adyen.com">1234567890</bankAccountNumber>
          <bankLocationId xmlns="http://payment.services.adyen.com">bank-location-id</bankLocationId>
          <bankName xmlns="http://payment.services.adyen.com">AnyBank</bankName>
          <bic xmlns="http://payment.services.adyen.com">BBBBCCLLbbb</bic>
          <countryCode xmlns="http://payment.services.adyen.com">NL</countryCode>
          <iban xmlns="http://payment.services.adyen.com">NL69PSTB0001234567</iban>
          <ownerName xmlns="http://payment.services.adyen.com">JS Hopper</ownerName>
        </bank>
        <card xsi:nil="true"/>
        <creationDate>2012-10-07T12:26:22.216+02:00</creationDate>
        <elv xsi:nil="true"/>
        <name/>
        <recurringDetailReference>RecurringDetailReference3</recurringDetailReference>
        <variant>IDEAL</variant>
      </RecurringDetail>
    </details>
    <ns1:lastKnownShopperEmail>s.hopper@example.com</ns1:lastKnownShopperEmail>
    <ns1:shopperReference>user-id</ns1:shopperReference>
  </ns1:result>
</ns1:listRecurringDetailsResponse>`)

var listEmptyReply = envelope(`
<ns1:listRecurringDetailsResponse xmlns:ns1="http://recurring.services.adyen.com">
  <ns1:result>
    <ns1:creationDate xsi:nil="true"/>
    <ns1:details xsi:nil="true"/>
    <ns1:lastKnownShopperEmail xsi:nil="true"/>
    <ns1:shopperReference xsi:nil="true"/>
  </ns1:result>
</ns1:listRecurringDetailsResponse>`)

func disableReply(result string) []byte {
	return envelope(fmt.Sprintf(`
<ns1:disableResponse xmlns:ns1="http://recurring.services.adyen.com">
  <ns1:result>
    <response xmlns="http://recurring.services.adyen.com">%s</response>
  </ns1:result>
</ns1:disableResponse>`, result))
}

func storeTokenReply(result string) []byte {
	return envelope(fmt.Sprintf(`
<ns1:storeTokenResponse xmlns:ns1="http://recurring.services.adyen.com">
  <ns1:result>
    <rechargeReference xmlns="http://recurring.services.adyen.com">8313842560770001</rechargeReference>
    <recurringDetailReference xmlns="http://recurring.services.adyen.com">RecurringDetailReference1</recurringDetailReference>
    <result xmlns="http://recurring.services.adyen.com">%s</result>
  </ns1:result>
</ns1:storeTokenResponse>`, result))
}

func scheduleAccountUpdaterReply(result string) []byte {
	return envelope(fmt.Sprintf(`
<ns1:scheduleAccountUpdaterResponse xmlns:ns1="http://recurring.services.adyen.com">
  <ns1:result>
    <pspReference xmlns="http://recurring.services.adyen.com">8514836500000034</pspReference>
    <result xmlns="http://recurring.services.adyen.com">%s</result>
  </ns1:result>
</ns1:scheduleAccountUpdaterResponse>`, result))
}

var faultReply = envelope(`
<soap:Fault>
  <faultcode>soap:Server</faultcode>
  <faultstring>validation 100 No amount specified</faultstring>
</soap:Fault>`)
