package aspect4

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	soapEnvNS = "http://schemas.xmlsoap.org/soap/envelope/"
	serviceNS = "http://ws.aspect4.eg.dk/EA7602RA"
)

// credentials — учётные данные, передаются в каждом вызове.
type credentials struct {
	User     string
	Password string
}

// field — одно поле запроса; имена содержат точки (t01.chgto),
// поэтому конверт собирается вручную, а не через структуры encoding/xml.
type field struct {
	name  string
	value string
}

// buildEnvelope — SOAP 1.1 конверт:
// Body > <операция xmlns=serviceNS> > credentials + request.
func buildEnvelope(op string, creds credentials, reqFields []field) []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<soapenv:Envelope xmlns:soapenv="%s">`, soapEnvNS)
	b.WriteString(`<soapenv:Body>`)
	fmt.Fprintf(&b, `<%s xmlns="%s">`, op, serviceNS)

	b.WriteString(`<credentials>`)
	writeElement(&b, "user", creds.User)
	writeElement(&b, "password", creds.Password)
	b.WriteString(`</credentials>`)

	b.WriteString(`<request>`)
	for _, f := range reqFields {
		writeElement(&b, f.name, f.value)
	}
	b.WriteString(`</request>`)

	fmt.Fprintf(&b, `</%s>`, op)
	b.WriteString(`</soapenv:Body>`)
	b.WriteString(`</soapenv:Envelope>`)
	return b.Bytes()
}

func writeElement(b *bytes.Buffer, name, value string) {
	fmt.Fprintf(b, "<%s>", name)
	_ = xml.EscapeText(b, []byte(value))
	fmt.Fprintf(b, "</%s>", name)
}
