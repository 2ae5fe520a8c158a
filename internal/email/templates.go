package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type inquiryReceivedEmailData struct {
	baseEmailData
	Name string
}

type bookingReceivedEmailData struct {
	baseEmailData
	Name    string
	Package string
	Date    string
	Time    string
}

type inquiryAlertEmailData struct {
	baseEmailData
	Alert InquiryAlert
}

type bookingAlertEmailData struct {
	baseEmailData
	Alert BookingAlert
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

// greetingSuffix formats ", <name>" for email headings, or nothing when the
// name is absent or a normalizer placeholder.
func greetingSuffix(name string) string {
	if name == "" || name == "Unknown" {
		return ""
	}
	return ", " + name
}
