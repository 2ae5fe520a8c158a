package email

import (
	"strings"
	"testing"
)

func TestRenderBookingReceivedTemplate(t *testing.T) {
	html, err := renderEmailTemplate("booking_received.html", bookingReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "We got your booking request",
			Heading: "Thanks for booking, Carlos",
		},
		Name:    "Carlos",
		Package: "GOLD – SUV ($290)",
		Date:    "2026-09-01",
		Time:    "10:00",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Thanks for booking, Carlos",
		"GOLD – SUV ($290)",
		"2026-09-01",
		"10:00",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered email missing %q", want)
		}
	}
}

func TestRenderAlertTemplatesIncludeAllFields(t *testing.T) {
	html, err := renderEmailTemplate("booking_alert.html", bookingAlertEmailData{
		baseEmailData: baseEmailData{Title: "New booking received", Heading: "New booking"},
		Alert: BookingAlert{
			Name:    "Unknown",
			Email:   "lead@example.com",
			Phone:   "",
			Vehicle: "—",
			Package: "—",
			Date:    "—",
			Time:    "—",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "lead@example.com") || !strings.Contains(html, "Unknown") {
		t.Fatal("alert email missing record fields")
	}

	html, err = renderEmailTemplate("inquiry_alert.html", inquiryAlertEmailData{
		baseEmailData: baseEmailData{Title: "New inquiry received", Heading: "New inquiry"},
		Alert: InquiryAlert{
			Name:    "Carlos",
			Email:   "carlos@example.com",
			Message: "Need a detail",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Need a detail") {
		t.Fatal("inquiry alert missing message")
	}
}

func TestGreetingSuffix(t *testing.T) {
	cases := map[string]string{
		"Carlos":  ", Carlos",
		"":        "",
		"Unknown": "",
	}
	for name, want := range cases {
		if got := greetingSuffix(name); got != want {
			t.Fatalf("greetingSuffix(%q) = %q, want %q", name, got, want)
		}
	}
}
