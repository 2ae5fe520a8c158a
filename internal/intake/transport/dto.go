package transport

// InquiryRequest is the direct-submission payload for a quote inquiry.
// Company is a hidden honeypot input; legitimate users never fill it.
type InquiryRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"required,max=254"`
	Phone   string `json:"phone" validate:"max=30"`
	Vehicle string `json:"vehicle" validate:"max=100"`
	Message string `json:"message" validate:"required,max=2000"`
	Company string `json:"company" validate:"max=200"`
}

// BookingRequest is the direct-submission payload for a booking request.
// Package, Date, and Time are free-text scheduling preferences; no calendar
// or availability validation is applied.
type BookingRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"required,max=254"`
	Phone   string `json:"phone" validate:"max=30"`
	Vehicle string `json:"vehicle" validate:"max=100"`
	Package string `json:"package" validate:"max=200"`
	Date    string `json:"date" validate:"max=50"`
	Time    string `json:"time" validate:"max=50"`
	Company string `json:"company" validate:"max=200"`
}

// SubmissionResponse is returned for accepted submissions.
type SubmissionResponse struct {
	Success bool `json:"success"`
}
