package email

const (
	subjectInquiryReceived = "We got your message ✔"
	subjectBookingReceived = "We got your booking request ✔"
	subjectInquiryAlert    = "New inquiry received"
	subjectBookingAlert    = "New booking received"
)
