package email

const (
	subjectContactInquiryFmt = "New inquiry from %s"
	subjectListingInquiryFmt = "New inquiry about listing %s"
)
