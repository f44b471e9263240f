package application

// StatusVisaGranted is the one transition that produces a commission.
const StatusVisaGranted = "Visa Granted"

// StatusCatalog is the ordered application lifecycle. Status updates are
// accepted as free text at the endpoint; the catalog backs the dashboard
// dropdown and keeps the labels in one place.
var StatusCatalog = []string{
	"Application Created",
	"Documents Requested",
	"Documents Received",
	"Application Submitted",
	"Under University Review",
	"Conditional Offer",
	"Unconditional Offer",
	"Offer Accepted",
	"Deposit Requested",
	"Deposit Paid",
	"CAS Requested",
	"CAS Received",
	"Visa Application Prepared",
	"Visa Applied",
	"Visa Interview Scheduled",
	StatusVisaGranted,
	"Visa Refused",
	"Enrolled",
	"Course Commenced",
	"Withdrawn",
	"Pending document",
}

// IsKnownStatus reports whether the label belongs to the catalog.
func IsKnownStatus(label string) bool {
	for _, s := range StatusCatalog {
		if s == label {
			return true
		}
	}
	return false
}
