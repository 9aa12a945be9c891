package notification

import "context"

// Kind identifies which message template a notification uses.
type Kind string

const (
	// KindConfirmation acknowledges a newly submitted request to the requester.
	KindConfirmation Kind = "confirmation"
	// KindAdminAlert tells administrators a new request needs review.
	KindAdminAlert Kind = "admin_alert"
	// KindVendorAlert tells the product vendor a request was submitted
	// against one of their products.
	KindVendorAlert Kind = "vendor_alert"
	// KindIssuance delivers the issued certificate to the requester.
	KindIssuance Kind = "issuance"
	// KindRejection tells the requester their request was declined.
	KindRejection Kind = "rejection"
	// KindOTP delivers a one-time verification code.
	KindOTP Kind = "otp"
)

// Message is a single outgoing notification. Fields carries the
// template-specific values; Attachment, when set, is an absolute path to a
// file sent along with the message.
type Message struct {
	Kind       Kind
	Recipient  string
	Fields     map[string]string
	Attachment string
}

// Dispatcher sends notifications to requesters, vendors, and administrators.
// Send reports delivery failure through the error; callers decide whether a
// failed delivery is fatal for the surrounding operation.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
