package request

import (
	"fmt"
	"strings"
	"time"

	vo "certhub/internal/domain/request/valueobjects"
)

// Contact holds the requester-supplied contact details used for notifications
// and for rendering the certificate holder name.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Request is a single credential issuance workflow instance, from submission
// to terminal state. All state mutations go through the transition methods;
// nothing outside this type writes the status directly.
type Request struct {
	id             uint
	publicID       string
	requesterID    uint
	subject        vo.Subject
	contact        Contact
	projectLink    string
	instructorName string
	vendorID       *uint
	completionDate *time.Time
	status         vo.RequestStatus
	failureDetail  *string
	artifactRef    *string
	accessToken    *string
	submittedAt    time.Time
	decidedAt      *time.Time
	decidedBy      *uint
	version        int
}

func NewRequest(
	requesterID uint,
	subject vo.Subject,
	contact Contact,
) (*Request, error) {
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if !subject.Kind().IsValid() {
		return nil, fmt.Errorf("invalid subject kind")
	}
	if contact.FirstName == "" || contact.LastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if contact.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	return &Request{
		requesterID: requesterID,
		subject:     subject,
		contact:     contact,
		status:      vo.StatusPending,
		submittedAt: time.Now().UTC(),
		version:     1,
	}, nil
}

func ReconstructRequest(
	id uint,
	publicID string,
	requesterID uint,
	subject vo.Subject,
	contact Contact,
	projectLink string,
	instructorName string,
	vendorID *uint,
	completionDate *time.Time,
	status vo.RequestStatus,
	failureDetail *string,
	artifactRef *string,
	accessToken *string,
	submittedAt time.Time,
	decidedAt *time.Time,
	decidedBy *uint,
	version int,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if publicID == "" {
		return nil, fmt.Errorf("public ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid request status: %s", status)
	}

	return &Request{
		id:             id,
		publicID:       publicID,
		requesterID:    requesterID,
		subject:        subject,
		contact:        contact,
		projectLink:    projectLink,
		instructorName: instructorName,
		vendorID:       vendorID,
		completionDate: completionDate,
		status:         status,
		failureDetail:  failureDetail,
		artifactRef:    artifactRef,
		accessToken:    accessToken,
		submittedAt:    submittedAt,
		decidedAt:      decidedAt,
		decidedBy:      decidedBy,
		version:        version,
	}, nil
}

func (r *Request) ID() uint                   { return r.id }
func (r *Request) PublicID() string           { return r.publicID }
func (r *Request) RequesterID() uint          { return r.requesterID }
func (r *Request) Subject() vo.Subject        { return r.subject }
func (r *Request) Contact() Contact           { return r.contact }
func (r *Request) ProjectLink() string        { return r.projectLink }
func (r *Request) InstructorName() string     { return r.instructorName }
func (r *Request) VendorID() *uint            { return r.vendorID }
func (r *Request) CompletionDate() *time.Time { return r.completionDate }
func (r *Request) Status() vo.RequestStatus   { return r.status }
func (r *Request) FailureDetail() *string     { return r.failureDetail }
func (r *Request) ArtifactRef() *string       { return r.artifactRef }
func (r *Request) AccessToken() *string       { return r.accessToken }
func (r *Request) SubmittedAt() time.Time     { return r.submittedAt }
func (r *Request) DecidedAt() *time.Time      { return r.decidedAt }
func (r *Request) DecidedBy() *uint           { return r.decidedBy }
func (r *Request) Version() int               { return r.version }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetPublicID assigns the public identifier exactly once, at creation.
func (r *Request) SetPublicID(publicID string) error {
	if r.publicID != "" {
		return fmt.Errorf("public ID is already set")
	}
	if publicID == "" {
		return fmt.Errorf("public ID cannot be empty")
	}
	r.publicID = publicID
	return nil
}

func (r *Request) SetProjectLink(link string) {
	r.projectLink = link
}

func (r *Request) SetInstructorName(name string) {
	r.instructorName = name
}

func (r *Request) SetVendorID(vendorID uint) {
	if vendorID != 0 {
		r.vendorID = &vendorID
	}
}

// BeginApproval moves the request into the transient approved state and
// records the completion date and deciding authority. Valid from pending,
// rejected (administrative re-approval), generation_failed and
// notification_failed (full reprocessing).
func (r *Request) BeginApproval(completionDate time.Time, decidedBy uint) error {
	if err := r.transitionTo(vo.StatusApproved); err != nil {
		return err
	}

	date := completionDate.UTC()
	now := time.Now().UTC()
	r.completionDate = &date
	r.decidedAt = &now
	r.decidedBy = &decidedBy
	r.failureDetail = nil
	return nil
}

// AttachArtifact records a freshly rendered artifact while the request is
// still in a transient state. Re-rendering overwrites the previous reference;
// old artifacts never accumulate on the request.
func (r *Request) AttachArtifact(artifactRef, accessToken string) error {
	if artifactRef == "" {
		return fmt.Errorf("artifact reference cannot be empty")
	}
	if !r.status.IsApproved() && !r.status.IsNotificationFailed() {
		return fmt.Errorf("cannot attach artifact in status %s", r.status)
	}

	r.artifactRef = &artifactRef
	if accessToken != "" {
		r.accessToken = &accessToken
	}
	return nil
}

// MarkIssued completes the lifecycle. Valid from approved (render and
// delivery just succeeded) and notification_failed (resend succeeded with
// the stored artifact). An artifact must be attached first.
func (r *Request) MarkIssued() error {
	if r.artifactRef == nil {
		return fmt.Errorf("cannot issue without an artifact")
	}
	if err := r.transitionTo(vo.StatusIssued); err != nil {
		return err
	}

	r.failureDetail = nil
	return nil
}

// MarkGenerationFailed parks the request for manual retry; no artifact exists.
func (r *Request) MarkGenerationFailed(detail string) error {
	if err := r.transitionTo(vo.StatusGenerationFailed); err != nil {
		return err
	}

	detail = "Generation Error: " + detail
	r.failureDetail = &detail
	r.artifactRef = nil
	r.accessToken = nil
	return nil
}

// MarkNotificationFailed keeps the artifact (it is valid) but flags the
// request so the sweep retries delivery.
func (r *Request) MarkNotificationFailed(detail string) error {
	if r.artifactRef == nil {
		return fmt.Errorf("cannot mark notification failed without an artifact")
	}
	if err := r.transitionTo(vo.StatusNotificationFailed); err != nil {
		return err
	}

	detail = "Notification Error: " + detail
	r.failureDetail = &detail
	return nil
}

// ConfirmDelivery moves a notification_failed request back to issued after a
// successful resend. No-op when already issued (manual resend path).
func (r *Request) ConfirmDelivery() error {
	if r.status.IsIssued() {
		return nil
	}
	if err := r.transitionTo(vo.StatusIssued); err != nil {
		return err
	}
	r.failureDetail = nil
	return nil
}

// Reject records the decision and reason. Valid from pending and, for the
// administrative path, from any other non-terminal state.
func (r *Request) Reject(reason string, decidedBy uint) error {
	if reason == "" {
		return fmt.Errorf("rejection reason is required")
	}
	if err := r.transitionTo(vo.StatusRejected); err != nil {
		return err
	}

	now := time.Now().UTC()
	r.failureDetail = &reason
	r.decidedAt = &now
	r.decidedBy = &decidedBy
	return nil
}

// HasArtifact reports whether a rendered artifact exists for this request.
func (r *Request) HasArtifact() bool {
	return r.artifactRef != nil && *r.artifactRef != ""
}

func (r *Request) transitionTo(newStatus vo.RequestStatus) error {
	if !r.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, newStatus)
	}
	r.status = newStatus
	r.version++
	return nil
}
