package valueobjects

import "fmt"

type SubjectKind string

const (
	// KindCourse certifies completion of a purchased course.
	KindCourse SubjectKind = "course"
	// KindEvent certifies participation in an institution event.
	KindEvent SubjectKind = "event"
)

var validSubjectKinds = map[SubjectKind]bool{
	KindCourse: true,
	KindEvent:  true,
}

func (k SubjectKind) String() string {
	return string(k)
}

func (k SubjectKind) IsValid() bool {
	return validSubjectKinds[k]
}

func (k SubjectKind) IsCourse() bool {
	return k == KindCourse
}

func (k SubjectKind) IsEvent() bool {
	return k == KindEvent
}

func NewSubjectKind(s string) (SubjectKind, error) {
	k := SubjectKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid subject kind: %s", s)
	}
	return k, nil
}

// Subject identifies the thing being certified: a product for course
// certificates, an institution/event pair for event certificates.
type Subject struct {
	kind          SubjectKind
	productID     uint
	productName   string
	institutionID uint
	eventDateID   uint
}

func NewCourseSubject(productID uint, productName string) (Subject, error) {
	if productID == 0 {
		return Subject{}, fmt.Errorf("product ID is required for course subjects")
	}
	return Subject{
		kind:        KindCourse,
		productID:   productID,
		productName: productName,
	}, nil
}

func NewEventSubject(institutionID, eventDateID uint) (Subject, error) {
	if institutionID == 0 || eventDateID == 0 {
		return Subject{}, fmt.Errorf("institution and event date are required for event subjects")
	}
	return Subject{
		kind:          KindEvent,
		institutionID: institutionID,
		eventDateID:   eventDateID,
	}, nil
}

// ReconstructSubject rebuilds a Subject from persistence without validation.
func ReconstructSubject(kind SubjectKind, productID uint, productName string, institutionID, eventDateID uint) Subject {
	return Subject{
		kind:          kind,
		productID:     productID,
		productName:   productName,
		institutionID: institutionID,
		eventDateID:   eventDateID,
	}
}

func (s Subject) Kind() SubjectKind   { return s.kind }
func (s Subject) ProductID() uint     { return s.productID }
func (s Subject) ProductName() string { return s.productName }
func (s Subject) InstitutionID() uint { return s.institutionID }
func (s Subject) EventDateID() uint   { return s.eventDateID }

// Ref returns the opaque reference used for duplicate detection: at most one
// non-terminal request may exist per (requester, Ref()).
func (s Subject) Ref() string {
	if s.kind.IsEvent() {
		return fmt.Sprintf("event:%d", s.eventDateID)
	}
	return fmt.Sprintf("product:%d", s.productID)
}
