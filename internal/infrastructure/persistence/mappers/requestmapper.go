package mappers

import (
	"time"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between Request domain entities and persistence models.
type RequestMapper interface {
	// ToModel converts a request domain entity to a persistence model.
	ToModel(r *request.Request) *models.RequestModel

	// ToDomain converts a request persistence model to a domain entity.
	ToDomain(model *models.RequestModel) (*request.Request, error)
}

// RequestMapperImpl is the concrete implementation of RequestMapper.
type RequestMapperImpl struct{}

// NewRequestMapper creates a new RequestMapper.
func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

// ToModel converts a request domain entity to a persistence model.
func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	subject := r.Subject()
	contact := r.Contact()

	model := &models.RequestModel{
		ID:             r.ID(),
		PublicID:       r.PublicID(),
		RequesterID:    r.RequesterID(),
		SubjectKind:    subject.Kind().String(),
		SubjectRef:     subject.Ref(),
		ProductName:    subject.ProductName(),
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		Phone:          contact.Phone,
		ProjectLink:    r.ProjectLink(),
		InstructorName: r.InstructorName(),
		VendorID:       r.VendorID(),
		Status:         r.Status().String(),
		FailureDetail:  r.FailureDetail(),
		ArtifactRef:    r.ArtifactRef(),
		AccessToken:    r.AccessToken(),
		DecidedBy:      r.DecidedBy(),
		Version:        r.Version(),
		CreatedAt:      r.SubmittedAt().UnixMilli(),
	}

	if pid := subject.ProductID(); pid != 0 {
		model.ProductID = &pid
	}
	if iid := subject.InstitutionID(); iid != 0 {
		model.InstitutionID = &iid
	}
	if eid := subject.EventDateID(); eid != 0 {
		model.EventDateID = &eid
	}

	if r.CompletionDate() != nil {
		completion := r.CompletionDate().UnixMilli()
		model.CompletionDate = &completion
	}

	if r.DecidedAt() != nil {
		decided := r.DecidedAt().UnixMilli()
		model.DecidedAt = &decided
	}

	return model
}

// ToDomain converts a request persistence model to a domain entity.
func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	kind, err := vo.NewSubjectKind(model.SubjectKind)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewRequestStatus(model.Status)
	if err != nil {
		return nil, err
	}

	subject := vo.ReconstructSubject(
		kind,
		derefUint(model.ProductID),
		model.ProductName,
		derefUint(model.InstitutionID),
		derefUint(model.EventDateID),
	)

	contact := request.Contact{
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
	}

	var completionDate, decidedAt *time.Time
	if model.CompletionDate != nil {
		t := convertMillisToTime(*model.CompletionDate)
		completionDate = &t
	}
	if model.DecidedAt != nil {
		t := convertMillisToTime(*model.DecidedAt)
		decidedAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.PublicID,
		model.RequesterID,
		subject,
		contact,
		model.ProjectLink,
		model.InstructorName,
		model.VendorID,
		completionDate,
		status,
		model.FailureDetail,
		model.ArtifactRef,
		model.AccessToken,
		convertMillisToTime(model.CreatedAt),
		decidedAt,
		model.DecidedBy,
		model.Version,
	)
}

func derefUint(v *uint) uint {
	if v == nil {
		return 0
	}
	return *v
}
