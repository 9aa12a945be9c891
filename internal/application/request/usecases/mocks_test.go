package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/certificate"
	"certhub/internal/domain/eligibility"
	"certhub/internal/domain/event"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc                  func(ctx context.Context, req *request.Request) error
	UpdateFunc                func(ctx context.Context, req *request.Request) error
	UpdateWithStatusGuardFunc func(ctx context.Context, req *request.Request, expected ...vo.RequestStatus) error
	DeleteFunc                func(ctx context.Context, requestID uint) error
	GetByIDFunc               func(ctx context.Context, requestID uint) (*request.Request, error)
	GetByPublicIDFunc         func(ctx context.Context, publicID string) (*request.Request, error)
	ExistsByPublicIDFunc      func(ctx context.Context, publicID string) (bool, error)
	FindDuplicateFunc         func(ctx context.Context, requesterID uint, subjectRef string, statuses []vo.RequestStatus) (*request.Request, error)
	ListFunc                  func(ctx context.Context, filter request.RequestFilter) ([]*request.Request, int64, error)
	FindByStatusSinceFunc     func(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error)
	SearchIssuedFunc          func(ctx context.Context, term string) (*request.Request, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) UpdateWithStatusGuard(ctx context.Context, req *request.Request, expected ...vo.RequestStatus) error {
	if m.UpdateWithStatusGuardFunc != nil {
		return m.UpdateWithStatusGuardFunc(ctx, req, expected...)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, requestID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, requestID)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestRepository) GetByPublicID(ctx context.Context, publicID string) (*request.Request, error) {
	if m.GetByPublicIDFunc != nil {
		return m.GetByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockRequestRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	if m.ExistsByPublicIDFunc != nil {
		return m.ExistsByPublicIDFunc(ctx, publicID)
	}
	return false, nil
}

func (m *mockRequestRepository) FindDuplicate(ctx context.Context, requesterID uint, subjectRef string, statuses []vo.RequestStatus) (*request.Request, error) {
	if m.FindDuplicateFunc != nil {
		return m.FindDuplicateFunc(ctx, requesterID, subjectRef, statuses)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.RequestFilter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) FindByStatusSince(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error) {
	if m.FindByStatusSinceFunc != nil {
		return m.FindByStatusSinceFunc(ctx, status, since, limit)
	}
	return nil, nil
}

func (m *mockRequestRepository) SearchIssued(ctx context.Context, term string) (*request.Request, error) {
	if m.SearchIssuedFunc != nil {
		return m.SearchIssuedFunc(ctx, term)
	}
	return nil, nil
}

type mockInstitutionRepository struct {
	SaveFunc       func(ctx context.Context, institution *event.Institution) error
	UpdateFunc     func(ctx context.Context, institution *event.Institution) error
	DeleteFunc     func(ctx context.Context, institutionID uint) error
	GetByIDFunc    func(ctx context.Context, institutionID uint) (*event.Institution, error)
	ListActiveFunc func(ctx context.Context) ([]*event.Institution, error)
}

func (m *mockInstitutionRepository) Save(ctx context.Context, institution *event.Institution) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, institution)
	}
	return nil
}

func (m *mockInstitutionRepository) Update(ctx context.Context, institution *event.Institution) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, institution)
	}
	return nil
}

func (m *mockInstitutionRepository) Delete(ctx context.Context, institutionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, institutionID)
	}
	return nil
}

func (m *mockInstitutionRepository) GetByID(ctx context.Context, institutionID uint) (*event.Institution, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, institutionID)
	}
	return nil, nil
}

func (m *mockInstitutionRepository) ListActive(ctx context.Context) ([]*event.Institution, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockEventDateRepository struct {
	SaveFunc                  func(ctx context.Context, eventDate *event.EventDate) error
	UpdateFunc                func(ctx context.Context, eventDate *event.EventDate) error
	DeleteFunc                func(ctx context.Context, eventDateID uint) error
	GetByIDFunc               func(ctx context.Context, eventDateID uint) (*event.EventDate, error)
	ListActiveByInstitutionFunc func(ctx context.Context, institutionID uint) ([]*event.EventDate, error)
}

func (m *mockEventDateRepository) Save(ctx context.Context, eventDate *event.EventDate) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, eventDate)
	}
	return nil
}

func (m *mockEventDateRepository) Update(ctx context.Context, eventDate *event.EventDate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, eventDate)
	}
	return nil
}

func (m *mockEventDateRepository) Delete(ctx context.Context, eventDateID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, eventDateID)
	}
	return nil
}

func (m *mockEventDateRepository) GetByID(ctx context.Context, eventDateID uint) (*event.EventDate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, eventDateID)
	}
	return nil, nil
}

func (m *mockEventDateRepository) ListActiveByInstitution(ctx context.Context, institutionID uint) ([]*event.EventDate, error) {
	if m.ListActiveByInstitutionFunc != nil {
		return m.ListActiveByInstitutionFunc(ctx, institutionID)
	}
	return nil, nil
}

type mockParticipantRepository struct {
	SaveFunc            func(ctx context.Context, participant *event.Participant) error
	DeleteFunc          func(ctx context.Context, participantID uint) error
	ListByEventDateFunc func(ctx context.Context, eventDateID uint) ([]*event.Participant, error)
	ExistsOnRosterFunc  func(ctx context.Context, eventDateID uint, fullName string) (bool, error)
	RemoveFromRosterFunc func(ctx context.Context, eventDateID uint, fullName string) (int64, error)
}

func (m *mockParticipantRepository) Save(ctx context.Context, participant *event.Participant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, participant)
	}
	return nil
}

func (m *mockParticipantRepository) Delete(ctx context.Context, participantID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, participantID)
	}
	return nil
}

func (m *mockParticipantRepository) ListByEventDate(ctx context.Context, eventDateID uint) ([]*event.Participant, error) {
	if m.ListByEventDateFunc != nil {
		return m.ListByEventDateFunc(ctx, eventDateID)
	}
	return nil, nil
}

func (m *mockParticipantRepository) ExistsOnRoster(ctx context.Context, eventDateID uint, fullName string) (bool, error) {
	if m.ExistsOnRosterFunc != nil {
		return m.ExistsOnRosterFunc(ctx, eventDateID, fullName)
	}
	return false, nil
}

func (m *mockParticipantRepository) RemoveFromRoster(ctx context.Context, eventDateID uint, fullName string) (int64, error) {
	if m.RemoveFromRosterFunc != nil {
		return m.RemoveFromRosterFunc(ctx, eventDateID, fullName)
	}
	return 0, nil
}

type mockRenderer struct {
	RenderFunc func(ctx context.Context, kind certificate.TemplateKind, publicID string, fields certificate.Fields) (*certificate.Artifact, error)
}

func (m *mockRenderer) Render(ctx context.Context, kind certificate.TemplateKind, publicID string, fields certificate.Fields) (*certificate.Artifact, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, kind, publicID, fields)
	}
	return &certificate.Artifact{Filename: publicID + ".pdf", AccessToken: "token"}, nil
}

type mockArtifactStore struct {
	PathFunc   func(filename string) (string, error)
	RemoveFunc func(filename string) error
}

func (m *mockArtifactStore) Path(filename string) (string, error) {
	if m.PathFunc != nil {
		return m.PathFunc(filename)
	}
	return "/tmp/artifacts/" + filename, nil
}

func (m *mockArtifactStore) Remove(filename string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(filename)
	}
	return nil
}

type mockDispatcher struct {
	SendFunc func(ctx context.Context, msg notification.Message) error
	sent     []notification.Message
}

func (m *mockDispatcher) Send(ctx context.Context, msg notification.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

type mockSettingProvider struct {
	Prefix      string
	Company     string
	Support     string
	From        string
	MinDays     int
	VerifyURL   string
}

func (m *mockSettingProvider) GetPublicIDPrefix(ctx context.Context) string { return m.Prefix }
func (m *mockSettingProvider) GetCompanyName(ctx context.Context) string    { return m.Company }
func (m *mockSettingProvider) GetSupportEmail(ctx context.Context) string   { return m.Support }
func (m *mockSettingProvider) GetFromEmail(ctx context.Context) string      { return m.From }
func (m *mockSettingProvider) GetMinDaysAfterPurchase(ctx context.Context) int {
	return m.MinDays
}
func (m *mockSettingProvider) GetVerifyPageURL(ctx context.Context) string { return m.VerifyURL }

type mockChecker struct {
	HasCompletedPurchaseFunc func(ctx context.Context, requesterID, productID uint, minDays int, asOf time.Time) (bool, error)
	LatestPurchaseFunc       func(ctx context.Context, requesterID, productID uint) (*eligibility.Purchase, error)
}

func (m *mockChecker) HasCompletedPurchase(ctx context.Context, requesterID, productID uint, minDays int, asOf time.Time) (bool, error) {
	if m.HasCompletedPurchaseFunc != nil {
		return m.HasCompletedPurchaseFunc(ctx, requesterID, productID, minDays, asOf)
	}
	return true, nil
}

func (m *mockChecker) LatestPurchase(ctx context.Context, requesterID, productID uint) (*eligibility.Purchase, error) {
	if m.LatestPurchaseFunc != nil {
		return m.LatestPurchaseFunc(ctx, requesterID, productID)
	}
	return nil, nil
}

type mockIDGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockIDGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "OFSHDG2026001", nil
}

type mockTxRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func mustCourseSubject(t interface{ Fatalf(string, ...any) }, productID uint, productName string) vo.Subject {
	subject, err := vo.NewCourseSubject(productID, productName)
	if err != nil {
		t.Fatalf("failed to build course subject: %v", err)
	}
	return subject
}

func mustEventSubject(t interface{ Fatalf(string, ...any) }, institutionID, eventDateID uint) vo.Subject {
	subject, err := vo.NewEventSubject(institutionID, eventDateID)
	if err != nil {
		t.Fatalf("failed to build event subject: %v", err)
	}
	return subject
}

func testContact() request.Contact {
	return request.Contact{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Phone:     "+2348030000000",
	}
}

// pendingCourseRequest builds a persisted pending request for a course
// subject.
func pendingCourseRequest(t interface{ Fatalf(string, ...any) }) *request.Request {
	req, err := request.ReconstructRequest(
		1, "OFSHDG2026001", 42,
		mustCourseSubject(t, 7, "Intro to Welding"),
		testContact(),
		"", "Chinedu Okeke", nil, nil,
		vo.StatusPending, nil, nil, nil,
		time.Now().UTC().Add(-time.Hour), nil, nil, 1,
	)
	if err != nil {
		t.Fatalf("failed to reconstruct request: %v", err)
	}
	return req
}

// requestInStatus builds a persisted request in the given status, with an
// artifact attached for statuses that require one.
func requestInStatus(t interface{ Fatalf(string, ...any) }, status vo.RequestStatus) *request.Request {
	var artifactRef, accessToken *string
	var completionDate *time.Time
	if status == vo.StatusIssued || status == vo.StatusNotificationFailed {
		ref := "OFSHDG2026001.pdf"
		token := "secret-token"
		artifactRef = &ref
		accessToken = &token
	}
	if status != vo.StatusPending {
		date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		completionDate = &date
	}

	req, err := request.ReconstructRequest(
		1, "OFSHDG2026001", 42,
		mustCourseSubject(t, 7, "Intro to Welding"),
		testContact(),
		"", "Chinedu Okeke", nil, completionDate,
		status, nil, artifactRef, accessToken,
		time.Now().UTC().Add(-time.Hour), nil, nil, 1,
	)
	if err != nil {
		t.Fatalf("failed to reconstruct request: %v", err)
	}
	return req
}
