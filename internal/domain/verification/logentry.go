package verification

import (
	"fmt"
	"time"
)

// Result classifies the outcome of a public lookup.
type Result string

const (
	ResultFound    Result = "found"
	ResultNotFound Result = "not_found"
)

// LogEntry is one append-only audit record of a public verification lookup.
// Entries are never updated; a retention sweep removes entries older than the
// audit horizon.
type LogEntry struct {
	id         uint
	publicID   string
	method     string
	query      string
	callerIP   string
	callerUser *uint
	result     Result
	verifiedAt time.Time
}

func NewLogEntry(publicID, method, query, callerIP string, callerUser *uint, result Result) (*LogEntry, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if result != ResultFound && result != ResultNotFound {
		return nil, fmt.Errorf("invalid verification result: %s", result)
	}

	return &LogEntry{
		publicID:   publicID,
		method:     method,
		query:      query,
		callerIP:   callerIP,
		callerUser: callerUser,
		result:     result,
		verifiedAt: time.Now().UTC(),
	}, nil
}

func ReconstructLogEntry(
	id uint,
	publicID, method, query, callerIP string,
	callerUser *uint,
	result Result,
	verifiedAt time.Time,
) *LogEntry {
	return &LogEntry{
		id:         id,
		publicID:   publicID,
		method:     method,
		query:      query,
		callerIP:   callerIP,
		callerUser: callerUser,
		result:     result,
		verifiedAt: verifiedAt,
	}
}

func (e *LogEntry) ID() uint              { return e.id }
func (e *LogEntry) PublicID() string      { return e.publicID }
func (e *LogEntry) Method() string        { return e.method }
func (e *LogEntry) Query() string         { return e.query }
func (e *LogEntry) CallerIP() string      { return e.callerIP }
func (e *LogEntry) CallerUser() *uint     { return e.callerUser }
func (e *LogEntry) Result() Result        { return e.result }
func (e *LogEntry) VerifiedAt() time.Time { return e.verifiedAt }

func (e *LogEntry) SetID(id uint) {
	e.id = id
}
