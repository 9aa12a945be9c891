package event

import (
	"fmt"
	"time"
)

// Participant is a roster entry for an event date. The roster gates
// eligibility for event certificates; entries are removed (best effort)
// once a matching certificate is issued.
type Participant struct {
	id          uint
	eventDateID uint
	fullName    string
	email       string
	addedAt     time.Time
	addedBy     uint
}

func NewParticipant(eventDateID uint, fullName, email string, addedBy uint) (*Participant, error) {
	if eventDateID == 0 {
		return nil, fmt.Errorf("event date ID is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("participant full name is required")
	}
	if addedBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Participant{
		eventDateID: eventDateID,
		fullName:    fullName,
		email:       email,
		addedAt:     time.Now().UTC(),
		addedBy:     addedBy,
	}, nil
}

func ReconstructParticipant(id, eventDateID uint, fullName, email string, addedAt time.Time, addedBy uint) *Participant {
	return &Participant{
		id:          id,
		eventDateID: eventDateID,
		fullName:    fullName,
		email:       email,
		addedAt:     addedAt,
		addedBy:     addedBy,
	}
}

func (p *Participant) ID() uint           { return p.id }
func (p *Participant) EventDateID() uint  { return p.eventDateID }
func (p *Participant) FullName() string   { return p.fullName }
func (p *Participant) Email() string      { return p.email }
func (p *Participant) AddedAt() time.Time { return p.addedAt }
func (p *Participant) AddedBy() uint      { return p.addedBy }

func (p *Participant) SetID(id uint) {
	p.id = id
}
