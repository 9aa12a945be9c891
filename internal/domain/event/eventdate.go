package event

import (
	"fmt"
	"time"
)

// EventDate is a dated occurrence of an institution event (a convocation,
// seminar, workshop) whose participants can be certified.
type EventDate struct {
	id            uint
	institutionID uint
	name          string
	date          time.Time
	theme         string
	active        bool
	createdAt     time.Time
	createdBy     uint
}

func NewEventDate(institutionID uint, name string, date time.Time, theme string, createdBy uint) (*EventDate, error) {
	if institutionID == 0 {
		return nil, fmt.Errorf("institution ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("event date is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &EventDate{
		institutionID: institutionID,
		name:          name,
		date:          date.UTC(),
		theme:         theme,
		active:        true,
		createdAt:     time.Now().UTC(),
		createdBy:     createdBy,
	}, nil
}

func ReconstructEventDate(
	id uint,
	institutionID uint,
	name string,
	date time.Time,
	theme string,
	active bool,
	createdAt time.Time,
	createdBy uint,
) *EventDate {
	return &EventDate{
		id:            id,
		institutionID: institutionID,
		name:          name,
		date:          date,
		theme:         theme,
		active:        active,
		createdAt:     createdAt,
		createdBy:     createdBy,
	}
}

func (e *EventDate) ID() uint             { return e.id }
func (e *EventDate) InstitutionID() uint  { return e.institutionID }
func (e *EventDate) Name() string         { return e.name }
func (e *EventDate) Date() time.Time      { return e.date }
func (e *EventDate) Theme() string        { return e.theme }
func (e *EventDate) Active() bool         { return e.active }
func (e *EventDate) CreatedAt() time.Time { return e.createdAt }
func (e *EventDate) CreatedBy() uint      { return e.createdBy }

func (e *EventDate) SetID(id uint) {
	e.id = id
}

func (e *EventDate) Deactivate() {
	e.active = false
}

func (e *EventDate) Activate() {
	e.active = true
}
