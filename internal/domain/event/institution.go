package event

import (
	"fmt"
	"time"
)

// Institution is an organization whose events can be certified.
type Institution struct {
	id        uint
	name      string
	logoURL   string
	active    bool
	createdAt time.Time
	createdBy uint
}

func NewInstitution(name, logoURL string, createdBy uint) (*Institution, error) {
	if name == "" {
		return nil, fmt.Errorf("institution name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("institution name exceeds maximum length of 200 characters")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Institution{
		name:      name,
		logoURL:   logoURL,
		active:    true,
		createdAt: time.Now().UTC(),
		createdBy: createdBy,
	}, nil
}

func ReconstructInstitution(id uint, name, logoURL string, active bool, createdAt time.Time, createdBy uint) *Institution {
	return &Institution{
		id:        id,
		name:      name,
		logoURL:   logoURL,
		active:    active,
		createdAt: createdAt,
		createdBy: createdBy,
	}
}

func (i *Institution) ID() uint             { return i.id }
func (i *Institution) Name() string         { return i.name }
func (i *Institution) LogoURL() string      { return i.logoURL }
func (i *Institution) Active() bool         { return i.active }
func (i *Institution) CreatedAt() time.Time { return i.createdAt }
func (i *Institution) CreatedBy() uint      { return i.createdBy }

func (i *Institution) SetID(id uint) {
	i.id = id
}

func (i *Institution) Deactivate() {
	i.active = false
}

func (i *Institution) Activate() {
	i.active = true
}

func (i *Institution) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("institution name is required")
	}
	i.name = name
	return nil
}
