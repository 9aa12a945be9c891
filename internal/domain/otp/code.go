package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// CodeTTL is how long a code stays valid after creation.
	CodeTTL = 10 * time.Minute
	// MaxCodesPerHour caps issuance per email address, independent of the
	// general rate limiter.
	MaxCodesPerHour = 3
)

// Code is a short-lived numeric secret bound to (email, event). Consuming a
// code is one-way; expired codes are never valid even when unconsumed.
type Code struct {
	id          uint
	code        string
	email       string
	eventDateID uint
	originIP    string
	consumed    bool
	createdAt   time.Time
	expiresAt   time.Time
}

func NewCode(email string, eventDateID uint, originIP string) (*Code, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if eventDateID == 0 {
		return nil, fmt.Errorf("event date ID is required")
	}

	value, err := randomSixDigits()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Code{
		code:        value,
		email:       email,
		eventDateID: eventDateID,
		originIP:    originIP,
		createdAt:   now,
		expiresAt:   now.Add(CodeTTL),
	}, nil
}

func ReconstructCode(
	id uint,
	code string,
	email string,
	eventDateID uint,
	originIP string,
	consumed bool,
	createdAt, expiresAt time.Time,
) *Code {
	return &Code{
		id:          id,
		code:        code,
		email:       email,
		eventDateID: eventDateID,
		originIP:    originIP,
		consumed:    consumed,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
	}
}

func (c *Code) ID() uint             { return c.id }
func (c *Code) Value() string        { return c.code }
func (c *Code) Email() string        { return c.email }
func (c *Code) EventDateID() uint    { return c.eventDateID }
func (c *Code) OriginIP() string     { return c.originIP }
func (c *Code) Consumed() bool       { return c.consumed }
func (c *Code) CreatedAt() time.Time { return c.createdAt }
func (c *Code) ExpiresAt() time.Time { return c.expiresAt }

func (c *Code) SetID(id uint) {
	c.id = id
}

func (c *Code) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// Consume marks the code used. A consumed code never verifies again.
func (c *Code) Consume(now time.Time) error {
	if c.consumed {
		return fmt.Errorf("code already consumed")
	}
	if c.IsExpired(now) {
		return fmt.Errorf("code expired")
	}
	c.consumed = true
	return nil
}

// randomSixDigits draws a uniform 6-digit code from crypto/rand.
func randomSixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
