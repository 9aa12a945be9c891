package setting

import (
	"context"
)

// Defaults used when neither the database nor the environment provides a value.
const (
	DefaultPublicIDPrefix       = "OFSHDG"
	DefaultMinDaysAfterPurchase = 3
)

// SettingProvider defines the interface for providing hot-reloadable
// configuration. Infrastructure services depend on this interface instead of
// the concrete application-layer provider, following the dependency
// inversion principle. Database values take precedence over environment
// variables, which take precedence over the shipped defaults.
type SettingProvider interface {
	// GetPublicIDPrefix returns the prefix used for newly issued public IDs.
	GetPublicIDPrefix(ctx context.Context) string

	// GetCompanyName returns the organization name used in rendered
	// certificates and outgoing mail.
	GetCompanyName(ctx context.Context) string

	// GetSupportEmail returns the reply-to address for outgoing mail.
	GetSupportEmail(ctx context.Context) string

	// GetFromEmail returns the sender address for outgoing mail.
	GetFromEmail(ctx context.Context) string

	// GetMinDaysAfterPurchase returns the minimum number of days that must
	// pass between a qualifying purchase and an eligible request.
	GetMinDaysAfterPurchase(ctx context.Context) int

	// GetVerifyPageURL returns the public verification page URL included in
	// issuance mail.
	GetVerifyPageURL(ctx context.Context) string
}
