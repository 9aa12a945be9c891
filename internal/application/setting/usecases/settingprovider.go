package usecases

import (
	"context"
	"fmt"

	"certhub/internal/domain/setting"
	sharedConfig "certhub/internal/shared/config"
	"certhub/internal/shared/logger"
)

// SettingProviderConfig holds the environment fallbacks used when the
// database carries no override.
type SettingProviderConfig struct {
	EmailConfig sharedConfig.EmailConfig
	BaseURL     string
	CompanyName string
}

// SettingProvider implements setting.SettingProvider with database-first,
// env-fallback resolution. Database values take precedence over environment
// variables, which take precedence over the shipped defaults.
type SettingProvider struct {
	settingRepo setting.Repository
	emailConfig sharedConfig.EmailConfig
	baseURL     string
	companyName string
	logger      logger.Interface
}

func NewSettingProvider(settingRepo setting.Repository, cfg SettingProviderConfig, logger logger.Interface) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		emailConfig: cfg.EmailConfig,
		baseURL:     cfg.BaseURL,
		companyName: cfg.CompanyName,
		logger:      logger,
	}
}

// getString retrieves a string setting value, falling back to defaultValue
// when the database has no usable entry.
func (p *SettingProvider) getString(ctx context.Context, category, key, defaultValue string) string {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	return s.GetStringValue()
}

// getInt retrieves an int setting value, falling back to defaultValue.
func (p *SettingProvider) getInt(ctx context.Context, category, key string, defaultValue int) int {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil || s == nil || !s.HasValue() {
		return defaultValue
	}
	val, err := s.GetIntValue()
	if err != nil {
		p.logger.Warnw("setting value is not an integer, using default",
			"category", category,
			"key", key,
			"value", s.GetStringValue())
		return defaultValue
	}
	return val
}

// GetPublicIDPrefix returns the prefix for newly issued public IDs.
func (p *SettingProvider) GetPublicIDPrefix(ctx context.Context) string {
	return p.getString(ctx, setting.CategoryCertificate, setting.KeyPublicIDPrefix, setting.DefaultPublicIDPrefix)
}

// GetCompanyName returns the organization name used in certificates and mail.
func (p *SettingProvider) GetCompanyName(ctx context.Context) string {
	fallback := p.companyName
	if fallback == "" {
		fallback = p.emailConfig.FromName
	}
	return p.getString(ctx, setting.CategoryCertificate, setting.KeyCompanyName, fallback)
}

// GetSupportEmail returns the reply-to address for outgoing mail.
func (p *SettingProvider) GetSupportEmail(ctx context.Context) string {
	return p.getString(ctx, setting.CategoryEmail, setting.KeySupportEmail, p.emailConfig.AdminAddress)
}

// GetFromEmail returns the sender address for outgoing mail.
func (p *SettingProvider) GetFromEmail(ctx context.Context) string {
	return p.getString(ctx, setting.CategoryEmail, setting.KeyFromEmail, p.emailConfig.FromAddress)
}

// GetMinDaysAfterPurchase returns the purchase seasoning requirement in days.
func (p *SettingProvider) GetMinDaysAfterPurchase(ctx context.Context) int {
	return p.getInt(ctx, setting.CategoryCertificate, setting.KeyMinDaysAfterPurchase, setting.DefaultMinDaysAfterPurchase)
}

// GetVerifyPageURL returns the public verification page URL for issuance mail.
func (p *SettingProvider) GetVerifyPageURL(ctx context.Context) string {
	fallback := ""
	if p.baseURL != "" {
		fallback = fmt.Sprintf("%s/verify", p.baseURL)
	}
	return p.getString(ctx, setting.CategoryCertificate, setting.KeyVerifyPageURL, fallback)
}
