package usecases

import (
	"context"

	"certhub/internal/domain/setting"
	"certhub/internal/shared/logger"
)

type mockSettingRepository struct {
	GetByKeyFunc      func(ctx context.Context, category, key string) (*setting.SystemSetting, error)
	GetByCategoryFunc func(ctx context.Context, category string) ([]*setting.SystemSetting, error)
	GetAllFunc        func(ctx context.Context) ([]*setting.SystemSetting, error)
	UpsertFunc        func(ctx context.Context, s *setting.SystemSetting) error
	DeleteFunc        func(ctx context.Context, category, key string) error
}

func (m *mockSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, category, key)
	}
	return nil, setting.ErrSettingNotFound
}

func (m *mockSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	if m.GetByCategoryFunc != nil {
		return m.GetByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockSettingRepository) GetAll(ctx context.Context) ([]*setting.SystemSetting, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) Delete(ctx context.Context, category, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, category, key)
	}
	return nil
}

type mockLogger struct {
	WarnwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}
