package usecases

import (
	"context"
	"testing"

	"certhub/internal/domain/setting"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingUseCase_Execute_CreatesMissingSetting(t *testing.T) {
	var upserted *setting.SystemSetting
	settingRepo := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, s *setting.SystemSetting) error {
			upserted = s
			return nil
		},
	}
	uc := NewUpdateSettingUseCase(settingRepo, &mockLogger{})

	err := uc.Execute(context.Background(), UpdateSettingCommand{
		Category:  setting.CategoryCertificate,
		Key:       setting.KeyCompanyName,
		Value:     "Acme Trainings",
		UpdatedBy: 9,
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "Acme Trainings", upserted.GetStringValue())
	assert.Equal(t, uint(9), upserted.UpdatedBy())
}

func TestUpdateSettingUseCase_Execute_UpdatesExistingSetting(t *testing.T) {
	existing, err := setting.NewSystemSetting(setting.CategoryEmail, setting.KeySupportEmail, setting.ValueTypeString, "")
	require.NoError(t, err)

	var upserted *setting.SystemSetting
	settingRepo := &mockSettingRepository{
		GetByKeyFunc: func(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
			return existing, nil
		},
		UpsertFunc: func(ctx context.Context, s *setting.SystemSetting) error {
			upserted = s
			return nil
		},
	}
	uc := NewUpdateSettingUseCase(settingRepo, &mockLogger{})

	err = uc.Execute(context.Background(), UpdateSettingCommand{
		Category:  setting.CategoryEmail,
		Key:       setting.KeySupportEmail,
		Value:     "help@example.com",
		UpdatedBy: 9,
	})

	require.NoError(t, err)
	assert.Same(t, existing, upserted)
	assert.Equal(t, "help@example.com", existing.GetStringValue())
}

func TestUpdateSettingUseCase_Execute_IntSetting(t *testing.T) {
	var upserted *setting.SystemSetting
	settingRepo := &mockSettingRepository{
		UpsertFunc: func(ctx context.Context, s *setting.SystemSetting) error {
			upserted = s
			return nil
		},
	}
	uc := NewUpdateSettingUseCase(settingRepo, &mockLogger{})

	err := uc.Execute(context.Background(), UpdateSettingCommand{
		Category:  setting.CategoryCertificate,
		Key:       setting.KeyMinDaysAfterPurchase,
		Value:     "5",
		UpdatedBy: 9,
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	val, err := upserted.GetIntValue()
	require.NoError(t, err)
	assert.Equal(t, 5, val)
}

func TestUpdateSettingUseCase_Execute_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateSettingCommand
	}{
		{
			name: "unknown key",
			cmd: UpdateSettingCommand{
				Category:  setting.CategoryCertificate,
				Key:       "telegram_bot_token",
				Value:     "x",
				UpdatedBy: 9,
			},
		},
		{
			name: "unknown category",
			cmd: UpdateSettingCommand{
				Category:  "payments",
				Key:       setting.KeyCompanyName,
				Value:     "x",
				UpdatedBy: 9,
			},
		},
		{
			name: "non-integer for int key",
			cmd: UpdateSettingCommand{
				Category:  setting.CategoryCertificate,
				Key:       setting.KeyMinDaysAfterPurchase,
				Value:     "soon",
				UpdatedBy: 9,
			},
		},
		{
			name: "negative integer",
			cmd: UpdateSettingCommand{
				Category:  setting.CategoryCertificate,
				Key:       setting.KeyMinDaysAfterPurchase,
				Value:     "-1",
				UpdatedBy: 9,
			},
		},
		{
			name: "missing updater",
			cmd: UpdateSettingCommand{
				Category: setting.CategoryCertificate,
				Key:      setting.KeyCompanyName,
				Value:    "x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settingRepo := &mockSettingRepository{
				UpsertFunc: func(ctx context.Context, s *setting.SystemSetting) error {
					t.Fatal("upsert must not be reached")
					return nil
				},
			}
			uc := NewUpdateSettingUseCase(settingRepo, &mockLogger{})

			err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		})
	}
}
