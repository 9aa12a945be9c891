package mappers

import (
	"certhub/internal/domain/otp"
	"certhub/internal/infrastructure/persistence/models"
)

// OTPCodeMapper handles the conversion between OTP code domain entities and persistence models.
type OTPCodeMapper interface {
	ToModel(c *otp.Code) *models.OTPCodeModel
	ToDomain(model *models.OTPCodeModel) *otp.Code
}

type OTPCodeMapperImpl struct{}

func NewOTPCodeMapper() OTPCodeMapper {
	return &OTPCodeMapperImpl{}
}

func (m *OTPCodeMapperImpl) ToModel(c *otp.Code) *models.OTPCodeModel {
	return &models.OTPCodeModel{
		ID:          c.ID(),
		Code:        c.Value(),
		Email:       c.Email(),
		EventDateID: c.EventDateID(),
		OriginIP:    c.OriginIP(),
		Consumed:    c.Consumed(),
		ExpiresAt:   c.ExpiresAt().UnixMilli(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *OTPCodeMapperImpl) ToDomain(model *models.OTPCodeModel) *otp.Code {
	return otp.ReconstructCode(
		model.ID,
		model.Code,
		model.Email,
		model.EventDateID,
		model.OriginIP,
		model.Consumed,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.ExpiresAt),
	)
}
