package public

import (
	requestUC "certhub/internal/application/request/usecases"
)

type SubmitRequestRequest struct {
	SubjectKind    string `json:"subject_kind" binding:"required" validate:"required,oneof=course event"`
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name" validate:"max=200"`
	InstitutionID  uint   `json:"institution_id"`
	EventDateID    uint   `json:"event_date_id"`
	RequesterID    uint   `json:"requester_id"`
	FirstName      string `json:"first_name" binding:"required" validate:"required,max=100"`
	LastName       string `json:"last_name" binding:"required" validate:"required,max=100"`
	Email          string `json:"email" binding:"required" validate:"required,email"`
	Phone          string `json:"phone" validate:"max=30"`
	ProjectLink    string `json:"project_link" validate:"omitempty,url,max=500"`
	InstructorName string `json:"instructor_name" validate:"max=200"`
	VendorID       uint   `json:"vendor_id"`
}

func (r *SubmitRequestRequest) ToCommand() requestUC.SubmitRequestCommand {
	return requestUC.SubmitRequestCommand{
		RequesterID:    r.RequesterID,
		SubjectKind:    r.SubjectKind,
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		InstitutionID:  r.InstitutionID,
		EventDateID:    r.EventDateID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		ProjectLink:    r.ProjectLink,
		InstructorName: r.InstructorName,
		VendorID:       r.VendorID,
	}
}

type SendOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	EventDateID uint   `json:"event_date_id" binding:"required"`
}

type VerifyOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6,numeric"`
	EventDateID uint   `json:"event_date_id" binding:"required"`
}
