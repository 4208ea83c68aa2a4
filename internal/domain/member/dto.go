package member

import (
	"strings"
	"time"

	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

type RegisterMemberRequest struct {
	FullName       string  `json:"full_name"`
	MemberID       string  `json:"member_id"`
	Gender         string  `json:"gender"`
	JoinDate       string  `json:"join_date"` // YYYY-MM-DD
	Group          string  `json:"group"`
	PhoneNumber    string  `json:"phone_number"`
	Hometown       string  `json:"hometown"`
	CurrentAddress string  `json:"current_address"`
	LicensePlate   *string `json:"license_plate,omitempty"`
}

func (r *RegisterMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}

	if !validator.IsValidMemberID(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id must be 3 digits and must not start with 0",
		})
	}

	if !validator.IsInSlice(r.Gender, Genders) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: " + strings.Join(Genders, ", "),
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
	}

	if !validator.IsInSlice(r.Group, Groups) {
		errs = append(errs, validator.ValidationError{Field: "group", Message: "group is not a known group"})
	}

	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number is required"})
	}

	if validator.IsEmpty(r.Hometown) {
		errs = append(errs, validator.ValidationError{Field: "hometown", Message: "hometown is required"})
	}

	if validator.IsEmpty(r.CurrentAddress) {
		errs = append(errs, validator.ValidationError{Field: "current_address", Message: "current_address is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberFilter struct {
	Search string `json:"search,omitempty"`
	Group  string `json:"group,omitempty"`
}

type MemberResponse struct {
	FullName       string  `json:"full_name"`
	MemberID       string  `json:"member_id"`
	Gender         string  `json:"gender"`
	JoinDate       string  `json:"join_date"`
	Group          string  `json:"group"`
	PhoneNumber    string  `json:"phone_number"`
	Hometown       string  `json:"hometown"`
	CurrentAddress string  `json:"current_address"`
	LicensePlate   *string `json:"license_plate,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

func ToResponse(m Member) MemberResponse {
	return MemberResponse{
		FullName:       m.FullName,
		MemberID:       m.MemberID,
		Gender:         m.Gender,
		JoinDate:       m.JoinDate.Format(time.DateOnly),
		Group:          m.Group,
		PhoneNumber:    m.PhoneNumber,
		Hometown:       m.Hometown,
		CurrentAddress: m.CurrentAddress,
		LicensePlate:   m.LicensePlate,
		Email:          m.Email,
		PhotoURL:       m.PhotoURL,
	}
}
