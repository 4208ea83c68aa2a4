package member

import (
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

var Genders = []string{GenderMale, GenderFemale, GenderOther}

// Groups are the organisation's sub-groups a member belongs to.
var Groups = []string{
	"TÂY VÂN CÁC",
	"HỌA TAM ĐƯỜNG",
	"HOA VÂN CÁC",
	"THIÊN MINH ĐƯỜNG",
	"HỒ LY SƠN TRANG",
	"TINH VÂN CÁC",
}

// Member is a roster profile. One profile per signed-in account.
type Member struct {
	OwnerID        string
	FullName       string
	MemberID       string
	Gender         string
	JoinDate       time.Time
	Group          string
	PhoneNumber    string
	Hometown       string
	CurrentAddress string
	LicensePlate   *string
	Email          *string
	PhotoURL       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
