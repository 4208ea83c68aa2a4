package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

func TestRegisterMemberRequest_Validate(t *testing.T) {
	req := RegisterMemberRequest{
		FullName:       "Vương Ngữ Yên",
		MemberID:       "321",
		Gender:         GenderFemale,
		JoinDate:       "2023-09-01",
		Group:          "THIÊN MINH ĐƯỜNG",
		PhoneNumber:    "0901234567",
		Hometown:       "Tô Châu",
		CurrentAddress: "Mạn Đà Sơn Trang",
	}
	assert.NoError(t, req.Validate())

	bad := RegisterMemberRequest{MemberID: "021", Gender: "nam", JoinDate: "01/09/2023", Group: "unknown"}
	err := bad.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, f := range []string{"full_name", "member_id", "gender", "join_date", "group", "phone_number", "hometown", "current_address"} {
		assert.Contains(t, fields, f)
	}
}
