package member

import "errors"

var (
	ErrMemberIDExists = errors.New("member id is already registered to another account")
)
