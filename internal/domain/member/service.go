package member

import "context"

type MemberService interface {
	Register(ctx context.Context, req RegisterMemberRequest) (MemberResponse, error)
	List(ctx context.Context, filter MemberFilter) ([]MemberResponse, error)
}
