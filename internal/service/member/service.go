package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/domain/user"
	"github.com/caibang/attendance-backend-go/internal/pkg/jwt"
	"github.com/caibang/attendance-backend-go/internal/pkg/validator"
)

type MemberServiceImpl struct {
	member.MemberRepository
	user.UserRepository
}

func NewMemberService(memberRepo member.MemberRepository, userRepo user.UserRepository) member.MemberService {
	return &MemberServiceImpl{
		MemberRepository: memberRepo,
		UserRepository:   userRepo,
	}
}

// Register implements member.MemberService.
func (m *MemberServiceImpl) Register(ctx context.Context, req member.RegisterMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return member.MemberResponse{}, err
	}

	// E-mail and photo come from the account, not from the form.
	account, err := m.UserRepository.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return member.MemberResponse{}, err
		}
		return member.MemberResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	profile := member.Member{
		OwnerID:        principal.UserID,
		FullName:       req.FullName,
		MemberID:       req.MemberID,
		Gender:         req.Gender,
		JoinDate:       joinDate,
		Group:          req.Group,
		PhoneNumber:    req.PhoneNumber,
		Hometown:       req.Hometown,
		CurrentAddress: req.CurrentAddress,
		LicensePlate:   req.LicensePlate,
		Email:          account.Email,
		PhotoURL:       account.PhotoURL,
	}

	saved, err := m.MemberRepository.Upsert(ctx, profile)
	if err != nil {
		if errors.Is(err, member.ErrMemberIDExists) {
			return member.MemberResponse{}, err
		}
		return member.MemberResponse{}, fmt.Errorf("failed to save member profile: %w", err)
	}

	return member.ToResponse(saved), nil
}

// List implements member.MemberService.
func (m *MemberServiceImpl) List(ctx context.Context, filter member.MemberFilter) ([]member.MemberResponse, error) {
	members, err := m.MemberRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	filtered := member.Filter(members, filter.Search, filter.Group)

	responses := make([]member.MemberResponse, 0, len(filtered))
	for _, mem := range filtered {
		responses = append(responses, member.ToResponse(mem))
	}
	return responses, nil
}
