package postgresql

import (
	"context"
	"fmt"

	"github.com/caibang/attendance-backend-go/internal/domain/member"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

const membersMemberIDKey = "members_member_id_key"

type memberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}

// Upsert implements member.MemberRepository.
func (m *memberRepository) Upsert(ctx context.Context, profile member.Member) (member.Member, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		INSERT INTO members (
			owner_id, full_name, member_id, gender, join_date, group_name,
			phone_number, hometown, current_address, license_plate, email, photo_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			member_id = EXCLUDED.member_id,
			gender = EXCLUDED.gender,
			join_date = EXCLUDED.join_date,
			group_name = EXCLUDED.group_name,
			phone_number = EXCLUDED.phone_number,
			hometown = EXCLUDED.hometown,
			current_address = EXCLUDED.current_address,
			license_plate = EXCLUDED.license_plate,
			email = EXCLUDED.email,
			photo_url = EXCLUDED.photo_url,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.OwnerID,
		profile.FullName,
		profile.MemberID,
		profile.Gender,
		profile.JoinDate,
		profile.Group,
		profile.PhoneNumber,
		profile.Hometown,
		profile.CurrentAddress,
		profile.LicensePlate,
		profile.Email,
		profile.PhotoURL,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, membersMemberIDKey) {
			return member.Member{}, member.ErrMemberIDExists
		}
		return member.Member{}, fmt.Errorf("failed to upsert member: %w", err)
	}

	return profile, nil
}

// List implements member.MemberRepository.
func (m *memberRepository) List(ctx context.Context) ([]member.Member, error) {
	q := GetQuerier(ctx, m.db)

	query := `
		SELECT owner_id, full_name, member_id, gender, join_date, group_name,
			   phone_number, hometown, current_address, license_plate, email, photo_url,
			   created_at, updated_at
		FROM members
		ORDER BY member_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		var mem member.Member
		if err := rows.Scan(
			&mem.OwnerID, &mem.FullName, &mem.MemberID, &mem.Gender, &mem.JoinDate, &mem.Group,
			&mem.PhoneNumber, &mem.Hometown, &mem.CurrentAddress, &mem.LicensePlate, &mem.Email, &mem.PhotoURL,
			&mem.CreatedAt, &mem.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, mem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
