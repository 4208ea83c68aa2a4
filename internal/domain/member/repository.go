package member

import "context"

type MemberRepository interface {
	// Upsert creates the owner's profile or replaces it.
	Upsert(ctx context.Context, m Member) (Member, error)

	// List returns every profile ordered by member id.
	List(ctx context.Context) ([]Member, error)
}
