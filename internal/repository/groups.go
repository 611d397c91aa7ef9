package repository

import (
	"context"
	"fmt"

	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// GroupsRepository reads group membership and member+profile joins.
type GroupsRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewGroupsRepository constructs a GroupsRepository from the app container.
func NewGroupsRepository(s *server.Server) *GroupsRepository {
	return &GroupsRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// FirstMembership resolves a user's group membership.
//
// Users are expected to belong to one group; when several memberships
// exist the earliest row is used and the tie-break is otherwise
// arbitrary. pgx.ErrNoRows (wrapped) signals no membership at all.
func (r *GroupsRepository) FirstMembership(ctx context.Context, userID string) (model.GroupMembership, error) {
	const query = `
		SELECT group_id, user_id, created_at
		FROM group_members
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1`

	var membership model.GroupMembership
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&membership.GroupID,
		&membership.UserID,
		&membership.CreatedAt,
	)
	if err != nil {
		return model.GroupMembership{}, fmt.Errorf("table:group_members: resolving membership: %w", err)
	}

	return membership, nil
}

// ListMembers fetches all members of a group with their joined profile
// data, ordered by when each member joined.
//
// The LEFT JOIN yields zero, one, or several profile rows per member;
// rows are folded into the explicit ProfileRef union (none/single/list)
// so downstream code never re-inspects shapes. Member order follows the
// fetch and is preserved through the fold.
func (r *GroupsRepository) ListMembers(ctx context.Context, groupID string) ([]model.MemberProfile, error) {
	const query = `
		SELECT gm.user_id, p.display_name, p.email
		FROM group_members gm
		LEFT JOIN profiles p ON p.user_id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.created_at, gm.user_id`

	rows, err := r.pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("table:group_members: listing members: %w", err)
	}
	defer rows.Close()

	// Fold join rows per member, keeping first-seen order.
	var order []string
	profiles := make(map[string][]model.Profile)

	for rows.Next() {
		var (
			userID      string
			displayName *string
			email       *string
		)
		if err := rows.Scan(&userID, &displayName, &email); err != nil {
			return nil, fmt.Errorf("table:group_members: scanning member row: %w", err)
		}

		if _, seen := profiles[userID]; !seen {
			order = append(order, userID)
			profiles[userID] = nil
		}

		// NULL display_name means the LEFT JOIN found no profile row.
		if displayName != nil {
			profile := model.Profile{UserID: userID, DisplayName: *displayName}
			if email != nil {
				profile.Email = *email
			}
			profiles[userID] = append(profiles[userID], profile)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table:group_members: reading member rows: %w", err)
	}

	members := make([]model.MemberProfile, 0, len(order))
	for _, userID := range order {
		var ref model.ProfileRef
		switch ps := profiles[userID]; len(ps) {
		case 0:
			ref = model.NoProfile()
		case 1:
			ref = model.SingleProfile(ps[0])
		default:
			ref = model.ProfileList(ps)
		}

		members = append(members, model.MemberProfile{
			UserID:  userID,
			Profile: ref,
		})
	}

	return members, nil
}
