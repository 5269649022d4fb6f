package domain

import (
	"time"
)

// Premium grant durations.
const (
	PremiumRegisterGrant = 30 * 24 * time.Hour
	PremiumInviteGrant   = 7 * 24 * time.Hour
)

// Invite is a referral code issued by one user. A code is claimable
// exactly once; AcceptedAt and InvitedUserID are set atomically at
// acceptance.
type Invite struct {
	ID            int64      `db:"id" json:"id"`
	InviterID     int64      `db:"inviter_id" json:"inviter_id"`
	InvitedUserID *int64     `db:"invited_user_id" json:"invited_user_id,omitempty"`
	InviteCode    string     `db:"invite_code" json:"invite_code"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	AcceptedAt    *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
}

// Claimed reports whether the invite has already been used.
func (i *Invite) Claimed() bool {
	return i.InvitedUserID != nil || i.AcceptedAt != nil
}
