package domain

import (
	"slices"

	"github.com/disgoorg/snowflake/v2"
)

// AdminPolicy decides who may shut the bot down. An empty admin list allows
// everyone.
type AdminPolicy struct {
	admins []snowflake.ID
}

// NewAdminPolicy creates an AdminPolicy from an ordered list of admin IDs.
func NewAdminPolicy(admins []snowflake.ID) *AdminPolicy {
	return &AdminPolicy{admins: slices.Clone(admins)}
}

// IsAuthorized reports whether userID may request a shutdown.
func (p *AdminPolicy) IsAuthorized(userID snowflake.ID) bool {
	if p.Unrestricted() {
		return true
	}
	return slices.Contains(p.admins, userID)
}

// Unrestricted reports whether the policy allows every user.
func (p *AdminPolicy) Unrestricted() bool {
	return len(p.admins) == 0
}

// Admins returns a copy of the admin IDs.
func (p *AdminPolicy) Admins() []snowflake.ID {
	return slices.Clone(p.admins)
}
