package model

import "math"

// Role indicates who the requester is in the labor exchange.
type Role string

// Role constants.
const (
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
	RoleUnknown   Role = "unknown"
)

// Direction is the intent derived one-to-one from the role.
type Direction string

// Direction constants.
const (
	DirectionResourceRequest Direction = "resource_request"
	DirectionCapabilityOffer Direction = "capability_offer"
	DirectionUnknown         Direction = "unknown"
)

// RoleSignal holds the two independent role scores and the derived role.
type RoleSignal struct {
	SeekerScore  float64
	OffererScore float64
	Role         Role
}

// DeriveRole resolves the role from the two scores. The role is unknown when
// both scores are zero or when the scores differ by less than the margin.
func DeriveRole(seekerScore, offererScore, margin float64) Role {
	if seekerScore == 0 && offererScore == 0 {
		return RoleUnknown
	}
	if math.Abs(seekerScore-offererScore) < margin {
		return RoleUnknown
	}
	if seekerScore > offererScore {
		return RoleRecruiter
	}
	return RoleCandidate
}

// Direction maps the role to its directional intent.
func (r Role) Direction() Direction {
	switch r {
	case RoleRecruiter:
		return DirectionResourceRequest
	case RoleCandidate:
		return DirectionCapabilityOffer
	default:
		return DirectionUnknown
	}
}
