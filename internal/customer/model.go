package customer

import "time"

type Membership string

const (
	MembershipBronze Membership = "BRONZE"
	MembershipSilver Membership = "SILVER"
	MembershipGold   Membership = "GOLD"
)

func (m Membership) Valid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

type Customer struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birth_date"`
	Membership Membership `json:"membership"`
}

type UpdateParams struct {
	Phone      string
	BirthDate  *time.Time
	Membership Membership
}
