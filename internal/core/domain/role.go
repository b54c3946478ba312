package domain

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// roleRanks is the single source of truth for the privilege order.
// Adding a role means adding exactly one entry here.
var roleRanks = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

// Rank returns the numeric privilege of the role. ok is false for any
// value outside the closed set; such callers must always be denied.
func (r Role) Rank() (rank int, ok bool) {
	rank, ok = roleRanks[r]
	return rank, ok
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether r is ranked at or above min. An unrecognized
// role on either side never satisfies the check.
func (r Role) AtLeast(min Role) bool {
	rr, ok := r.Rank()
	if !ok {
		return false
	}
	mr, ok := min.Rank()
	if !ok {
		return false
	}
	return rr >= mr
}
