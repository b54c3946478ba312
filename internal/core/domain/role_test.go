package domain

import "testing"

func TestRole_Rank_TotalAndInjective(t *testing.T) {
	seen := make(map[int]Role)
	for _, r := range []Role{RoleUser, RoleAdmin} {
		rank, ok := r.Rank()
		if !ok {
			t.Fatalf("role %s has no rank", r)
		}
		if prev, dup := seen[rank]; dup {
			t.Fatalf("rank %d shared by %s and %s", rank, prev, r)
		}
		seen[rank] = r
	}
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		caller Role
		min    Role
		want   bool
	}{
		{RoleUser, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleAdmin, true},
	}
	for _, tt := range tests {
		if got := tt.caller.AtLeast(tt.min); got != tt.want {
			t.Fatalf("%s.AtLeast(%s) = %v, want %v", tt.caller, tt.min, got, tt.want)
		}
	}
}

func TestRole_AtLeast_UnknownRoleAlwaysDenied(t *testing.T) {
	for _, r := range []Role{"", "GUEST", "admin"} {
		if r.AtLeast(RoleUser) {
			t.Fatalf("unrecognized role %q must never pass", r)
		}
	}
	if RoleAdmin.AtLeast("SUPERADMIN") {
		t.Fatalf("unknown minimum must never be satisfied")
	}
}
