package domain

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleMaster, RoleMaster, true},
		{RoleMaster, RoleKip, true},
		{RoleMaster, RoleUser, true},
		{RoleKip, RoleMaster, false},
		{RoleKip, RoleKip, true},
		{RoleKip, RoleUser, true},
		{RoleUser, RoleMaster, false},
		{RoleUser, RoleKip, false},
		{RoleUser, RoleUser, true},
		// Unknown stored roles satisfy nothing.
		{Role("visitor"), RoleUser, false},
		{Role(""), RoleUser, false},
	}

	for _, tc := range cases {
		if got := tc.role.AtLeast(tc.min); got != tc.want {
			t.Errorf("%q.AtLeast(%q) = %v, want %v", tc.role, tc.min, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleMaster, RoleKip, RoleUser} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []Role{Role(""), Role("admin"), Role("Master")} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestUserView(t *testing.T) {
	u := &User{ID: "7", FullName: "Ivan Petrov", Password: "$2b$10$hash", Role: RoleKip, Active: true}
	v := u.View()
	if v.ID != "7" || v.FullName != "Ivan Petrov" || v.Role != RoleKip || !v.Active {
		t.Fatalf("unexpected view: %+v", v)
	}
}
