package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{" Mod ", RoleMod, true},
		{"chef", RoleChef, true},
		{"diner", RoleDiner, true},
		{"", RoleDiner, false},
		{"superuser", RoleDiner, false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHasPermission(t *testing.T) {
	actions := []string{
		"manage_content", "manage_users", "view_reports",
		"manage_own_chef_profile", "manage_own_menus", "manage_own_bookings",
		"view_chefs", "create_booking", "view_own_bookings",
	}
	for _, action := range actions {
		if !HasPermission(RoleAdmin, action) {
			t.Errorf("admin denied %q", action)
		}
	}

	cases := []struct {
		role   Role
		action string
		want   bool
	}{
		{RoleMod, "manage_content", true},
		{RoleMod, "manage_users", true},
		{RoleMod, "view_reports", true},
		{RoleMod, "manage_own_menus", false},
		{RoleChef, "manage_own_chef_profile", true},
		{RoleChef, "manage_own_menus", true},
		{RoleChef, "manage_own_bookings", true},
		{RoleChef, "manage_users", false},
		{RoleDiner, "view_chefs", true},
		{RoleDiner, "create_booking", true},
		{RoleDiner, "view_own_bookings", true},
		{RoleDiner, "manage_content", false},
		{RoleDiner, "manage_own_menus", false},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.action); got != tc.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}
