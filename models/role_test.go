package models

import "testing"

func TestRoleRankOrder(t *testing.T) {
	if !RoleSuperAdmin.AtLeast(RoleAdmin) || !RoleAdmin.AtLeast(RoleUser) {
		t.Fatal("privilege order must be user < admin < superadmin")
	}
	if RoleUser.AtLeast(RoleAdmin) || RoleAdmin.AtLeast(RoleSuperAdmin) {
		t.Fatal("lower roles must not satisfy higher requirements")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if !r.Valid() {
			t.Fatalf("role %q should be valid", r)
		}
	}
	if Role("owner").Valid() || Role("").Valid() {
		t.Fatal("unknown roles must be invalid")
	}
}
