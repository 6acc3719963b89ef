package entity

import "testing"

func TestRoleCan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleStudent, OpCreateBooking, false},
		{RoleTeacher, OpCreateBooking, true},
		{RoleAdmin, OpCreateBooking, true},

		{RoleStudent, OpSubmitCancellation, false},
		{RoleTeacher, OpSubmitCancellation, true},
		{RoleAdmin, OpSubmitCancellation, false},

		{RoleStudent, OpResolveCancellation, false},
		{RoleTeacher, OpResolveCancellation, false},
		{RoleAdmin, OpResolveCancellation, true},

		{RoleStudent, OpViewDashboard, true},
		{RoleTeacher, OpViewDashboard, true},
		{RoleAdmin, OpViewDashboard, true},
	}

	for _, tc := range cases {
		if got := tc.role.Can(tc.op); got != tc.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}

func TestRoleCanUnknown(t *testing.T) {
	t.Parallel()

	if Role("guest").Can(OpViewDashboard) {
		t.Error("unknown role must not pass any gate")
	}
	if RoleAdmin.Can(Operation("drop_tables")) {
		t.Error("unknown operation must not pass any gate")
	}
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleStudent, RoleTeacher, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Error("root should not be a valid role")
	}
}
