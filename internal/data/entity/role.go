package entity

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// Operation is a gated action on the booking core.
type Operation string

const (
	OpCreateBooking       Operation = "create_booking"
	OpSubmitCancellation  Operation = "submit_cancellation"
	OpResolveCancellation Operation = "resolve_cancellation"
	OpViewDashboard       Operation = "view_dashboard"
)

// permissions is the fixed access table. Read-only dashboards are open to
// every role; students can never mutate bookings.
var permissions = map[Operation]map[Role]bool{
	OpCreateBooking:       {RoleTeacher: true, RoleAdmin: true},
	OpSubmitCancellation:  {RoleTeacher: true},
	OpResolveCancellation: {RoleAdmin: true},
	OpViewDashboard:       {RoleStudent: true, RoleTeacher: true, RoleAdmin: true},
}

// Can reports whether the role may invoke the operation.
func (r Role) Can(op Operation) bool {
	return permissions[op][r]
}

// Caller is the verified identity attached to every core call.
type Caller struct {
	Username string
	Role     Role
}
