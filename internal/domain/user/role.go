package user

// Role is the capability classification carried in the access token. It is
// resolved once per request by the role middleware and compared only against
// these constants, never against raw strings from storage.
type Role string

const (
	// RoleAdmin - payroll/HR administrators: second-level OT approval,
	// payroll generation and finalization, statutory configuration.
	RoleAdmin Role = "admin"
	// RoleManager - line managers: first-level OT approval.
	RoleManager Role = "manager"
	// RoleEmployee - regular employees: own claims and payslips.
	RoleEmployee Role = "employee"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// CanApproveLevel reports whether the role may decide an approval at the
// given level (1 = line manager, 2 = HR).
func (r Role) CanApproveLevel(level int) bool {
	switch level {
	case 1:
		return r == RoleManager || r == RoleAdmin
	case 2:
		return r == RoleAdmin
	}
	return false
}
