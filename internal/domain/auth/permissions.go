package auth

const (
	RoleHRAdmin  = "hr-admin"
	RoleEmployee = "employee"
	RoleIntern   = "intern"
	RoleVPOps    = "vp-ops"
	RoleITHead   = "it-head"
)

const (
	PermLeaveRead     = "leave.read"
	PermLeaveWrite    = "leave.write"
	PermLeaveApprove  = "leave.approve"
	PermPayrollRead   = "payroll.read"
	PermPayrollAdjust = "payroll.adjust"
	PermPayrollStatus = "payroll.status"
	PermActivityRead  = "activity.read"
)

var RolePermissions = map[string][]string{
	RoleHRAdmin: {
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollRead,
		PermPayrollAdjust,
		PermPayrollStatus,
		PermActivityRead,
	},
	RoleEmployee: {
		PermLeaveRead,
		PermLeaveWrite,
		PermPayrollRead,
	},
	RoleIntern: {
		PermLeaveRead,
		PermLeaveWrite,
		PermPayrollRead,
	},
	RoleVPOps: {
		PermLeaveRead,
		PermLeaveApprove,
		PermPayrollRead,
	},
	RoleITHead: {
		PermLeaveRead,
		PermLeaveApprove,
		PermPayrollRead,
	},
}

func RoleHasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}
