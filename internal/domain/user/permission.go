package user

type Permission string

const (
	// Workers
	PermissionWorkerView Permission = "worker.view"

	// Shift configuration
	PermissionScheduleView   Permission = "schedule.view"
	PermissionScheduleManage Permission = "schedule.manage"

	// Attendance processing
	PermissionReportProcess Permission = "report.process"
	PermissionDayFlagManage Permission = "day_flag.manage"

	// Payroll
	PermissionAdjustmentManage Permission = "adjustment.manage"
	PermissionBonusManage      Permission = "bonus.manage"

	// Performance
	PermissionPerformanceView Permission = "performance.view"
	PermissionPerformanceSave Permission = "performance.save"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionWorkerView,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionReportProcess,
		PermissionDayFlagManage,
		PermissionAdjustmentManage,
		PermissionBonusManage,
		PermissionPerformanceView,
		PermissionPerformanceSave,
	},
	RoleManager: {
		PermissionWorkerView,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionReportProcess,
		PermissionDayFlagManage,
		PermissionAdjustmentManage,
		PermissionBonusManage,
		PermissionPerformanceView,
		PermissionPerformanceSave,
	},
	RoleOperator: {
		PermissionWorkerView,
		PermissionScheduleView,
		PermissionReportProcess,
		PermissionDayFlagManage,
		PermissionAdjustmentManage,
		PermissionPerformanceView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
