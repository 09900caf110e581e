package domain

type PlanStatus string

const (
	PlanPlanning   PlanStatus = "Planning"
	PlanInProgress PlanStatus = "In Progress"
	PlanCompleted  PlanStatus = "Completed"
	PlanBlocked    PlanStatus = "Blocked"
	PlanOnHold     PlanStatus = "On Hold"
)

type ActivityStatus string

const (
	ActivityNotStarted ActivityStatus = "Not Started"
	ActivityInProgress ActivityStatus = "In Progress"
	ActivityCompleted  ActivityStatus = "Completed"
	ActivityBlocked    ActivityStatus = "Blocked"
	ActivityOnHold     ActivityStatus = "On Hold"
)

// ValidActivityStatuses is the canonical set of accepted activity status strings.
var ValidActivityStatuses = map[string]bool{
	string(ActivityNotStarted): true,
	string(ActivityInProgress): true,
	string(ActivityCompleted):  true,
	string(ActivityBlocked):    true,
	string(ActivityOnHold):     true,
}

type UserRole string

const (
	RoleSolutionArchitect UserRole = "Solution Architect"
	RoleAccountExecutive  UserRole = "Account Executive"
	RoleFEManager         UserRole = "FE Manager"
	RoleFELeader          UserRole = "FE Leader"
)

// ValidUserRoles is the canonical set of accepted user role strings.
var ValidUserRoles = map[string]bool{
	string(RoleSolutionArchitect): true,
	string(RoleAccountExecutive):  true,
	string(RoleFEManager):         true,
	string(RoleFELeader):          true,
}
