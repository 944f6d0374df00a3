package auth

// Roles are the exact strings persisted on users and carried in tokens.
const (
	RoleAdmin    = "admin"
	RoleHR       = "HR"
	RoleEmployee = "Employee"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Entity keys match the API resource names one to one.
const (
	EntityCompanyProfiles        = "company-profiles"
	EntityBranches               = "branches"
	EntityDepartments            = "departments"
	EntityJobs                   = "jobs"
	EntityEmployees              = "employees"
	EntityUsers                  = "users"
	EntityAttendance             = "attendance"
	EntitySalaries               = "salaries"
	EntityBenefitTypes           = "benefit-types"
	EntityBenefits               = "benefits"
	EntityAssets                 = "assets"
	EntityDisciplinaryActions    = "disciplinary-actions"
	EntityDocuments              = "documents"
	EntityLeaveTypes             = "leave-types"
	EntityLeaveBalances          = "leave-balances"
	EntityLeaveRequests          = "leave-requests"
	EntityPermissionTypes        = "permission-types"
	EntityPermissions            = "permissions"
	EntityCVBank                 = "cv-bank"
	EntityJobApplications        = "job-applications"
	EntityCandidates             = "candidates"
	EntityInterviews             = "interviews"
	EntityHRNeedRequests         = "hr-need-requests"
	EntityRecruitmentPortals     = "recruitment-portals"
	EntityOnboardings            = "onboardings"
	EntityOffboardings           = "offboardings"
	EntityTrainings              = "trainings"
	EntityEmployeeTrainings      = "employee-trainings"
	EntityEvaluationCriteria     = "evaluation-criteria"
	EntityPerformanceEvaluations = "performance-evaluations"
	EntityProjects               = "projects"
	EntityProjectAssignments     = "project-assignments"
	EntitySelfServiceRequests    = "self-service-requests"
	EntitySurveys                = "surveys"
	EntitySurveyResponses        = "survey-responses"
)

var allEntities = []string{
	EntityCompanyProfiles,
	EntityBranches,
	EntityDepartments,
	EntityJobs,
	EntityEmployees,
	EntityUsers,
	EntityAttendance,
	EntitySalaries,
	EntityBenefitTypes,
	EntityBenefits,
	EntityAssets,
	EntityDisciplinaryActions,
	EntityDocuments,
	EntityLeaveTypes,
	EntityLeaveBalances,
	EntityLeaveRequests,
	EntityPermissionTypes,
	EntityPermissions,
	EntityCVBank,
	EntityJobApplications,
	EntityCandidates,
	EntityInterviews,
	EntityHRNeedRequests,
	EntityRecruitmentPortals,
	EntityOnboardings,
	EntityOffboardings,
	EntityTrainings,
	EntityEmployeeTrainings,
	EntityEvaluationCriteria,
	EntityPerformanceEvaluations,
	EntityProjects,
	EntityProjectAssignments,
	EntitySelfServiceRequests,
	EntitySurveys,
	EntitySurveyResponses,
}

var (
	view       = []Action{ActionView}
	viewCreate = []Action{ActionView, ActionCreate}
	readWrite  = []Action{ActionView, ActionCreate, ActionEdit}
	full       = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete}
)

// rolePolicy is the single source of truth for role gating. Both the route
// Authorize middleware and the /policy endpoint the dashboard reads are driven
// from this table; no page carries its own copy of the matrix.
var rolePolicy = map[string]map[string][]Action{
	RoleAdmin: adminPolicy(),
	RoleHR: {
		// Org structure roots: HR maintains them but only admin deletes.
		EntityCompanyProfiles: readWrite,
		EntityBranches:        readWrite,
		EntityDepartments:     readWrite,
		EntityJobs:            full,

		EntityEmployees:           full,
		EntityAttendance:          full,
		EntitySalaries:            full,
		EntityBenefitTypes:        full,
		EntityBenefits:            full,
		EntityAssets:              full,
		EntityDisciplinaryActions: full,
		EntityDocuments:           full,

		EntityLeaveTypes:      full,
		EntityLeaveBalances:   full,
		EntityLeaveRequests:   full,
		EntityPermissionTypes: full,
		EntityPermissions:     full,

		EntityCVBank:             full,
		EntityJobApplications:    full,
		EntityCandidates:         full,
		EntityInterviews:         full,
		EntityHRNeedRequests:     full,
		EntityRecruitmentPortals: full,

		EntityOnboardings:       full,
		EntityOffboardings:      full,
		EntityTrainings:         full,
		EntityEmployeeTrainings: full,

		EntityEvaluationCriteria:     full,
		EntityPerformanceEvaluations: full,
		EntityProjects:               full,
		EntityProjectAssignments:     full,

		EntitySelfServiceRequests: full,
		EntitySurveys:             full,
		EntitySurveyResponses:     full,
	},
	RoleEmployee: {
		EntityCompanyProfiles: view,
		EntityBranches:        view,
		EntityDepartments:     view,
		EntityJobs:            view,
		EntityEmployees:       view,

		EntityAttendance:    viewCreate,
		EntitySalaries:      view,
		EntityBenefitTypes:  view,
		EntityBenefits:      view,
		EntityAssets:        view,
		EntityDocuments:     viewCreate,
		EntityLeaveTypes:    view,
		EntityLeaveBalances: view,
		EntityLeaveRequests: readWrite,

		EntityPermissionTypes: view,
		EntityPermissions:     viewCreate,

		EntityTrainings:              view,
		EntityEmployeeTrainings:      view,
		EntityEvaluationCriteria:     view,
		EntityPerformanceEvaluations: view,
		EntityProjects:               view,
		EntityProjectAssignments:     view,

		EntitySelfServiceRequests: readWrite,
		EntitySurveys:             view,
		EntitySurveyResponses:     viewCreate,
	},
}

func adminPolicy() map[string][]Action {
	policy := make(map[string][]Action, len(allEntities))
	for _, entity := range allEntities {
		policy[entity] = full
	}
	return policy
}

func Can(role, entity string, action Action) bool {
	entityPolicy, ok := rolePolicy[role]
	if !ok {
		return false
	}
	for _, allowed := range entityPolicy[entity] {
		if allowed == action {
			return true
		}
	}
	return false
}

// Matrix returns a copy of the full policy table for the dashboard to render
// its action gating from.
func Matrix() map[string]map[string][]Action {
	out := make(map[string]map[string][]Action, len(rolePolicy))
	for role, entities := range rolePolicy {
		entitiesCopy := make(map[string][]Action, len(entities))
		for entity, actions := range entities {
			actionsCopy := make([]Action, len(actions))
			copy(actionsCopy, actions)
			entitiesCopy[entity] = actionsCopy
		}
		out[role] = entitiesCopy
	}
	return out
}

func Roles() []string {
	return []string{RoleAdmin, RoleHR, RoleEmployee}
}

func ValidRole(role string) bool {
	_, ok := rolePolicy[role]
	return ok
}
