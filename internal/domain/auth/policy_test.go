package auth

import "testing"

func TestAdminHasFullAccessEverywhere(t *testing.T) {
	for _, entity := range allEntities {
		for _, action := range []Action{ActionView, ActionCreate, ActionEdit, ActionDelete} {
			if !Can(RoleAdmin, entity, action) {
				t.Fatalf("admin should be allowed %s on %s", action, entity)
			}
		}
	}
}

func TestHRCannotManageUsersOrDeleteOrgRoots(t *testing.T) {
	if Can(RoleHR, EntityUsers, ActionView) {
		t.Fatal("HR must not see user accounts")
	}
	for _, entity := range []string{EntityCompanyProfiles, EntityBranches, EntityDepartments} {
		if Can(RoleHR, entity, ActionDelete) {
			t.Fatalf("HR must not delete %s", entity)
		}
		if !Can(RoleHR, entity, ActionEdit) {
			t.Fatalf("HR should maintain %s", entity)
		}
	}
	if !Can(RoleHR, EntityEmployees, ActionDelete) {
		t.Fatal("HR should manage employees fully")
	}
}

func TestEmployeeIsReadMostly(t *testing.T) {
	if !Can(RoleEmployee, EntityLeaveRequests, ActionCreate) {
		t.Fatal("employee should file leave requests")
	}
	if !Can(RoleEmployee, EntitySelfServiceRequests, ActionCreate) {
		t.Fatal("employee should file self-service requests")
	}
	if !Can(RoleEmployee, EntitySurveyResponses, ActionCreate) {
		t.Fatal("employee should answer surveys")
	}
	for _, entity := range allEntities {
		if Can(RoleEmployee, entity, ActionDelete) {
			t.Fatalf("employee must not delete %s", entity)
		}
	}
	if Can(RoleEmployee, EntityUsers, ActionView) {
		t.Fatal("employee must not see user accounts")
	}
	if Can(RoleEmployee, EntitySalaries, ActionCreate) {
		t.Fatal("employee must not create salary records")
	}
}

func TestUnknownRoleDeniedAndMatrixIsACopy(t *testing.T) {
	if Can("Contractor", EntityEmployees, ActionView) {
		t.Fatal("unknown role must be denied")
	}
	if !ValidRole(RoleEmployee) || ValidRole("Contractor") {
		t.Fatal("role validity mismatch")
	}

	matrix := Matrix()
	matrix[RoleEmployee][EntityUsers] = []Action{ActionDelete}
	if Can(RoleEmployee, EntityUsers, ActionDelete) {
		t.Fatal("mutating the returned matrix must not affect policy")
	}
}
