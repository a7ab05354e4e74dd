package auth

// Capabilities is the fixed set of named permissions derived from a role set.
// Each field gates one UI surface or action. The tiers are evaluated
// independently per feature, not as a strict hierarchy: the supervisory tier
// (authorized persons) includes Manager, while the management tier does not.
type Capabilities struct {
	// CanManageAdmins unlocks the administrator list (Admin or SuperAdmin).
	CanManageAdmins bool `json:"canManageAdmins"`
	// CanCreateAdmin unlocks the account-creation form (SuperAdmin only).
	CanCreateAdmin bool `json:"canCreateAdmin"`
	// CanToggleAdminStatus unlocks the active/inactive switch (SuperAdmin only).
	CanToggleAdminStatus bool `json:"canToggleAdminStatus"`
	// CanDeleteAdmin unlocks administrator deletion (SuperAdmin only).
	CanDeleteAdmin bool `json:"canDeleteAdmin"`
	// CanSeeAuthorizedPersons unlocks the authorized-persons area
	// (Admin, SuperAdmin, or Manager).
	CanSeeAuthorizedPersons bool `json:"canSeeAuthorizedPersons"`
}

// ResolveCapabilities maps a role set to its capability set. It is pure and
// total: unknown role names are ignored, and an empty role set yields all
// capabilities false. Callers re-evaluate on every read; nothing is cached,
// so a session replacement (login/logout) can never observe stale values.
func ResolveCapabilities(roles []Role) Capabilities {
	var admin, super, manager bool
	for _, r := range roles {
		switch r {
		case RoleAdmin:
			admin = true
		case RoleSuperAdmin:
			super = true
		case RoleManager:
			manager = true
		}
	}

	management := admin || super
	return Capabilities{
		CanManageAdmins:         management,
		CanCreateAdmin:          super,
		CanToggleAdminStatus:    super,
		CanDeleteAdmin:          super,
		CanSeeAuthorizedPersons: management || manager,
	}
}
