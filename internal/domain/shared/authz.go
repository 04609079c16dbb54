package shared

import "github.com/google/uuid"

// Role is the caller's resolved role, supplied by the identity layer
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAccountant Role = "accountant"
	RoleMember     Role = "member"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsValid checks whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAccountant, RoleMember:
		return true
	}
	return false
}

// MutationPolicy holds the role sets allowed to update and delete records of
// one entity type. Creators may always mutate their own records regardless of
// role.
type MutationPolicy struct {
	Update []Role
	Delete []Role
}

// CanMutate reports whether the actor may mutate the record: permitted when
// the actor's role is in the allowed set or the actor created the record.
// Evaluated at update and delete time only, never on create or read.
func CanMutate(actorID uuid.UUID, actorRole Role, createdBy uuid.UUID, allowed []Role) bool {
	if actorID != uuid.Nil && actorID == createdBy {
		return true
	}
	for _, role := range allowed {
		if actorRole == role {
			return true
		}
	}
	return false
}
