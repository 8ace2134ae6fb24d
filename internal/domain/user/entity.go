package user

type Role string

const (
	RoleOwner    Role = "owner"    // Business owner - full access
	RoleManager  Role = "manager"  // Can change bonus amounts and save performance
	RoleOperator Role = "operator" // Pastes reports and marks days
)

// Operator is the authenticated panel user as carried in the access token.
type Operator struct {
	ID   string
	Role Role
}

// IsManager checks if operator is manager or owner
func (o Operator) IsManager() bool {
	return o.Role == RoleManager || o.Role == RoleOwner
}
