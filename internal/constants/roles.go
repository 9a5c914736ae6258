package constants

import (
	"database/sql/driver"
	"fmt"
)

// OpsRole mirrors the Postgres ENUM 'ops_role'
type OpsRole string

const (
	RolePilot      OpsRole = "pilot"
	RolePlanner    OpsRole = "planner"
	RoleController OpsRole = "controller"
	RoleAdmin      OpsRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r OpsRole) String() string { return string(r) }

// rank orders the role tiers; higher means more privileged
var roleRank = map[OpsRole]int{
	RolePilot:      0,
	RolePlanner:    1,
	RoleController: 2,
	RoleAdmin:      3,
}

// AtLeast reports whether r carries at least the privileges of other.
// Unknown roles rank below pilot.
func (r OpsRole) AtLeast(other OpsRole) bool {
	return roleRank[r] >= roleRank[other]
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *OpsRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = OpsRole(v)
	case []byte:
		*r = OpsRole(v)
	default:
		return fmt.Errorf("OpsRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r OpsRole) Value() (driver.Value, error) { return string(r), nil }
