package domain

import "time"

// Role is the closed set of access levels recognized by the registry.
type Role string

const (
	RoleMaster Role = "master"
	RoleKip    Role = "kip"
	RoleUser   Role = "user"
)

// DefaultRole is assigned to accounts registered without an explicit role.
const DefaultRole = RoleKip

// Valid reports whether r is one of the recognized roles. Anything else is
// rejected at the boundaries; a stored row with an unknown role resolves but
// passes no gate.
func (r Role) Valid() bool {
	switch r {
	case RoleMaster, RoleKip, RoleUser:
		return true
	}
	return false
}

// AtLeast reports whether r carries the privileges of min.
// Ordering: user < kip < master.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.rank() >= min.rank()
}

func (r Role) rank() int {
	switch r {
	case RoleMaster:
		return 3
	case RoleKip:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// User models a registered account.
//
// Password holds either a bcrypt hash or, for accounts predating the hashing
// migration, the raw password. ParseCredential distinguishes the two.
type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	Active      bool      `json:"active"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionView is the request-scoped projection of a User handed to handlers
// and templates after the session resolves. It never carries the stored
// credential or the raw token.
type SessionView struct {
	ID       string
	FullName string
	Role     Role
	Active   bool
}

// View projects u into its session representation.
func (u *User) View() SessionView {
	return SessionView{
		ID:       u.ID,
		FullName: u.FullName,
		Role:     u.Role,
		Active:   u.Active,
	}
}
