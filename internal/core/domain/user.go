package domain

import "time"

// Seeded role identifiers. Roles are reference data created out-of-band;
// bootstrap refuses to start without them.
const (
	RoleUserID  int64 = 1
	RoleAdminID int64 = 2
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User models an account managed by the system. PasswordHash always holds
// the hashed form of the credential, never plaintext.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Age          int       `json:"age"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is shared lookup data; users reference roles, they do not own them.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
