package user

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Assignable permissions beyond the role itself.
const (
	PermViewCustomerHistory = "customers:view_history"
)

type User struct {
	ID          int
	Email       string
	Password    string
	Role        Role
	Permissions []string
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
