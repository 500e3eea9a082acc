package user

type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleMember:    1,
	RoleLibrarian: 2,
	RoleAdmin:     3,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(min Role) bool {
	have, ok1 := roleRank[r]
	want, ok2 := roleRank[min]
	return ok1 && ok2 && have >= want
}
