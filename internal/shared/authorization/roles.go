package authorization

type ActorRole string

const (
	RoleAdmin    ActorRole = "admin"
	RoleOperator ActorRole = "operator"
)

func (r ActorRole) String() string {
	return string(r)
}

func (r ActorRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r ActorRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator
}

func ParseActorRole(s string) ActorRole {
	role := ActorRole(s)
	if role.IsValid() {
		return role
	}
	return RoleOperator
}
