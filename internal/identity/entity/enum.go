package entity

type UserRole int16

const (
	// UserRoleUnknown is mean role is not known / not set.
	UserRoleUnknown UserRole = 0

	// UserRoleUser mean a regular reader who can comment.
	UserRoleUser UserRole = 1

	// UserRoleAdmin mean the site author who can manage posts and comments.
	UserRoleAdmin UserRole = 2
)

func (r UserRole) String() string {
	switch r {
	case UserRoleUser:
		return "user"
	case UserRoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func (r UserRole) IsUnknown() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return false
	default:
		return true
	}
}

func (r UserRole) Ensure() UserRole {
	switch r {
	case UserRoleUser:
		return UserRoleUser
	case UserRoleAdmin:
		return UserRoleAdmin
	default:
		return UserRoleUnknown
	}
}

func UserRoleFromString(str string) UserRole {
	switch str {
	case "user":
		return UserRoleUser
	case "admin":
		return UserRoleAdmin
	default:
		return UserRoleUnknown
	}
}
