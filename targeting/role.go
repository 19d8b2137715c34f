package targeting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned by ParseRole for names outside the four roles.
var ErrUnknownRole = errors.New("targeting: unknown role")

// Role is one of the four fixed pursuer behaviors.
type Role uint8

const (
	RoleChaser Role = iota + 1
	RoleAmbusher
	RoleFlanker
	RoleOpportunist
)

var roleNames = map[Role]string{
	RoleChaser:      "chaser",
	RoleAmbusher:    "ambusher",
	RoleFlanker:     "flanker",
	RoleOpportunist: "opportunist",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// ParseRole maps a prefab or level name to a Role. Matching is
// case-insensitive.
func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for r, s := range roleNames {
		if s == n {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}
