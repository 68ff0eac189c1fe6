// Package access supplies the permission, feature-flag, and acting-user
// inputs the navigation resolver consumes.
package access

import (
	"net/http"
	"strings"

	"github.com/connectra/navigator/internal/nav"
)

// Checker answers permission checks against the user's granted set. It
// satisfies nav.PermissionChecker.
type Checker struct{}

// Allows reports whether the user holds the named permission.
func (Checker) Allows(u nav.User, permission string) (bool, error) {
	return u.HasPermission(permission), nil
}

// Flags is an immutable process-wide feature flag snapshot, loaded once at
// startup from configuration. It satisfies nav.FlagSource.
type Flags map[string]bool

// Enabled reports whether the named flag is on. Unknown flags are off.
func (f Flags) Enabled(flag string) bool { return f[flag] }

// UserFromHeaders builds the acting user from the identity headers the
// frontend proxy sets: X-User, X-Role, and a comma-separated X-Permissions.
// A request without X-User yields the anonymous user, which holds no
// permissions and no role.
func UserFromHeaders(r *http.Request) nav.User {
	u := nav.User{
		Name: r.Header.Get("X-User"),
		Role: r.Header.Get("X-Role"),
	}
	if raw := r.Header.Get("X-Permissions"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				u.Permissions = append(u.Permissions, p)
			}
		}
	}
	return u
}
