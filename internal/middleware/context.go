package middleware

import "context"

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "email"
	userRoleKey  contextKey = "role"
	userPermsKey contextKey = "permissions"
)

// SetUserContext sets the caller's identity into context (called by AuthMiddleware).
func SetUserContext(ctx context.Context, id uint, email, role string, perms []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	ctx = context.WithValue(ctx, userEmailKey, email)
	ctx = context.WithValue(ctx, userRoleKey, role)
	ctx = context.WithValue(ctx, userPermsKey, perms)
	return ctx
}

// UserIDFromContext retrieves the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

func UserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}

func UserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return UserRoleFromContext(ctx) == "ADMIN"
}

func HasPermission(ctx context.Context, perm string) bool {
	perms, _ := ctx.Value(userPermsKey).([]string)
	for _, p := range perms {
		if p == perm {
			return true
		}
	}
	return false
}
