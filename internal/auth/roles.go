package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/domain"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// RequireRoles ensures the caller's current role is in the allowed set.
// The role comes from the user row loaded by the bearer middleware this
// request, never from token claims.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("user not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewUnauthorized("insufficient role")
		}
		return c.Next()
	}
}

// RequireAdmin allows admins only.
func RequireAdmin() fiber.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// RequireAdminOrMod allows admins and moderators.
func RequireAdminOrMod() fiber.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleMod)
}

// RequireChef allows chefs only.
func RequireChef() fiber.Handler {
	return RequireRoles(domain.RoleChef)
}

// RequireChefOrAdmin allows chefs and admins.
func RequireChefOrAdmin() fiber.Handler {
	return RequireRoles(domain.RoleChef, domain.RoleAdmin)
}

// RequireAnyRole ensures the caller is authenticated.
func RequireAnyRole() fiber.Handler {
	return RequireRoles()
}
