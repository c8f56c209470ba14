package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/services"
)

// ActorRoleKey is the Gin context key holding the acting role.
const ActorRoleKey = "actorRole"

// ActorRole returns a Gin middleware that reads the acting role from the
// X-Actor-Role header and stores it on the context. There are no user
// accounts; the role is a declared capability checked by the approval
// policy. Requests without a header act as requester.
func ActorRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := services.Role(c.GetHeader("X-Actor-Role"))
		switch role {
		case services.RoleRequester, services.RoleApprover:
		case "":
			role = services.RoleRequester
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": gin.H{"code": "INVALID_ROLE", "message": "X-Actor-Role must be requester or approver"}})
			return
		}
		c.Set(ActorRoleKey, role)
		c.Next()
	}
}
