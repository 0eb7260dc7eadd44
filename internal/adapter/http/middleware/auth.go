package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workdeck/internal/auth"
	"workdeck/internal/core/domain"
	"workdeck/pkg/apierrors"
)

const principalKey = "principal"

// AuthMiddleware verifies the bearer token and stores the principal for
// handlers. Requests without a valid token never reach them.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		principal, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) domain.Principal {
	if value, exists := c.Get(principalKey); exists {
		if principal, ok := value.(domain.Principal); ok {
			return principal
		}
	}
	return domain.Principal{}
}
