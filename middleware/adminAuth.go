package middleware

import (
	"net/http"
	"strings"

	adminRepo "sctclinic/database/repository/admin"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the dashboard API. The token must be a valid JWT
// whose hash still exists in the session store (so logout actually revokes),
// and the admin it names must still exist. Everything short-circuits with a
// 401 envelope before any domain logic runs.
func AdminAuthMiddleware(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, Message: "Authentication required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, Message: "Invalid or expired session",
			})
			return
		}

		adminID, err := utils.GetAdminSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, Message: "Invalid or expired session",
			})
			return
		}

		adm, err := repo.GetByID(c.Request.Context(), adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false, Message: "Invalid or expired session",
			})
			return
		}

		c.Set("adminID", adm.ID)
		c.Set("adminName", adm.Name)
		c.Set("adminToken", tokenString)
		c.Next()
	}
}
