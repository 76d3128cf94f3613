package middlewares

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// AuthorizedSchool rejects requests touching a school other than the one in
// the token. Directors pass through.
func AuthorizedSchool() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := services.NewClaimsFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		if claims.UserType == models.DIRECTOR {
			ctx.Next()
			return
		}
		idSchool := ctx.Param("idSchool")
		if idSchool != "" && idSchool != claims.SchoolID {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Next()
	}
}
