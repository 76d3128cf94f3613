package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var settingsData = settings.GetSettings()

func JWTMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		tokenString := strings.TrimPrefix(authorization, "Bearer ")

		claims := &services.Claims{}
		token, err := jwt.ParseWithClaims(
			tokenString,
			claims,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(settingsData.JWT_SECRET_KEY), nil
			},
		)
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}
