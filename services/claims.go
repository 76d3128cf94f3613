package services

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type Claims struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	SchoolID string `json:"school_id"`
	jwt.StandardClaims
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
