package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func queryInt(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, fmt.Errorf("잘못된 %s 값입니다", name)
	}
	return value, nil
}
