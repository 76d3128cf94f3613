package controllers

import (
	"net/http"
	"strconv"

	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// Services
var studentTimetableService = services.NewStudentTimetableService()

type StudentsController struct{}

// Feed
func (student *StudentsController) UploadStudentTimetables(c *gin.Context) {
	idSchool := c.Param("idSchool")
	file, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "파일이 없습니다",
		})
		return
	}
	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "잘못된 year 값입니다",
		})
		return
	}
	semester, err := strconv.Atoi(c.PostForm("semester"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "잘못된 semester 값입니다",
		})
		return
	}

	count, errRes := studentTimetableService.UploadStudentTimetables(idSchool, year, semester, file)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["count"] = count
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Query
func (student *StudentsController) GetStudentTimetable(c *gin.Context) {
	idSchool := c.Param("idSchool")
	year, err := queryInt(c, "year")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	semester, err := queryInt(c, "semester")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	studentCode := c.Param("studentCode")

	rows, errRes := studentTimetableService.GetStudentTimetable(idSchool, year, semester, studentCode)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["rows"] = rows
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
