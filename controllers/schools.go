package controllers

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/forms"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// Services
var schoolService = services.NewSchoolService()

type SchoolsController struct{}

// Query
func (school *SchoolsController) GetSchools(c *gin.Context) {
	search := c.Query("search")

	schools, errRes := schoolService.SearchSchools(search)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["schools"] = schools
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
func (school *SchoolsController) SaveSchool(c *gin.Context) {
	var form *forms.SaveSchoolForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	saved, errRes := schoolService.SaveSchool(form.ID, form.Name)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}

	response := make(map[string]interface{})
	response["school"] = saved
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
