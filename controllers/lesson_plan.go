package controllers

import (
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/forms"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// Services
var lessonPlanService = services.NewLessonPlanService()

type LessonPlanController struct{}

// Query
func (plan *LessonPlanController) GetTemplates(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
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
	grade, err := queryInt(c, "grade")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	subject := c.Query("subject")
	if subject == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "과목이 없습니다",
		})
		return
	}
	segment := models.ExamSegment(c.Query("segment"))

	templates, errRes := lessonPlanService.GetTemplates(
		idSchool,
		year,
		semester,
		claims.ID,
		grade,
		subject,
		segment,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["templates"] = templates
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Reports whether the teacher's class sections of the segment can share one
// plan, and how many sessions it may cover.
func (plan *LessonPlanController) AnalyzeCommonPlan(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
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
	grade, err := queryInt(c, "grade")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	subject := c.Query("subject")
	if subject == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "과목이 없습니다",
		})
		return
	}
	segment := models.ExamSegment(c.Query("segment"))

	analysis, errRes := lessonPlanService.AnalyzeCommonPlan(
		idSchool,
		year,
		semester,
		claims.ID,
		grade,
		subject,
		segment,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["analysis"] = analysis
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
func (plan *LessonPlanController) SaveTemplates(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
	var form *forms.SaveTemplatesForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	templates := make([]models.LessonPlanTemplate, len(form.Templates))
	for i, template := range form.Templates {
		templates[i] = models.LessonPlanTemplate{
			SessionIndex: template.SessionIndex,
			Content:      template.Content,
		}
	}
	errRes := lessonPlanService.SaveTemplates(
		idSchool,
		form.Year,
		form.Semester,
		claims.ID,
		form.Grade,
		form.Subject,
		models.ExamSegment(form.Segment),
		templates,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}
