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
var sessionsService = services.NewSessionsService()
var processorService = services.NewProcessorService()
var searchService = services.NewSearchService()

type SessionsController struct{}

// Feed
func (session *SessionsController) ProcessSessions(c *gin.Context) {
	idSchool := c.Param("idSchool")
	var form *forms.ProcessSessionsForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	count, errRes := processorService.ProcessAllClassSessions(idSchool, form.Year, form.Semester)
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
func (session *SessionsController) GetSessions(c *gin.Context) {
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
	classNumber, err := queryInt(c, "class_number")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Directors may read another teacher's plan.
	teacherID := claims.ID
	if query := c.Query("teacher_id"); query != "" && claims.UserType == models.DIRECTOR {
		teacherID = query
	}

	sessions, errRes := sessionsService.GetSessions(
		idSchool,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["sessions"] = sessions
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (session *SessionsController) SaveSessions(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
	var form *forms.SaveSessionsForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	sessions := make([]models.ClassSession, len(form.Sessions))
	for i, row := range form.Sessions {
		sessions[i] = models.ClassSession{
			TeacherID:         claims.ID,
			Grade:             form.Grade,
			ClassNumber:       form.ClassNumber,
			Subject:           form.Subject,
			SessionNumber:     row.SessionNumber,
			Date:              row.Date,
			DayOfWeek:         row.DayOfWeek,
			Period:            row.Period,
			ClassInfo:         row.ClassInfo,
			AcademicEvent:     row.AcademicEvent,
			Content:           row.Content,
			IsBeforeFirstTest: row.IsBeforeFirstTest,
			Segment:           models.ExamSegment(row.Segment),
		}
	}
	errRes := sessionsService.SaveSessions(
		idSchool,
		form.Year,
		form.Semester,
		claims.ID,
		form.Grade,
		form.ClassNumber,
		sessions,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	go searchService.IndexSessionContents(
		idSchool,
		form.Year,
		form.Semester,
		claims.ID,
		form.Grade,
		form.ClassNumber,
		sessions,
	)

	c.JSON(200, &res.Response{
		Success: true,
	})
}

func (session *SessionsController) ApplyTemplate(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
	var form *forms.ApplyTemplateForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	errRes := processorService.ApplyLessonTemplateToClassSessions(
		idSchool,
		form.Year,
		form.Semester,
		claims.ID,
		form.Grade,
		form.Subject,
		models.ExamSegment(form.Segment),
		form.ExtraContent,
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

func (session *SessionsController) SearchContents(c *gin.Context) {
	idSchool := c.Param("idSchool")
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return
	}
	search := c.Query("search")
	if search == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "검색어가 없습니다",
		})
		return
	}

	result, errRes := searchService.Search(idSchool, claims.ID, search)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["result"] = result
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
