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
var calendarService = services.NewCalendarService()

type CalendarController struct{}

// Nats
func init() {
	getAcademicCalendar()
}

func getAcademicCalendar() {
	calendarService.GetAcademicCalendar()
}

// Query
func (cal *CalendarController) GetCalendar(c *gin.Context) {
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

	calendar, errRes := calendarService.GetCalendar(idSchool, year, semester)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["calendar"] = calendar
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (cal *CalendarController) GetHolidayEvents(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["events"] = calendarService.HolidayEvents(year)
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
func (cal *CalendarController) SaveCalendar(c *gin.Context) {
	idSchool := c.Param("idSchool")
	var form *forms.SaveCalendarForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	events := make([]models.CalendarEvent, len(form.Events))
	for i, event := range form.Events {
		events[i] = models.CalendarEvent{
			ID:     event.ID,
			Date:   event.Date,
			Type:   event.Type,
			Name:   event.Name,
			Grades: event.Grades,
		}
	}
	calendar, errRes := calendarService.SaveCalendar(
		idSchool,
		form.Year,
		form.Semester,
		events,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}

	response := make(map[string]interface{})
	response["calendar"] = calendar
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
