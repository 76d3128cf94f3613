package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/KR-EduLab/Intranet_BLessonPlan/forms"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// Services
var timetableService = services.NewTimetableService()

type TimetableController struct{}

// Query
func (timetable *TimetableController) GetSchedules(c *gin.Context) {
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

	slots, errRes := timetableService.GetSchedules(idSchool, year, semester)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["slots"] = slots
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Timetable of the requesting teacher only.
func (timetable *TimetableController) GetMySchedules(c *gin.Context) {
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

	slots, errRes := timetableService.GetTeacherSchedules(idSchool, year, semester, claims.ID)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	response := make(map[string]interface{})
	response["slots"] = slots
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
func (timetable *TimetableController) SaveSchedules(c *gin.Context) {
	idSchool := c.Param("idSchool")
	var form *forms.SaveSchedulesForm
	if err := c.BindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	slots := make([]models.ClassScheduleSlot, len(form.Slots))
	for i, slot := range form.Slots {
		slots[i] = models.ClassScheduleSlot{
			TeacherID:   slot.TeacherID,
			TeacherName: slot.TeacherName,
			Subject:     slot.Subject,
			Grade:       slot.Grade,
			ClassNumber: slot.ClassNumber,
			DayOfWeek:   *slot.DayOfWeek,
			Period:      slot.Period,
		}
	}
	errRes := timetableService.SaveSchedules(idSchool, form.Year, form.Semester, slots)
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

// NEIS spreadsheet upload, multipart form with file/year/semester fields.
func (timetable *TimetableController) UploadSchedules(c *gin.Context) {
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

	count, errRes := timetableService.UploadSchedules(idSchool, year, semester, file)
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

func (timetable *TimetableController) DownloadSchedulesFile(c *gin.Context) {
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

	data, errRes := timetableService.DownloadScheduleArchive(idSchool, year, semester)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="교사시간표_%d-%d.xlsx"`, year, semester),
	)
	c.Data(
		http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data,
	)
}

func (timetable *TimetableController) DeleteSchedules(c *gin.Context) {
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

	if errRes := timetableService.DeleteSchedules(idSchool, year, semester); errRes != nil {
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
