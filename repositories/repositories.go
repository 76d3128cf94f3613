package repositories

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
)

// Models
var calendarModel = models.NewCalendarModel()
var scheduleModel = models.NewTeacherScheduleModel()
var classSessionModel = models.NewClassSessionModel()
var lessonPlanModel = models.NewLessonPlanTemplateModel()
var studentTimetableModel = models.NewStudentTimetableModel()
var schoolModel = models.NewSchoolModel()
