package services

import (
	"encoding/json"

	"github.com/KR-EduLab/Intranet_BLessonPlan/aws_s3"
	"github.com/KR-EduLab/Intranet_BLessonPlan/repositories"
	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
	"github.com/KR-EduLab/Intranet_BLessonPlan/stack"
	"github.com/google/uuid"
)

// Repositories
var calendarRepository = repositories.NewCalendarRepository()
var scheduleRepository = repositories.NewScheduleRepository()
var classSessionRepository = repositories.NewClassSessionRepository()
var lessonPlanRepository = repositories.NewLessonPlanRepository()
var studentTimetableRepository = repositories.NewStudentTimetableRepository()
var schoolRepository = repositories.NewSchoolRepository()

// Packages
var nats = stack.NewNats()
var aws = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()

func nestjsNatsRequest(data interface{}) (map[string]interface{}, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	request := make(map[string]interface{})
	request["id"] = id.String()
	if data != nil {
		request["data"] = data
	}
	return request, nil
}

func formatRequestToNestjsNats(data interface{}) ([]byte, error) {
	request, err := nestjsNatsRequest(data)
	if err != nil {
		return nil, err
	}
	jsonMarshal, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	return jsonMarshal, nil
}

func intPtr(n int) *int {
	return &n
}
