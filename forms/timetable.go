package forms

type ScheduleSlotForm struct {
	TeacherID   string `json:"teacher_id" binding:"required" validate:"required" example:"yeayeah03"`
	TeacherName string `json:"teacher_name" binding:"required" validate:"required" example:"고예진"`
	Subject     string `json:"subject" binding:"required" validate:"required" example:"지구과학Ⅰ"`
	Grade       int    `json:"grade" binding:"required,min=1,max=9" validate:"required" example:"2"`
	ClassNumber int    `json:"class_number" binding:"required,min=1" validate:"required" example:"6"`
	DayOfWeek   *int   `json:"day_of_week" binding:"required,min=0,max=6" validate:"required" example:"1"`
	Period      int    `json:"period" binding:"required,min=1,max=7" validate:"required" example:"3"`
}

type SaveSchedulesForm struct {
	Year     int                `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester int                `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
	Slots    []ScheduleSlotForm `json:"slots" binding:"dive" validate:"required"`
}
