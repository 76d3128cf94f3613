package forms

type ProcessSessionsForm struct {
	Year     int `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester int `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
}

type ClassSessionForm struct {
	SessionNumber     *int   `json:"session_number" validate:"optional" example:"12"`
	Date              string `json:"date" binding:"required" validate:"required" example:"2025-03-05"`
	DayOfWeek         string `json:"day_of_week" binding:"required" validate:"required" example:"수요일"`
	Period            int    `json:"period" binding:"min=0,max=7" validate:"required" example:"3"`
	ClassInfo         string `json:"class_info" validate:"optional" example:"206 지Ⅰ"`
	AcademicEvent     string `json:"academic_event" validate:"optional"`
	Content           string `json:"content" validate:"optional" example:"지각 변동의 증거"`
	IsBeforeFirstTest bool   `json:"is_before_first_test" validate:"optional"`
	Segment           string `json:"segment" binding:"omitempty,oneof=before_first between_first_second after_second" validate:"optional"`
}

type SaveSessionsForm struct {
	Year        int                `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester    int                `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
	Grade       int                `json:"grade" binding:"required,min=1,max=9" validate:"required" example:"2"`
	ClassNumber int                `json:"class_number" binding:"required,min=1" validate:"required" example:"6"`
	Subject     string             `json:"subject" binding:"required" validate:"required" example:"지구과학Ⅰ"`
	Sessions    []ClassSessionForm `json:"sessions" binding:"dive" validate:"required"`
}
