package forms

type CalendarEventForm struct {
	ID     string `json:"id" validate:"optional"`
	Date   string `json:"date" binding:"required" validate:"required" example:"2025-04-30"`
	Type   string `json:"type" binding:"required,oneof=holiday midterm final recess custom direct substitute opening closing mocktest" validate:"required"`
	Name   string `json:"name" binding:"required" validate:"required" example:"1차 지필평가"`
	Grades []int  `json:"grades" binding:"omitempty,dive,min=1,max=9" validate:"optional"`
}

type SaveCalendarForm struct {
	Year     int                 `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester int                 `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
	Events   []CalendarEventForm `json:"events" binding:"dive" validate:"required"`
}
