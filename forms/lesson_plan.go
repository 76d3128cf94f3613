package forms

type TemplateRowForm struct {
	SessionIndex int    `json:"session_index" binding:"required,min=1" validate:"required" minimum:"1" example:"1"`
	Content      string `json:"content" validate:"optional" example:"판 구조론의 정립 과정"`
}

type SaveTemplatesForm struct {
	Year      int               `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester  int               `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
	Grade     int               `json:"grade" binding:"required,min=1,max=9" validate:"required" example:"2"`
	Subject   string            `json:"subject" binding:"required" validate:"required" example:"지구과학Ⅰ"`
	Segment   string            `json:"segment" binding:"required,oneof=before_first between_first_second after_second" validate:"required"`
	Templates []TemplateRowForm `json:"templates" binding:"dive" validate:"required"`
}

type ApplyTemplateForm struct {
	Year         int    `json:"year" binding:"required,min=2000,max=2100" validate:"required" example:"2025"`
	Semester     int    `json:"semester" binding:"required,min=1,max=2" validate:"required" example:"1"`
	Grade        int    `json:"grade" binding:"required,min=1,max=9" validate:"required" example:"2"`
	Subject      string `json:"subject" binding:"required" validate:"required" example:"지구과학Ⅰ"`
	Segment      string `json:"segment" binding:"required,oneof=before_first between_first_second after_second" validate:"required"`
	ExtraContent string `json:"extra_content" validate:"optional" example:"자습"`
}
