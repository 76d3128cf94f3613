package forms

type SaveSchoolForm struct {
	ID   string `json:"_id" binding:"required" validate:"required" example:"school1"`
	Name string `json:"name" binding:"required" validate:"required" example:"청주대성고등학교"`
}
