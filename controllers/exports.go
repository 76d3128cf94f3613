package controllers

import (
	"fmt"
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/services"
	"github.com/gin-gonic/gin"
)

// Services
var exportService = services.NewExportService()

type ExportsController struct{}

type exportGroupParams struct {
	schoolID    string
	year        int
	semester    int
	teacherID   string
	grade       int
	classNumber int
}

func bindExportGroup(c *gin.Context) (*exportGroupParams, bool) {
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "로그인이 필요합니다",
		})
		return nil, false
	}
	params := &exportGroupParams{
		schoolID:  c.Param("idSchool"),
		teacherID: claims.ID,
	}
	var err error
	if params.year, err = queryInt(c, "year"); err == nil {
		if params.semester, err = queryInt(c, "semester"); err == nil {
			if params.grade, err = queryInt(c, "grade"); err == nil {
				params.classNumber, err = queryInt(c, "class_number")
			}
		}
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return nil, false
	}
	return params, true
}

func (export *ExportsController) ExportSessionsXlsx(c *gin.Context) {
	params, ok := bindExportGroup(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf(
		"수업계획_%d-%d_%d학년%d반.xlsx",
		params.year,
		params.semester,
		params.grade,
		params.classNumber,
	)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header(
		"Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)

	errRes := exportService.ExportSessionsXlsx(
		c.Writer,
		params.schoolID,
		params.year,
		params.semester,
		params.teacherID,
		params.grade,
		params.classNumber,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
	}
}

func (export *ExportsController) ExportSessionsPdf(c *gin.Context) {
	params, ok := bindExportGroup(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf(
		"수업계획_%d-%d_%d학년%d반.pdf",
		params.year,
		params.semester,
		params.grade,
		params.classNumber,
	)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")

	errRes := exportService.ExportSessionsPdf(
		c.Writer,
		params.schoolID,
		params.year,
		params.semester,
		params.teacherID,
		params.grade,
		params.classNumber,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
	}
}

func (export *ExportsController) ExportAllSessionsZip(c *gin.Context) {
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
	filename := fmt.Sprintf("수업계획_%d-%d_전체.zip", year, semester)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/zip")

	errRes := exportService.ExportAllSessionsZip(c.Writer, idSchool, year, semester, claims.ID)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
	}
}
