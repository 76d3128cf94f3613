package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/KR-EduLab/Intranet_BLessonPlan/controllers"
	"github.com/KR-EduLab/Intranet_BLessonPlan/middlewares"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in" + time.Until(info.ResetTime).String(),
	})
}

var settingsData = settings.GetSettings()

func Init() {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap looger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/api/l/lessonplan/healthz"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Routes
	defaultRoles := []string{
		models.TEACHER,
		models.DIRECTIVE,
		models.DIRECTOR,
	}
	adminRoles := []string{
		models.DIRECTIVE,
		models.DIRECTOR,
	}
	calendars := router.Group(
		"/api/l/lessonplan/calendars",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	timetables := router.Group(
		"/api/l/lessonplan/timetables",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	sessions := router.Group(
		"/api/l/lessonplan/sessions",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	plans := router.Group(
		"/api/l/lessonplan/plans",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware([]string{models.TEACHER}),
	)
	students := router.Group(
		"/api/l/lessonplan/students",
		middlewares.JWTMiddleware(),
	)
	exports := router.Group(
		"/api/l/lessonplan/exports",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	schools := router.Group(
		"/api/l/lessonplan/schools",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	{
		// Init controllers
		calendarController := new(controllers.CalendarController)
		timetableController := new(controllers.TimetableController)
		sessionsController := new(controllers.SessionsController)
		lessonPlanController := new(controllers.LessonPlanController)
		studentsController := new(controllers.StudentsController)
		exportsController := new(controllers.ExportsController)
		schoolsController := new(controllers.SchoolsController)
		// Define routes
		// Calendars
		calendars.GET(
			"/get_calendar/:idSchool",
			middlewares.AuthorizedSchool(),
			calendarController.GetCalendar,
		)
		calendars.GET("/get_holiday_events", calendarController.GetHolidayEvents)
		calendars.POST(
			"/save_calendar/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			calendarController.SaveCalendar,
		)
		// Timetables
		timetables.GET(
			"/get_schedules/:idSchool",
			middlewares.AuthorizedSchool(),
			timetableController.GetSchedules,
		)
		timetables.GET(
			"/get_my_schedules/:idSchool",
			middlewares.AuthorizedSchool(),
			timetableController.GetMySchedules,
		)
		timetables.POST(
			"/save_schedules/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			timetableController.SaveSchedules,
		)
		timetables.POST(
			"/upload_schedules/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			timetableController.UploadSchedules,
		)
		timetables.GET(
			"/download_schedules/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			timetableController.DownloadSchedulesFile,
		)
		timetables.DELETE(
			"/delete_schedules/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			timetableController.DeleteSchedules,
		)
		// Sessions
		sessions.POST(
			"/process_sessions/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			sessionsController.ProcessSessions,
		)
		sessions.GET(
			"/get_sessions/:idSchool",
			middlewares.AuthorizedSchool(),
			sessionsController.GetSessions,
		)
		sessions.POST(
			"/save_sessions/:idSchool",
			middlewares.RolesMiddleware([]string{models.TEACHER}),
			middlewares.AuthorizedSchool(),
			sessionsController.SaveSessions,
		)
		sessions.POST(
			"/apply_template/:idSchool",
			middlewares.RolesMiddleware([]string{models.TEACHER}),
			middlewares.AuthorizedSchool(),
			sessionsController.ApplyTemplate,
		)
		sessions.GET(
			"/search/:idSchool",
			middlewares.AuthorizedSchool(),
			sessionsController.SearchContents,
		)
		// Lesson plans
		plans.GET(
			"/get_templates/:idSchool",
			middlewares.AuthorizedSchool(),
			lessonPlanController.GetTemplates,
		)
		plans.GET(
			"/analyze_common_plan/:idSchool",
			middlewares.AuthorizedSchool(),
			lessonPlanController.AnalyzeCommonPlan,
		)
		plans.POST(
			"/save_templates/:idSchool",
			middlewares.AuthorizedSchool(),
			lessonPlanController.SaveTemplates,
		)
		// Student timetables
		students.POST(
			"/upload_timetables/:idSchool",
			middlewares.RolesMiddleware(adminRoles),
			middlewares.AuthorizedSchool(),
			studentsController.UploadStudentTimetables,
		)
		students.GET(
			"/get_timetable/:idSchool/:studentCode",
			middlewares.RolesMiddleware([]string{
				models.STUDENT,
				models.TEACHER,
				models.DIRECTIVE,
				models.DIRECTOR,
			}),
			middlewares.AuthorizedSchool(),
			studentsController.GetStudentTimetable,
		)
		// Exports
		exports.GET(
			"/export_xlsx/:idSchool",
			middlewares.AuthorizedSchool(),
			exportsController.ExportSessionsXlsx,
		)
		exports.GET(
			"/export_pdf/:idSchool",
			middlewares.AuthorizedSchool(),
			exportsController.ExportSessionsPdf,
		)
		exports.GET(
			"/export_zip/:idSchool",
			middlewares.AuthorizedSchool(),
			exportsController.ExportAllSessionsZip,
		)
		// Schools
		schools.GET("/get_schools", schoolsController.GetSchools)
		schools.POST(
			"/save_school",
			middlewares.RolesMiddleware([]string{models.DIRECTOR}),
			schoolsController.SaveSchool,
		)
	}
	// Route healthz
	router.GET("/api/l/lessonplan/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(); err != nil {
		log.Fatalf("Error init server")
	}
}
