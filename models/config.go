package models

import (
	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
)

var settingsData = settings.GetSettings()

// MongoDB
var DbConnect = db.NewConnection(
	settingsData.MONGO_HOST,
	settingsData.MONGO_DB,
)
