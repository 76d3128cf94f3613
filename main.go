package main

import "github.com/KR-EduLab/Intranet_BLessonPlan/server"

func main() {
	server.Init()
}
