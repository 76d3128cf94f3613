package models

type UserTypes string

const (
	DIRECTOR  = "f"
	DIRECTIVE = "e"
	TEACHER   = "d"
	STUDENT   = "a"
)
