package res

const (
	SESSIONS = "sessions"
	PLAN     = "plan"
)

// NotifySessions is the payload published to the intranet notify stream
// whenever a school/year/semester batch of class sessions is regenerated.
type NotifySessions struct {
	Title    string `json:"title"`
	SchoolID string `json:"school_id"`
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
	Count    int    `json:"count"`
	Type     string `json:"type"`
}
