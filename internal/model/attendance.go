package model

// AttendanceStatus marks a single day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is one day's attendance entry.
type AttendanceRecord struct {
	Date   string           `json:"date" mapstructure:"date"`
	Status AttendanceStatus `json:"status" mapstructure:"status"`
}

// AttendanceTerm holds the term totals and the most recent entries.
type AttendanceTerm struct {
	DaysPresent int                `mapstructure:"daysPresent"`
	DaysAbsent  int                `mapstructure:"daysAbsent"`
	Records     []AttendanceRecord `mapstructure:"records"`
}

// AttendanceSummary is a labelled summary card. Value is a number or a
// formatted string such as "88%".
type AttendanceSummary struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// AttendanceOverview is the payload of GET /api/attendance.
type AttendanceOverview struct {
	Summary []AttendanceSummary `json:"summary"`
	Records []AttendanceRecord  `json:"records"`
}
