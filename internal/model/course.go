package model

// Course is a course the learner is enrolled in, as listed on the dashboard.
type Course struct {
	ID               int    `json:"id" mapstructure:"id"`
	Title            string `json:"title" mapstructure:"title"`
	Progress         int    `json:"progress" mapstructure:"progress"`
	TotalLessons     int    `json:"totalLessons" mapstructure:"totalLessons"`
	CompletedLessons int    `json:"completedLessons" mapstructure:"completedLessons"`
	Duration         string `json:"duration" mapstructure:"duration"`
}

// Instructor is a person teaching a course.
type Instructor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CourseDetail is a Course enriched with the descriptive fields shown on the
// course page. Only the embedded Course is stored; the rest is built on read.
type CourseDetail struct {
	Course
	Description string       `json:"description"`
	Syllabus    []string     `json:"syllabus"`
	Instructors []Instructor `json:"instructors"`
}
