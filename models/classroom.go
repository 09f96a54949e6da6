package models

import "time"

type Classroom struct {
	ID                string    `json:"id"`
	GoogleClassroomID string    `json:"google_classroom_id"`
	Name              string    `json:"name"`
	Section           string    `json:"section,omitempty"`
	Description       string    `json:"description,omitempty"`
	Room              string    `json:"room,omitempty"`
	TeacherID         string    `json:"teacher_id"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProgressSummary struct {
	StudentID            string  `json:"student_id"`
	StudentName          string  `json:"student_name"`
	StudentEmail         string  `json:"student_email"`
	ClassroomID          string  `json:"classroom_id"`
	ClassroomName        string  `json:"classroom_name"`
	TotalAssignments     int     `json:"total_assignments"`
	SubmittedAssignments int     `json:"submitted_assignments"`
	GradedAssignments    int     `json:"graded_assignments"`
	AverageGrade         float64 `json:"average_grade,omitempty"`
	PendingAssignments   int     `json:"pending_assignments"`
	SubmissionRate       float64 `json:"submission_rate"`
}

type ActivityItem struct {
	Type       string    `json:"type"`
	Student    string    `json:"student,omitempty"`
	Class      string    `json:"class,omitempty"`
	Assignment string    `json:"assignment"`
	Grade      float64   `json:"grade,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type Metrics struct {
	TotalStudents         int            `json:"total_students"`
	TotalTeachers         int            `json:"total_teachers"`
	TotalClasses          int            `json:"total_classes"`
	TotalAssignments      int            `json:"total_assignments"`
	OverallSubmissionRate float64        `json:"overall_submission_rate"`
	AverageGrade          float64        `json:"average_grade"`
	StudentsAtRisk        int            `json:"students_at_risk"`
	RecentActivity        []ActivityItem `json:"recent_activity"`
}

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
