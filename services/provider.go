package services

import (
	"context"
	"time"

	"classroom-dashboard/models"
)

// ClassroomDataProvider supplies the dashboard payloads. The auth core does
// not depend on which implementation is active; a future implementation will
// be backed by the Google Classroom API.
type ClassroomDataProvider interface {
	Progress(ctx context.Context, user *models.User) ([]models.ProgressSummary, error)
	Metrics(ctx context.Context, user *models.User) (*models.Metrics, error)
	Classrooms(ctx context.Context, user *models.User) ([]models.Classroom, error)
	Notifications(ctx context.Context, user *models.User) ([]models.Notification, error)
}

// FixtureProvider returns fixed payloads, standing in until the classroom
// API integration lands.
type FixtureProvider struct{}

func NewFixtureProvider() *FixtureProvider { return &FixtureProvider{} }

func (p *FixtureProvider) Progress(ctx context.Context, user *models.User) ([]models.ProgressSummary, error) {
	return []models.ProgressSummary{
		{
			StudentID:            "student1",
			StudentName:          "Juan Pérez",
			StudentEmail:         "juan.perez@email.com",
			ClassroomID:          "class1",
			ClassroomName:        "Desarrollo Web",
			TotalAssignments:     10,
			SubmittedAssignments: 8,
			GradedAssignments:    7,
			AverageGrade:         85.5,
			PendingAssignments:   2,
			SubmissionRate:       0.8,
		},
		{
			StudentID:            "student2",
			StudentName:          "María García",
			StudentEmail:         "maria.garcia@email.com",
			ClassroomID:          "class1",
			ClassroomName:        "Desarrollo Web",
			TotalAssignments:     10,
			SubmittedAssignments: 9,
			GradedAssignments:    8,
			AverageGrade:         92.3,
			PendingAssignments:   1,
			SubmissionRate:       0.9,
		},
	}, nil
}

func (p *FixtureProvider) Metrics(ctx context.Context, user *models.User) (*models.Metrics, error) {
	return &models.Metrics{
		TotalStudents:         45,
		TotalTeachers:         5,
		TotalClasses:          8,
		TotalAssignments:      120,
		OverallSubmissionRate: 0.82,
		AverageGrade:          87.4,
		StudentsAtRisk:        8,
		RecentActivity: []models.ActivityItem{
			{Type: "assignment_submitted", Student: "Juan Pérez", Assignment: "HTML Básico", Timestamp: fixtureTime("2025-01-27T10:30:00Z")},
			{Type: "assignment_graded", Student: "María García", Assignment: "CSS Grid", Grade: 95, Timestamp: fixtureTime("2025-01-27T09:15:00Z")},
			{Type: "new_assignment", Class: "JavaScript Avanzado", Assignment: "API REST", Timestamp: fixtureTime("2025-01-27T08:00:00Z")},
		},
	}, nil
}

func (p *FixtureProvider) Classrooms(ctx context.Context, user *models.User) ([]models.Classroom, error) {
	return []models.Classroom{
		{
			ID:                "class1",
			GoogleClassroomID: "gc_001",
			Name:              "Desarrollo Web Frontend",
			Section:           "A",
			Description:       "Curso de HTML, CSS y JavaScript",
			TeacherID:         "teacher1",
			CreatedAt:         fixtureTime("2025-01-10T00:00:00Z"),
		},
		{
			ID:                "class2",
			GoogleClassroomID: "gc_002",
			Name:              "Backend con Node.js",
			Section:           "B",
			Description:       "APIs REST y bases de datos",
			TeacherID:         "teacher2",
			CreatedAt:         fixtureTime("2025-01-12T00:00:00Z"),
		},
	}, nil
}

func (p *FixtureProvider) Notifications(ctx context.Context, user *models.User) ([]models.Notification, error) {
	return []models.Notification{
		{
			ID:        "notif1",
			Type:      "assignment_due",
			Title:     "Tarea pendiente: HTML Básico",
			Message:   "La tarea vence mañana a las 23:59",
			Timestamp: fixtureTime("2025-01-27T10:00:00Z"),
		},
		{
			ID:        "notif2",
			Type:      "grade_published",
			Title:     "Calificación publicada: CSS Grid",
			Message:   "Has obtenido 95/100 puntos",
			Timestamp: fixtureTime("2025-01-27T09:30:00Z"),
		},
	}, nil
}

func fixtureTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
