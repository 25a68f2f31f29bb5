package catalog

import "context"

// UseCase manages the course and subject collections.
type UseCase interface {
	// Courses
	ListCourses(ctx context.Context, input ListCoursesInput) (ListCoursesOutput, error)
	GetCourse(ctx context.Context, id string) (CourseOutput, error)
	CreateCourse(ctx context.Context, input CreateCourseInput) (CourseOutput, error)
	UpdateCourse(ctx context.Context, input UpdateCourseInput) (CourseOutput, error)
	DeleteCourse(ctx context.Context, id string) error
	ToggleCourseStatus(ctx context.Context, id string) (CourseOutput, error)

	// Subjects
	ListSubjects(ctx context.Context, input ListSubjectsInput) (ListSubjectsOutput, error)
	GetSubject(ctx context.Context, id string) (SubjectOutput, error)
	CreateSubject(ctx context.Context, input CreateSubjectInput) (SubjectOutput, error)
	UpdateSubject(ctx context.Context, input UpdateSubjectInput) (SubjectOutput, error)
	DeleteSubject(ctx context.Context, id string) error
}
