package model

import "time"

// User is an account on the Jishu platform, as seen by the admin console.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      string // "student" or "admin"
	Status    string // StatusActive or StatusBlocked
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Course is a purchasable test-prep course.
type Course struct {
	ID           string
	Name         string
	Description  string
	Price        int64 // smallest currency unit
	SubjectCount int
	Status       string // StatusPublished or StatusDraft
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subject is one subject inside a course.
type Subject struct {
	ID            string
	CourseID      string
	Name          string
	QuestionCount int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Post is a blog/news article shown on the platform.
type Post struct {
	ID        string
	Title     string
	Body      string
	Author    string
	Status    string // StatusPublished or StatusDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is a user comment on a post. Deleted comments are kept
// upstream but hidden from default listings (soft delete).
type Comment struct {
	ID        string
	PostID    string
	Author    string
	Body      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is a payment record. Read-only for the admin console.
type Transaction struct {
	ID        string
	UserID    string
	Amount    int64
	Currency  string
	Reference string
	Status    string // StatusPaid, StatusPending or StatusFailed
	CreatedAt time.Time
}
