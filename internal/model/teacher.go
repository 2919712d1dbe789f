package model

import "time"

// Teacher represents a trainer who delivers course sessions.
type Teacher struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	WorkPlace   string    `json:"work_place"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeacherRequest is the payload for creating or updating a teacher.
type TeacherRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Designation string `json:"designation" binding:"required,max=255"`
	WorkPlace   string `json:"work_place" binding:"required,max=255"`
	Phone       string `json:"phone" binding:"omitempty,max=32"`
	Email       string `json:"email" binding:"omitempty,email,max=255"`
}

// TeacherCSVRow maps a row of the teacher bulk-upload file.
type TeacherCSVRow struct {
	Name        string `csv:"name"`
	Designation string `csv:"designation"`
	WorkPlace   string `csv:"workPlace"`
	Phone       string `csv:"phone"`
	Email       string `csv:"email"`
}
