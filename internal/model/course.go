package model

import "time"

// Course represents a training course offering.
type Course struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CourseCSVRow maps a row of the course bulk-upload file.
type CourseCSVRow struct {
	Name string `csv:"courseName"`
}
