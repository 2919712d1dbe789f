package model

import "time"

// Batch represents a scheduled run of a course for a cohort of students.
type Batch struct {
	ID          int       `json:"id"`
	CourseName  string    `json:"course_name"`
	BatchNumber string    `json:"batch_number"`
	Grade       string    `json:"grade"`
	StartTime   int64     `json:"start_time"` // epoch seconds
	EndTime     int64     `json:"end_time"`   // epoch seconds
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BatchRequest is the payload for creating or updating a batch.
type BatchRequest struct {
	CourseName  string `json:"course_name" binding:"required,max=255"`
	BatchNumber string `json:"batch_number" binding:"required,max=64"`
	Grade       string `json:"grade" binding:"required,max=64"`
	StartTime   int64  `json:"start_time" binding:"required,gt=0"`
	EndTime     int64  `json:"end_time" binding:"required,gtfield=StartTime"`
}

// BatchCSVRow maps a row of the batch bulk-upload file.
type BatchCSVRow struct {
	CourseName  string `csv:"courseName"`
	BatchNumber string `csv:"batchNumber"`
	Grade       string `csv:"grade"`
	StartTime   int64  `csv:"startTime"`
	EndTime     int64  `csv:"endTime"`
}
