package model

import "time"

// Student represents a training program participant enrolled in a batch.
type Student struct {
	ID          int       `json:"id"`
	BatchID     int       `json:"batch_id"`
	Name        string    `json:"name"`
	Roll        int       `json:"roll"`
	Designation string    `json:"designation"`
	WorkPlace   string    `json:"work_place"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	BatchID     int    `json:"batch_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,max=255"`
	Roll        int    `json:"roll" binding:"required,gt=0"`
	Designation string `json:"designation" binding:"required,max=255"`
	WorkPlace   string `json:"work_place" binding:"required,max=255"`
	Phone       string `json:"phone" binding:"required,max=32"`
	Email       string `json:"email" binding:"required,email,max=255"`
}

// StudentCSVRow maps a row of the batch-scoped student bulk-upload file.
type StudentCSVRow struct {
	Name        string `csv:"name"`
	Roll        int    `csv:"roll"`
	Designation string `csv:"designation"`
	WorkPlace   string `csv:"workPlace"`
	Phone       string `csv:"phone"`
	Email       string `csv:"email"`
}
