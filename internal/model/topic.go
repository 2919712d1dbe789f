package model

import "time"

// Topic represents a syllabus topic within a course.
type Topic struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"course_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TopicRequest is the payload for creating or updating a topic.
type TopicRequest struct {
	CourseID int    `json:"course_id" binding:"required,gt=0"`
	Name     string `json:"name" binding:"required,max=255"`
}
