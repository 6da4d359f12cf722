package model

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Lectures    []Lecture      `json:"lectures,omitempty" gorm:"foreignKey:CourseID"`
	Quizzes     []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:CourseID"`
	Assignments []Assignment   `json:"assignments,omitempty" gorm:"foreignKey:CourseID"`
	Enrollments []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Lecture struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content,omitempty" gorm:"type:text"`
	Position  int            `json:"position" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
