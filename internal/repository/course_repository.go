package repository

import (
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithLectures(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	AddLecture(lecture *model.Lecture) error
	FindLecture(courseID, lectureID uint) (*model.Lecture, error)
	CountLectures(courseID uint) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	// Creates associated lectures as well when course.Lectures is populated.
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, id).Error
	return &course, err
}

func (r *courseRepository) FindByIDWithLectures(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Lectures", func(db *gorm.DB) *gorm.DB {
		return db.Order("lectures.position ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) AddLecture(lecture *model.Lecture) error {
	return r.db.Create(lecture).Error
}

func (r *courseRepository) FindLecture(courseID, lectureID uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.db.Where("course_id = ?", courseID).First(&lecture, lectureID).Error
	return &lecture, err
}

func (r *courseRepository) CountLectures(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lecture{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
