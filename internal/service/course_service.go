package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error)
	AddLecture(courseID uint, req dto.LectureCreateDTO) (*dto.LectureResponseDTO, error)
	GetCourse(courseID uint) (*dto.CourseResponseDTO, error)
	ListCourses() ([]dto.CourseSummaryDTO, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error) {
	positions := make(map[int]bool)
	for _, l := range req.Lectures {
		if positions[l.Position] {
			return nil, apperr.Validation("lectures", "duplicate lecture position %d", l.Position)
		}
		positions[l.Position] = true
	}

	var course model.Course
	if err := copier.Copy(&course, &req); err != nil {
		return nil, apperr.Internal(err, "failed to map course payload")
	}

	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateCourse: database error")
		return nil, apperr.Internal(err, "failed to create course")
	}

	log.Info().Uint("courseID", course.ID).Str("title", course.Title).Int("lectures", len(course.Lectures)).Msg("Course created")
	return s.GetCourse(course.ID)
}

func (s *courseService) AddLecture(courseID uint, req dto.LectureCreateDTO) (*dto.LectureResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course %d not found", courseID)
		}
		return nil, apperr.Internal(err, "failed to load course")
	}

	lecture := model.Lecture{
		CourseID: courseID,
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	}
	if err := s.courseRepo.AddLecture(&lecture); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("AddLecture: database error")
		return nil, apperr.Internal(err, "failed to add lecture")
	}

	var resp dto.LectureResponseDTO
	copier.Copy(&resp, &lecture)
	return &resp, nil
}

func (s *courseService) GetCourse(courseID uint) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByIDWithLectures(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course %d not found", courseID)
		}
		return nil, apperr.Internal(err, "failed to load course")
	}

	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, course); err != nil {
		return nil, apperr.Internal(err, "failed to map course response")
	}
	return &resp, nil
}

func (s *courseService) ListCourses() ([]dto.CourseSummaryDTO, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err, "failed to list courses")
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(courses))
	for _, course := range courses {
		var d dto.CourseSummaryDTO
		copier.Copy(&d, &course)
		dtos = append(dtos, d)
	}
	return dtos, nil
}
