package service

import (
	"testing"

	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
)

func TestCreateCourseWithLectures(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	course, err := svc.CreateCourse(dto.CourseCreateDTO{
		Title: "Intro to Go",
		Lectures: []dto.LectureCreateDTO{
			{Title: "Basics", Position: 1},
			{Title: "Concurrency", Position: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if course.Title != "Intro to Go" {
		t.Errorf("Title = %q, want Intro to Go", course.Title)
	}
	if len(course.Lectures) != 2 {
		t.Fatalf("len(Lectures) = %d, want 2", len(course.Lectures))
	}
	if course.Lectures[0].Position != 1 || course.Lectures[1].Position != 2 {
		t.Errorf("lecture positions = [%d, %d], want [1, 2]", course.Lectures[0].Position, course.Lectures[1].Position)
	}
}

func TestCreateCourseDuplicatePositions(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.CreateCourse(dto.CourseCreateDTO{
		Title: "Broken",
		Lectures: []dto.LectureCreateDTO{
			{Title: "A", Position: 1},
			{Title: "B", Position: 1},
		},
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("KindOf = %v, want KindValidation", apperr.KindOf(err))
	}
}

func TestAddLecture(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)

	course, err := svc.CreateCourse(dto.CourseCreateDTO{Title: "Intro to Go"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	lecture, err := svc.AddLecture(course.ID, dto.LectureCreateDTO{Title: "Basics", Position: 1})
	if err != nil {
		t.Fatalf("AddLecture failed: %v", err)
	}
	if lecture.CourseID != course.ID || lecture.Title != "Basics" {
		t.Errorf("lecture = %+v, want course %d titled Basics", lecture, course.ID)
	}

	count, _ := repo.CountLectures(course.ID)
	if count != 1 {
		t.Errorf("lecture count = %d, want 1", count)
	}
}

func TestAddLectureUnknownCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.AddLecture(999, dto.LectureCreateDTO{Title: "Basics", Position: 1})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestGetCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.GetCourse(999)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestListCourses(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	for _, title := range []string{"Go", "Rust"} {
		if _, err := svc.CreateCourse(dto.CourseCreateDTO{Title: title}); err != nil {
			t.Fatalf("CreateCourse(%q) failed: %v", title, err)
		}
	}

	courses, err := svc.ListCourses()
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("len(courses) = %d, want 2", len(courses))
	}
}
