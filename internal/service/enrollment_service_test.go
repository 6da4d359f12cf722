package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/config"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{Points: config.Points{LectureCompletion: 5, AssignmentCompletion: 10}}
}

type enrollmentFixture struct {
	courseRepo     *fakeCourseRepo
	enrollmentRepo *fakeEnrollmentRepo
	ledger         LedgerService
	svc            EnrollmentService
	learner        uuid.UUID
	course         *model.Course
}

// newEnrollmentFixture builds a course with four lectures.
func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	f := &enrollmentFixture{
		courseRepo:     newFakeCourseRepo(),
		enrollmentRepo: newFakeEnrollmentRepo(),
		learner:        uuid.New(),
	}
	f.ledger = NewLedgerService(newFakeLedgerRepo())
	f.svc = NewEnrollmentService(f.courseRepo, f.enrollmentRepo, f.ledger, testConfig())

	course := &model.Course{
		Title: "Intro to Go",
		Lectures: []model.Lecture{
			{Title: "L1", Position: 1},
			{Title: "L2", Position: 2},
			{Title: "L3", Position: 3},
			{Title: "L4", Position: 4},
		},
	}
	if err := f.courseRepo.Create(course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	f.course = course
	return f
}

func TestEnroll(t *testing.T) {
	f := newEnrollmentFixture(t)

	enrollment, err := f.svc.Enroll(f.course.ID, f.learner)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if enrollment.CourseID != f.course.ID || enrollment.LearnerID != f.learner {
		t.Errorf("enrollment = %+v, want course %d learner %s", enrollment, f.course.ID, f.learner)
	}
	if enrollment.Progress != 0 {
		t.Errorf("initial Progress = %d, want 0", enrollment.Progress)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.Enroll(999, f.learner)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestEnrollTwice(t *testing.T) {
	f := newEnrollmentFixture(t)

	if _, err := f.svc.Enroll(f.course.ID, f.learner); err != nil {
		t.Fatalf("first Enroll failed: %v", err)
	}
	_, err := f.svc.Enroll(f.course.ID, f.learner)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("KindOf = %v, want KindConflict", apperr.KindOf(err))
	}
}

func TestCompleteLectureProgress(t *testing.T) {
	f := newEnrollmentFixture(t)

	if _, err := f.svc.Enroll(f.course.ID, f.learner); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	first, err := f.svc.CompleteLecture(f.course.ID, f.course.Lectures[0].ID, f.learner)
	if err != nil {
		t.Fatalf("CompleteLecture(L1) failed: %v", err)
	}
	if first.Progress != 25 {
		t.Errorf("progress after 1/4 = %d, want 25", first.Progress)
	}
	if first.PointsAwarded != 5 {
		t.Errorf("PointsAwarded = %d, want 5", first.PointsAwarded)
	}

	second, err := f.svc.CompleteLecture(f.course.ID, f.course.Lectures[1].ID, f.learner)
	if err != nil {
		t.Fatalf("CompleteLecture(L2) failed: %v", err)
	}
	if second.Progress != 50 {
		t.Errorf("progress after 2/4 = %d, want 50", second.Progress)
	}
	if second.CompletedLectures != 2 || second.TotalLectures != 4 {
		t.Errorf("counts = %d/%d, want 2/4", second.CompletedLectures, second.TotalLectures)
	}

	balance, _ := f.ledger.Balance(f.learner)
	if balance.TotalPoints != 10 {
		t.Errorf("ledger total = %d, want 10 after two lecture awards", balance.TotalPoints)
	}
}

func TestCompleteLectureNotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.CompleteLecture(f.course.ID, f.course.Lectures[0].ID, f.learner)
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("KindOf = %v, want KindForbidden", apperr.KindOf(err))
	}
}

func TestCompleteLectureUnknownLecture(t *testing.T) {
	f := newEnrollmentFixture(t)

	if _, err := f.svc.Enroll(f.course.ID, f.learner); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	_, err := f.svc.CompleteLecture(f.course.ID, 999, f.learner)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestCompleteLectureTwice(t *testing.T) {
	f := newEnrollmentFixture(t)

	if _, err := f.svc.Enroll(f.course.ID, f.learner); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	lectureID := f.course.Lectures[0].ID
	if _, err := f.svc.CompleteLecture(f.course.ID, lectureID, f.learner); err != nil {
		t.Fatalf("first CompleteLecture failed: %v", err)
	}

	_, err := f.svc.CompleteLecture(f.course.ID, lectureID, f.learner)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("KindOf = %v, want KindConflict", apperr.KindOf(err))
	}

	// The rejected repeat must not award again.
	balance, _ := f.ledger.Balance(f.learner)
	if balance.TotalPoints != 5 {
		t.Errorf("ledger total = %d, want 5", balance.TotalPoints)
	}
}

func TestDashboard(t *testing.T) {
	f := newEnrollmentFixture(t)

	other := &model.Course{Title: "Advanced Go", Lectures: []model.Lecture{{Title: "L1", Position: 1}}}
	if err := f.courseRepo.Create(other); err != nil {
		t.Fatalf("create second course: %v", err)
	}

	if _, err := f.svc.Enroll(f.course.ID, f.learner); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if _, err := f.svc.Enroll(other.ID, f.learner); err != nil {
		t.Fatalf("second Enroll failed: %v", err)
	}

	// 2/4 lectures in the first course, 1/1 in the second.
	for _, l := range f.course.Lectures[:2] {
		if _, err := f.svc.CompleteLecture(f.course.ID, l.ID, f.learner); err != nil {
			t.Fatalf("CompleteLecture failed: %v", err)
		}
	}
	if _, err := f.svc.CompleteLecture(other.ID, other.Lectures[0].ID, f.learner); err != nil {
		t.Fatalf("CompleteLecture in second course failed: %v", err)
	}

	dashboard, err := f.svc.Dashboard(f.learner)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(dashboard.Enrollments) != 2 {
		t.Fatalf("len(Enrollments) = %d, want 2", len(dashboard.Enrollments))
	}
	// Mean of 50 and 100.
	if dashboard.OverallProgress != 75 {
		t.Errorf("OverallProgress = %d, want 75", dashboard.OverallProgress)
	}
	if dashboard.Balance == nil || dashboard.Balance.TotalPoints != 15 {
		t.Errorf("Balance = %+v, want total 15 from three lecture awards", dashboard.Balance)
	}
	if len(dashboard.RecentActivity) != 3 {
		t.Errorf("len(RecentActivity) = %d, want 3", len(dashboard.RecentActivity))
	}
}

func TestDashboardEmpty(t *testing.T) {
	f := newEnrollmentFixture(t)

	dashboard, err := f.svc.Dashboard(f.learner)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if dashboard.OverallProgress != 0 {
		t.Errorf("OverallProgress = %d, want 0", dashboard.OverallProgress)
	}
	if len(dashboard.Enrollments) != 0 {
		t.Errorf("len(Enrollments) = %d, want 0", len(dashboard.Enrollments))
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		completed, total int64
		want             int
	}{
		{0, 4, 0},
		{1, 4, 25},
		{2, 4, 50},
		{4, 4, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0}, // course with no lectures
	}
	for _, tt := range tests {
		if got := computeProgress(tt.completed, tt.total); got != tt.want {
			t.Errorf("computeProgress(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}
