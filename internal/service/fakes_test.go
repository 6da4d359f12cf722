package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the semantics of the gorm-backed
// implementations, including gorm.ErrRecordNotFound and the attempt store
// sentinels.

type fakeLedgerRepo struct {
	mu      sync.Mutex
	ledgers map[uuid.UUID]*model.PointsLedger
	entries []model.PointsTransaction
	nextID  uint

	failAppend error // injected fault for AppendEarn/AppendSpend
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{ledgers: make(map[uuid.UUID]*model.PointsLedger)}
}

func (f *fakeLedgerRepo) FindByLearner(learnerID uuid.UUID) (*model.PointsLedger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ledger, ok := f.ledgers[learnerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ledger
	return &cp, nil
}

func (f *fakeLedgerRepo) FindOrCreate(learnerID uuid.UUID) (*model.PointsLedger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ledger, ok := f.ledgers[learnerID]; ok {
		cp := *ledger
		return &cp, nil
	}
	f.nextID++
	ledger := &model.PointsLedger{ID: f.nextID, LearnerID: learnerID}
	f.ledgers[learnerID] = ledger
	cp := *ledger
	return &cp, nil
}

func (f *fakeLedgerRepo) HasEarnedFrom(ledgerID uint, source, sourceID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.LedgerID == ledgerID && e.Direction == model.TransactionEarn && e.Source == source && e.SourceID == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedgerRepo) AppendEarn(ledgerID uint, entry *model.PointsTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend != nil {
		return f.failAppend
	}
	entry.ID = uint(len(f.entries) + 1)
	entry.LedgerID = ledgerID
	entry.Direction = model.TransactionEarn
	f.entries = append(f.entries, *entry)
	for _, ledger := range f.ledgers {
		if ledger.ID == ledgerID {
			ledger.TotalPoints += entry.Amount
			ledger.AvailablePoints += entry.Amount
		}
	}
	return nil
}

func (f *fakeLedgerRepo) AppendSpend(ledgerID uint, entry *model.PointsTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend != nil {
		return f.failAppend
	}
	entry.ID = uint(len(f.entries) + 1)
	entry.LedgerID = ledgerID
	entry.Direction = model.TransactionSpend
	f.entries = append(f.entries, *entry)
	for _, ledger := range f.ledgers {
		if ledger.ID == ledgerID {
			ledger.AvailablePoints -= entry.Amount
			ledger.SpentPoints += entry.Amount
		}
	}
	return nil
}

func (f *fakeLedgerRepo) Transactions(ledgerID uint, limit int) ([]model.PointsTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PointsTransaction
	// Newest first, as the gorm store orders by created_at DESC.
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].LedgerID != ledgerID {
			continue
		}
		out = append(out, f.entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) FindTop(limit int) ([]model.PointsLedger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PointsLedger, 0, len(f.ledgers))
	for _, ledger := range f.ledgers {
		out = append(out, *ledger)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].LearnerID.String() < out[j].LearnerID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type completedKey struct {
	enrollmentID uint
	itemID       uint
}

type fakeEnrollmentRepo struct {
	mu          sync.Mutex
	enrollments []*model.Enrollment
	nextID      uint

	lectures    map[completedKey]bool
	quizzes     map[completedKey]*model.CompletedQuiz
	assignments map[completedKey]bool
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		lectures:    make(map[completedKey]bool),
		quizzes:     make(map[completedKey]*model.CompletedQuiz),
		assignments: make(map[completedKey]bool),
	}
}

func (f *fakeEnrollmentRepo) Create(enrollment *model.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	enrollment.ID = f.nextID
	cp := *enrollment
	f.enrollments = append(f.enrollments, &cp)
	return nil
}

func (f *fakeEnrollmentRepo) FindByCourseAndLearner(courseID uint, learnerID uuid.UUID) (*model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.LearnerID == learnerID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) FindAllByLearner(learnerID uuid.UUID) ([]model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.LearnerID == learnerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) UpdateProgress(enrollmentID uint, progress int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.enrollments {
		if e.ID == enrollmentID {
			e.Progress = progress
		}
	}
	return nil
}

func (f *fakeEnrollmentRepo) AddCompletedLecture(completed *model.CompletedLecture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lectures[completedKey{completed.EnrollmentID, completed.LectureID}] = true
	return nil
}

func (f *fakeEnrollmentRepo) HasCompletedLecture(enrollmentID, lectureID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lectures[completedKey{enrollmentID, lectureID}], nil
}

func (f *fakeEnrollmentRepo) CountCompletedLectures(enrollmentID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.lectures {
		if key.enrollmentID == enrollmentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEnrollmentRepo) AddCompletedQuiz(completed *model.CompletedQuiz) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quizzes[completedKey{completed.EnrollmentID, completed.QuizID}] = completed
	return nil
}

func (f *fakeEnrollmentRepo) HasCompletedQuiz(enrollmentID, quizID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.quizzes[completedKey{enrollmentID, quizID}]
	return ok, nil
}

func (f *fakeEnrollmentRepo) AddCompletedAssignment(completed *model.CompletedAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[completedKey{completed.EnrollmentID, completed.AssignmentID}] = true
	return nil
}

func (f *fakeEnrollmentRepo) HasCompletedAssignment(enrollmentID, assignmentID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.assignments[completedKey{enrollmentID, assignmentID}], nil
}

type fakeCourseRepo struct {
	mu       sync.Mutex
	courses  map[uint]*model.Course
	lectures []model.Lecture
	nextID   uint
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uint]*model.Course)}
}

func (f *fakeCourseRepo) Create(course *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	course.ID = f.nextID
	for i := range course.Lectures {
		course.Lectures[i].ID = uint(len(f.lectures) + 1)
		course.Lectures[i].CourseID = course.ID
		f.lectures = append(f.lectures, course.Lectures[i])
	}
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	course, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *course
	return &cp, nil
}

func (f *fakeCourseRepo) FindByIDWithLectures(id uint) (*model.Course, error) {
	course, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	course.Lectures = nil
	for _, l := range f.lectures {
		if l.CourseID == id {
			course.Lectures = append(course.Lectures, l)
		}
	}
	sort.Slice(course.Lectures, func(i, j int) bool {
		return course.Lectures[i].Position < course.Lectures[j].Position
	})
	return course, nil
}

func (f *fakeCourseRepo) FindAll() ([]model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseRepo) AddLecture(lecture *model.Lecture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lecture.ID = uint(len(f.lectures) + 1)
	f.lectures = append(f.lectures, *lecture)
	return nil
}

func (f *fakeCourseRepo) FindLecture(courseID, lectureID uint) (*model.Lecture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.lectures {
		if l.CourseID == courseID && l.ID == lectureID {
			cp := l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) CountLectures(courseID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, l := range f.lectures {
		if l.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

type quizStats struct {
	totalAttempts int
	averageScore  float64
}

type fakeQuizRepo struct {
	mu      sync.Mutex
	quizzes map[uint]*model.Quiz
	stats   map[uint]quizStats
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uint]*model.Quiz), stats: make(map[uint]quizStats)}
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	quiz.ID = f.nextID
	for i := range quiz.Questions {
		quiz.Questions[i].ID = f.nextID*100 + uint(i) + 1
		quiz.Questions[i].QuizID = quiz.ID
	}
	cp := *quiz
	f.quizzes[quiz.ID] = &cp
	return nil
}

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *quiz
	cp.Questions = nil
	return &cp, nil
}

func (f *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *quiz
	return &cp, nil
}

func (f *fakeQuizRepo) FindAllByCourse(courseID uint) ([]model.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Quiz
	for _, q := range f.quizzes {
		if q.CourseID == courseID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuizRepo) UpdateStats(quizID uint, totalAttempts int, averageScore float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats[quizID] = quizStats{totalAttempts: totalAttempts, averageScore: averageScore}
	return nil
}

type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []*model.QuizAttempt
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{}
}

func (f *fakeAttemptRepo) CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var prior int64
	for _, a := range f.attempts {
		if a.QuizID != attempt.QuizID || a.LearnerID != attempt.LearnerID {
			continue
		}
		if a.Status == model.AttemptStatusInProgress {
			return repository.ErrActiveAttempt
		}
		prior++
	}
	if maxAttempts > 0 && prior >= int64(maxAttempts) {
		return repository.ErrAttemptLimitReached
	}
	f.nextID++
	attempt.ID = f.nextID
	attempt.AttemptNumber = int(prior) + 1
	attempt.Status = model.AttemptStatusInProgress
	cp := *attempt
	f.attempts = append(f.attempts, &cp)
	return nil
}

func (f *fakeAttemptRepo) FindInProgress(quizID uint, learnerID uuid.UUID) (*model.QuizAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.LearnerID == learnerID && a.Status == model.AttemptStatusInProgress {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) CountByQuizAndLearner(quizID uint, learnerID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.LearnerID == learnerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttemptRepo) FindByIDWithAnswers(id uint) (*model.QuizAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attempts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindAllByQuizAndLearner(quizID uint, learnerID uuid.UUID) ([]model.QuizAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.LearnerID == learnerID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptNumber < out[j].AttemptNumber })
	return out, nil
}

func (f *fakeAttemptRepo) SubmitInProgress(attempt *model.QuizAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attempts {
		if a.ID != attempt.ID {
			continue
		}
		if a.Status != model.AttemptStatusInProgress {
			return repository.ErrNotInProgress
		}
		a.Status = model.AttemptStatusSubmitted
		a.SubmittedAt = attempt.SubmittedAt
		a.Score = attempt.Score
		a.TotalPoints = attempt.TotalPoints
		a.Percentage = attempt.Percentage
		a.TimeSpentSeconds = attempt.TimeSpentSeconds
		a.Answers = append([]model.AttemptAnswer(nil), attempt.Answers...)
		return nil
	}
	return repository.ErrNotInProgress
}

func (f *fakeAttemptRepo) MarkAbandoned(attemptID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attempts {
		if a.ID == attemptID && a.Status == model.AttemptStatusInProgress {
			a.Status = model.AttemptStatusAbandoned
		}
	}
	return nil
}

func (f *fakeAttemptRepo) SubmittedStats(quizID uint) (int64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	sum := 0
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.Status == model.AttemptStatusSubmitted {
			count++
			sum += a.Score
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

func (f *fakeAttemptRepo) byID(id uint) *model.QuizAttempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attempts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments map[uint]*model.Assignment
	submissions []*model.AssignmentSubmission
	nextID      uint
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[uint]*model.Assignment)}
}

func (f *fakeAssignmentRepo) Create(assignment *model.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	assignment.ID = f.nextID
	cp := *assignment
	f.assignments[assignment.ID] = &cp
	return nil
}

func (f *fakeAssignmentRepo) FindByID(id uint) (*model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *assignment
	return &cp, nil
}

func (f *fakeAssignmentRepo) FindAllByCourse(courseID uint) ([]model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.CourseID == courseID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAssignmentRepo) FindSubmission(assignmentID uint, learnerID uuid.UUID) (*model.AssignmentSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.submissions {
		if s.AssignmentID == assignmentID && s.LearnerID == learnerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) FindSubmissionByID(id uint) (*model.AssignmentSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.submissions {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) AddSubmission(submission *model.AssignmentSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	submission.ID = uint(len(f.submissions) + 1)
	cp := *submission
	f.submissions = append(f.submissions, &cp)
	return nil
}

func (f *fakeAssignmentRepo) UpdateSubmission(submission *model.AssignmentSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.submissions {
		if s.ID == submission.ID {
			cp := *submission
			f.submissions[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) IncrementSubmissionStats(assignmentID uint, late bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[assignmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	assignment.TotalSubmissions++
	if late {
		assignment.LateSubmissions++
	} else {
		assignment.OnTimeSubmissions++
	}
	return nil
}

func (f *fakeAssignmentRepo) RecomputeAverageScore(assignmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[assignmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sum := 0.0
	count := 0
	for _, s := range f.submissions {
		if s.AssignmentID == assignmentID && s.GradeScore != nil {
			sum += *s.GradeScore
			count++
		}
	}
	if count == 0 {
		assignment.AverageScore = 0
		return nil
	}
	assignment.AverageScore = sum / float64(count)
	return nil
}
