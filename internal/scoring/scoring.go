// Package scoring maps a set of submitted answers and an answer key to a
// score. Deterministic, no side effects.
package scoring

import "math"

type Question struct {
	ID            uint
	CorrectAnswer string
	Points        int
}

type Answer struct {
	QuestionID uint
	Value      string
}

type AnswerResult struct {
	QuestionID   uint
	Value        string
	Correct      bool
	PointsEarned int
}

type Result struct {
	Answers      []AnswerResult
	Score        int
	TotalPoints  int
	CorrectCount int
	Percentage   int
}

// Score grades answers against questions using exact value equality. Every
// question produces exactly one AnswerResult, in question order; questions
// without a matching answer score zero. If the same question is answered more
// than once, the first answer wins.
func Score(questions []Question, answers []Answer) Result {
	byQuestion := make(map[uint]Answer, len(answers))
	for _, a := range answers {
		if _, ok := byQuestion[a.QuestionID]; !ok {
			byQuestion[a.QuestionID] = a
		}
	}

	res := Result{Answers: make([]AnswerResult, 0, len(questions))}
	for _, q := range questions {
		res.TotalPoints += q.Points

		ar := AnswerResult{QuestionID: q.ID}
		if a, ok := byQuestion[q.ID]; ok {
			ar.Value = a.Value
			if a.Value == q.CorrectAnswer {
				ar.Correct = true
				ar.PointsEarned = q.Points
			}
		}
		if ar.Correct {
			res.Score += ar.PointsEarned
			res.CorrectCount++
		}
		res.Answers = append(res.Answers, ar)
	}

	if res.TotalPoints > 0 {
		res.Percentage = int(math.Round(100 * float64(res.Score) / float64(res.TotalPoints)))
	}
	return res
}
