package store

import (
	"fmt"
	"time"

	"github.com/walkiapp/walki/internal/logger"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/scoring"
	"github.com/walkiapp/walki/internal/storage"
)

// QuizStore tracks a persona quiz in flight: one nullable answer slot per
// question, the cursor, and the last completed results.
type QuizStore struct {
	provider  storage.Provider
	questions []models.QuizQuestion
	progress  models.QuizProgress
}

// NewQuizStore hydrates quiz progress from the provider. A stored blob that
// doesn't match the current question set is clamped into shape: the cursor
// pulled into range, the answer slots padded or truncated to the question
// count.
func NewQuizStore(provider storage.Provider, questions []models.QuizQuestion) *QuizStore {
	s := &QuizStore{
		provider:  provider,
		questions: questions,
	}
	s.hydrate()
	return s
}

func (s *QuizStore) hydrate() {
	stored, found, err := s.provider.GetQuizProgress()
	if err != nil {
		logger.Warn("could not load quiz progress, starting fresh", "error", err)
	}
	if err != nil || !found || stored.Answers == nil {
		s.progress = s.emptyProgress()
		return
	}

	total := len(s.questions)
	answers := stored.Answers
	if len(answers) > total {
		answers = answers[:total]
	}
	for len(answers) < total {
		answers = append(answers, nil)
	}
	stored.Answers = answers

	if stored.CurrentQuestionIndex < 0 {
		stored.CurrentQuestionIndex = 0
	}
	if stored.CurrentQuestionIndex > total-1 {
		stored.CurrentQuestionIndex = total - 1
	}

	if !stored.HasStarted {
		for _, answer := range answers {
			if answer != nil {
				stored.HasStarted = true
				break
			}
		}
		stored.HasStarted = stored.HasStarted || stored.IsComplete
	}

	s.progress = stored
}

func (s *QuizStore) emptyProgress() models.QuizProgress {
	return models.QuizProgress{
		Answers: make([]*string, len(s.questions)),
	}
}

// Progress returns the current quiz progress snapshot.
func (s *QuizStore) Progress() models.QuizProgress {
	return s.progress
}

// Questions returns the question set this store was built over.
func (s *QuizStore) Questions() []models.QuizQuestion {
	return s.questions
}

// CurrentQuestion returns the question under the cursor.
func (s *QuizStore) CurrentQuestion() models.QuizQuestion {
	return s.questions[s.progress.CurrentQuestionIndex]
}

// AnsweredCount returns how many answer slots are filled.
func (s *QuizStore) AnsweredCount() int {
	count := 0
	for _, answer := range s.progress.Answers {
		if answer != nil {
			count++
		}
	}
	return count
}

// Start marks the quiz as begun without touching any answers.
func (s *QuizStore) Start() {
	s.progress.HasStarted = true
	s.persist()
}

// SetAnswer records the chosen option for a question. The option must belong
// to that question.
func (s *QuizStore) SetAnswer(questionIndex int, optionID string) error {
	if questionIndex < 0 || questionIndex >= len(s.questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}

	valid := false
	for _, option := range s.questions[questionIndex].Options {
		if option.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("option %q does not belong to question %q", optionID, s.questions[questionIndex].ID)
	}

	answer := optionID
	s.progress.Answers[questionIndex] = &answer
	s.progress.HasStarted = true
	s.persist()
	return nil
}

// Next advances the cursor, saturating at the last question.
func (s *QuizStore) Next() {
	if s.progress.CurrentQuestionIndex < len(s.questions)-1 {
		s.progress.CurrentQuestionIndex++
	}
	s.persist()
}

// Previous moves the cursor back, saturating at the first question.
func (s *QuizStore) Previous() {
	if s.progress.CurrentQuestionIndex > 0 {
		s.progress.CurrentQuestionIndex--
	}
	s.persist()
}

// Complete scores the quiz. It refuses to run until every question has an
// answer; a completed quiz can be completed again after a retake, replacing
// the results wholesale.
func (s *QuizStore) Complete() (*models.QuizResults, error) {
	answers := make([]string, 0, len(s.questions))
	for _, answer := range s.progress.Answers {
		if answer == nil {
			continue
		}
		answers = append(answers, *answer)
	}
	if len(answers) != len(s.questions) {
		return nil, fmt.Errorf("quiz incomplete: %d of %d questions answered", len(answers), len(s.questions))
	}

	results := scoring.CalculateQuizResults(s.questions, answers)

	s.progress.IsComplete = true
	s.progress.HasStarted = true
	s.progress.CompletedAt = results.Timestamp.Format(time.RFC3339)
	s.progress.Results = &results
	s.persist()

	return &results, nil
}

// Reset clears the stored blob and starts the quiz over.
func (s *QuizStore) Reset() error {
	if err := s.provider.ClearQuizProgress(); err != nil {
		return err
	}
	s.progress = s.emptyProgress()
	return nil
}

func (s *QuizStore) persist() {
	if err := s.provider.SaveQuizProgress(s.progress); err != nil {
		logger.Error("could not persist quiz progress", "error", err)
	}
}
