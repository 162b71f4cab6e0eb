// Package quiz holds the persona quiz commands: a question-at-a-time answer
// flow whose results retarget notification selection.
package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/store"
)

type QuizCmd struct {
	Start   StartCmd   `cmd:"" help:"Start the persona quiz (or show where you left off)."`
	Answer  AnswerCmd  `cmd:"" help:"Answer the current question."`
	Results ResultsCmd `cmd:"" help:"Score the quiz and apply the persona mix."`
	Reset   ResetCmd   `cmd:"" help:"Discard quiz progress and results."`
}

type StartCmd struct{}

func (c *StartCmd) Run(ctx *cli.Context) error {
	qs, err := ctx.Quiz()
	if err != nil {
		return err
	}

	qs.Start()
	printQuestion(qs)
	return nil
}

type AnswerCmd struct {
	Option string `arg:"" help:"Option number (1-4) or option id."`
}

func (c *AnswerCmd) Run(ctx *cli.Context) error {
	qs, err := ctx.Quiz()
	if err != nil {
		return err
	}

	index := qs.Progress().CurrentQuestionIndex
	question := qs.CurrentQuestion()

	optionID := c.Option
	if n, err := strconv.Atoi(c.Option); err == nil {
		if n < 1 || n > len(question.Options) {
			return fmt.Errorf("option %d out of range, pick 1-%d", n, len(question.Options))
		}
		optionID = question.Options[n-1].ID
	}

	if err := qs.SetAnswer(index, optionID); err != nil {
		return err
	}

	if qs.AnsweredCount() == len(qs.Questions()) {
		fmt.Println("All questions answered. Run 'walki quiz results' to see your persona mix.")
		return nil
	}

	qs.Next()
	printQuestion(qs)
	return nil
}

type ResultsCmd struct{}

func (c *ResultsCmd) Run(ctx *cli.Context) error {
	qs, err := ctx.Quiz()
	if err != nil {
		return err
	}

	results, err := qs.Complete()
	if err != nil {
		return err
	}

	fmt.Println("Your persona mix:")
	for _, id := range models.PersonaIds {
		name := string(id)
		if persona, ok := data.PersonaByID(id); ok {
			name = persona.Name
		}
		fmt.Printf("  %-10s %3d%%  %s\n", name, results.Percentages[id], bar(results.Percentages[id]))
	}

	if persona, ok := data.PersonaByID(results.TopPersona); ok {
		fmt.Printf("\nTop persona: %s — %s\n", persona.Name, persona.Title)
	}

	// The quiz outcome drives which voices you hear going forward.
	demo := store.NewDemoStore(ctx.Store)
	demo.ApplyQuizResults(*results)
	fmt.Println("Notification voices retargeted to your mix.")

	return nil
}

func bar(percent int) string {
	filled := percent / 5
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	qs, err := ctx.Quiz()
	if err != nil {
		return err
	}

	if err := qs.Reset(); err != nil {
		return err
	}
	fmt.Println("Quiz progress cleared.")
	return nil
}

func printQuestion(qs *store.QuizStore) {
	progress := qs.Progress()
	question := qs.CurrentQuestion()

	fmt.Printf("Question %d of %d: %s\n", progress.CurrentQuestionIndex+1, len(qs.Questions()), question.Question)
	for i, option := range question.Options {
		marker := " "
		if answer := progress.Answers[progress.CurrentQuestionIndex]; answer != nil && *answer == option.ID {
			marker = "✓"
		}
		fmt.Printf("  %s %d. %s\n", marker, i+1, option.Text)
	}
	fmt.Println("\nAnswer with 'walki quiz answer <number>'.")
}
