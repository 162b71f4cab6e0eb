package cli

import (
	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/storage"
	"github.com/walkiapp/walki/internal/store"
	"github.com/walkiapp/walki/internal/streak"
)

// Context carries shared dependencies into every command.
type Context struct {
	Store storage.Provider
	Debug bool
}

// Demo loads the provider and hydrates the demo store.
func (c *Context) Demo() (*store.DemoStore, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return store.NewDemoStore(c.Store), nil
}

// Quiz loads the provider and hydrates the quiz store over the built-in
// question set.
func (c *Context) Quiz() (*store.QuizStore, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return store.NewQuizStore(c.Store, data.QuizQuestions), nil
}

// RiskLabel maps a streak risk level to its display string.
func RiskLabel(r streak.Risk) string {
	switch r {
	case streak.RiskHigh:
		return "HIGH - your streak is in danger"
	case streak.RiskMedium:
		return "medium - keep an eye on the clock"
	default:
		return "low - you're on track"
	}
}
