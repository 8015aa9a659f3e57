// Package prompt fills a form interactively from the terminal. Each data
// key becomes one prompt, with the current value as the default and any
// pending validation error surfaced as help text; the collected answers
// flow back through Form.Fill. The Driver interface isolates the survey
// dependency so the flow is testable without a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formclient/pkg/form"
)

// ErrAborted is returned when the user interrupts the prompt flow.
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a free-text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver abstracts the terminal interaction so the fill flow can run
// against a scripted implementation in tests.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// Option configures a fill run.
type Option func(*config)

type config struct {
	driver Driver
}

// WithDriver replaces the default survey-backed driver.
func WithDriver(driver Driver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// Fill prompts for every data key on f and applies the answers through
// Form.Fill. Boolean fields prompt as confirmations; everything else as
// text. Interrupts surface as ErrAborted and leave the form unchanged.
func Fill(ctx context.Context, f *form.Form, opts ...Option) error {
	if f == nil {
		return errors.New("prompt: form is nil")
	}

	cfg := config{driver: &surveyDriver{}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	values := make(map[string]any, len(f.Keys()))
	for _, key := range f.Keys() {
		help := f.Errors().Get(key)

		switch current := f.Get(key).(type) {
		case bool:
			answer, err := cfg.driver.Confirm(ctx, ConfirmConfig{
				Message: key,
				Default: current,
				Help:    help,
			})
			if err != nil {
				return err
			}
			values[key] = answer
		default:
			answer, err := cfg.driver.Input(ctx, InputConfig{
				Message: key,
				Default: defaultText(current),
				Help:    help,
			})
			if err != nil {
				return err
			}
			values[key] = answer
		}
	}

	f.Fill(values)
	return nil
}

func defaultText(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

type surveyDriver struct{}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
