package src

import (
	"context"
	"errors"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Protocol-Lattice/lattice-params/src/params"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// InputConfig configures one text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver asks for field values outside the full-screen UI. Tests swap
// in a scripted driver.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a PromptDriver backed by terminal prompts.
func NewSurveyDriver() PromptDriver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return out, nil
}

// RunHeadless walks the editor's fields in order, asking for each string
// parameter with its current value as the default, and returns the resulting
// snapshot. Fields of other types are skipped.
func RunHeadless(ctx context.Context, editor *params.Editor, driver PromptDriver) (params.Model, error) {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	for _, p := range editor.Params() {
		if p.Type != params.TypeString {
			log.Printf("[WARN] skipping parameter %d (%s): unsupported type %q", p.ID, p.Name, p.Type)
			continue
		}
		value, err := driver.Input(ctx, InputConfig{
			Message: p.Name,
			Default: editor.FieldValue(p.ID),
		})
		if err != nil {
			return params.Model{}, err
		}
		editor.SetFieldValue(p.ID, value)
	}
	return editor.Snapshot(), nil
}
