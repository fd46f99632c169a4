// Package prompt abstracts the interactive suspension points of the CLI:
// text input, yes/no confirmation, and grouped multi-select. The pipeline
// only sees the Asker interface, so every flow can run against canned
// answers in tests.
package prompt

import "errors"

// ErrCancelled is returned when the operator backs out of a prompt
// (esc/ctrl+c). Callers treat it as a deliberate no-op, not an error.
var ErrCancelled = errors.New("cancelled")

// TextOptions configures a single-line text prompt. An empty submission
// takes Default. Validate, when set, is re-run until it accepts the value.
type TextOptions struct {
	Prompt   string
	Default  string
	Validate func(string) error
}

// Choice is one row of a multi-select. A Choice with an empty Value is a
// non-selectable group separator.
type Choice struct {
	Label   string
	Value   string
	Checked bool
}

// MultiSelectOptions configures a checkbox prompt. Validate sees the
// selected values and blocks confirmation until it accepts them.
type MultiSelectOptions struct {
	Prompt   string
	Choices  []Choice
	Validate func(selected []string) error
}

// Asker is the prompting capability used by the ingestion pipeline.
type Asker interface {
	Text(opts TextOptions) (string, error)
	Confirm(prompt string, def bool) (bool, error)
	MultiSelect(opts MultiSelectOptions) ([]string, error)
}

// Scripted is an Asker fed from canned answers, consumed in order. Text
// answers of "" take the prompt's default. Validators still run, so a
// script that supplies an invalid answer surfaces the validation error
// instead of silently passing.
type Scripted struct {
	TextAnswers []string
	Confirms    []bool
	Selections  [][]string
}

func (s *Scripted) Text(opts TextOptions) (string, error) {
	if len(s.TextAnswers) == 0 {
		return "", errors.New("scripted asker: no text answers left")
	}
	answer := s.TextAnswers[0]
	s.TextAnswers = s.TextAnswers[1:]
	if answer == "" {
		answer = opts.Default
	}
	if opts.Validate != nil {
		if err := opts.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (s *Scripted) Confirm(prompt string, def bool) (bool, error) {
	if len(s.Confirms) == 0 {
		return false, errors.New("scripted asker: no confirm answers left")
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

func (s *Scripted) MultiSelect(opts MultiSelectOptions) ([]string, error) {
	if len(s.Selections) == 0 {
		return nil, errors.New("scripted asker: no selections left")
	}
	selected := s.Selections[0]
	s.Selections = s.Selections[1:]
	if opts.Validate != nil {
		if err := opts.Validate(selected); err != nil {
			return nil, err
		}
	}
	return selected, nil
}
