package promptsx

import (
	"github.com/orochaa/go-clack/prompts"
)

// SpinnerStatus shows progress with a terminal spinner.
type SpinnerStatus struct {
	spinner *prompts.SpinnerController
}

func (s *SpinnerStatus) Start(label string) {
	s.spinner = prompts.Spinner(prompts.SpinnerOptions{})
	s.spinner.Start(label)
}

func (s *SpinnerStatus) Stop(message string) {
	s.stop(message, 0)
}

func (s *SpinnerStatus) Fail(message string) {
	s.stop(message, 1)
}

func (s *SpinnerStatus) stop(message string, code int) {
	if s.spinner == nil {
		return
	}
	s.spinner.Stop(message, code)
	s.spinner = nil
}

// NopStatus reports nothing.
type NopStatus struct{}

func (NopStatus) Start(string) {}
func (NopStatus) Stop(string)  {}
func (NopStatus) Fail(string)  {}
