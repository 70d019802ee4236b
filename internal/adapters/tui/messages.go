package tui

import "time"

// MsgInitSteps initializes the step list.
type MsgInitSteps struct {
	Steps []string
}

// MsgStepStart marks a step as running.
type MsgStepStart struct {
	Name      string
	StartTime time.Time
}

// MsgStepLog carries a progress message for a step.
type MsgStepLog struct {
	Name string
	Line string
}

// MsgStepComplete marks a step as finished.
type MsgStepComplete struct {
	Name    string
	EndTime time.Time
	Skipped bool
	Err     error
}
