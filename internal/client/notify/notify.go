// Package notify is the user-visible notification sink: one short message
// per completed or failed operation, success or error, nothing sticky.
package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one emitted message. The ID is assigned by the sink.
type Notification struct {
	ID       string
	Severity Severity
	Message  string
}

// Notifier receives operation outcomes. Implementations decide how to
// present them (terminal line, log record, test buffer).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier renders notifications through the structured logger.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info(context.Background(), msg, "notification_id", uuid.NewString(), "severity", SeveritySuccess)
}

func (n *LogNotifier) Error(msg string) {
	n.log.Error(context.Background(), msg, "notification_id", uuid.NewString(), "severity", SeverityError)
}

// Recorder collects notifications in memory. Meant for tests.
type Recorder struct {
	Entries []Notification
}

func (r *Recorder) Success(msg string) {
	r.Entries = append(r.Entries, Notification{ID: uuid.NewString(), Severity: SeveritySuccess, Message: msg})
}

func (r *Recorder) Error(msg string) {
	r.Entries = append(r.Entries, Notification{ID: uuid.NewString(), Severity: SeverityError, Message: msg})
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Entries) == 0 {
		return Notification{}, false
	}
	return r.Entries[len(r.Entries)-1], true
}
