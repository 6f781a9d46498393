package notify

import "go.uber.org/zap"

// Kind mirrors the toast levels the storefront shows.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notifier is the fire-and-forget user notification surface. A failed
// delivery is never an error; callers don't check anything.
type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier writes notifications to the process logger.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(kind Kind, message string) {
	switch kind {
	case KindError:
		n.log.Warn(message, zap.String("kind", string(kind)))
	default:
		n.log.Info(message, zap.String("kind", string(kind)))
	}
}

// Multi fans a notification out to several surfaces.
type Multi []Notifier

func (m Multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

// Discard drops everything. Used in tests.
type Discard struct{}

func (Discard) Notify(Kind, string) {}
