package notify

import (
	"github.com/sirupsen/logrus"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

// LogNotifier is the notification surface for headless deployments: terminal
// outcomes land in the structured log instead of an operator-facing toast.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(kind domain.NotificationKind, message string) {
	entry := n.log.WithField("kind", string(kind))
	if kind == domain.NotifyError {
		entry.Error(message)
		return
	}
	entry.Info(message)
}
