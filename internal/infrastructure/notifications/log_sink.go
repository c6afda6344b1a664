package notifications

import (
	"log"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase/interfaces"
)

// LogSink renders notifications into the service log. Callers that need the
// notifications back (the HTTP surface) read them off the charge report
// instead.

type LogSink struct{}

var _ interfaces.INotificationSink = (*LogSink)(nil)

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Notify(headline, detail string, severity entities.Severity) {
	log.Printf("[renewal][notify] severity=%s headline=%q detail=%q", severity, headline, detail)
}
