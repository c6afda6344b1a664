package interfaces

import "renewal_automation/internal/domain/entities"

//go:generate mockgen -source=notification_sink_interface.go -destination=mocks/notification_sink_mock.go -package=mock_interfaces

// INotificationSink receives one notification per terminal charge state
// (validation rejection, transport error, business failure, success).
type INotificationSink interface {
	Notify(headline, detail string, severity entities.Severity)
}
