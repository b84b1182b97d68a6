package usecasecontract

import "github.com/kartavyango/sahaaya/internal/domain/entity"

// IRealtimePublisher pushes a freshly created notification to the
// recipient's live connections, if any. Best effort; never blocks.
type IRealtimePublisher interface {
	Publish(userID string, n *entity.Notification)
}
