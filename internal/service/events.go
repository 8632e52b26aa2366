package service

// Marketplace event names pushed to websocket subscribers
const (
	EventCarCreated       = "car_created"
	EventCarStatusChanged = "car_status_changed"
	EventOrderCreated     = "order_created"
)

// Notifier fans marketplace events out to live subscribers. Implemented
// by the websocket hub; a nil Notifier disables notifications.
type Notifier interface {
	Notify(event string, payload interface{})
}
