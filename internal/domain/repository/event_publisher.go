package repository

// EventPublisher defines the interface for the realtime broadcast channel.
// Delivery reaches only the sessions connected at publish time; there is no
// persistence or replay.
type EventPublisher interface {
	Publish(event string, payload interface{})
}
