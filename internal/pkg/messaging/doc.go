// Package messaging provides a broker-agnostic API for publishing messages.
//
// The goal is to keep business code independent from the underlying messaging
// system. Use cases depend on the Publisher interface; the concrete NATS
// implementation lives here and is selected by driver name at startup.
package messaging
