// Package web defines common components for a web application.
package web

// JSONMessage provides the type for explicit json encoded message responses.
// Every non-2xx response body is a single message field.
type JSONMessage struct {
	Message string `json:"message"`
}

// Error wraps a given err into a json friendly struct.
func Error(err error) JSONMessage {
	return JSONMessage{Message: err.Error()}
}

// Message wraps a given string into a json friendly struct.
func Message(msg string) JSONMessage {
	return JSONMessage{Message: msg}
}
