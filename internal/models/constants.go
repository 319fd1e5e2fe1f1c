// Package models defines the data types shared across the stockchat client.
package models

// DefaultEndpoint is the query endpoint used when no endpoint is configured
const DefaultEndpoint = "https://ukyai7smrnayjgyx5ayw2ium6i0jhufn.lambda-url.us-east-1.on.aws/query"

// Greeting is the assistant message every new session starts with
const Greeting = "Hi! I'm your stock assistant. Ask me about current or historical stock prices."

// Fallback is shown as the assistant reply whenever a turn fails,
// regardless of the underlying cause
const Fallback = "Sorry, there was an error. Please try again."

// DefaultHeaders returns the headers sent with every query request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "stockchat/0.1.0",
	}
}
