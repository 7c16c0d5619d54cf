// Package responses defines the JSON payloads returned by the API and the
// helpers that write them.
package responses
