// Package connection is the memod-cli HTTP client.
//
// Every request carries an X-Request-ID so a failing call can be matched
// to the server's logs. Error bodies are surfaced as *APIError.
package connection
