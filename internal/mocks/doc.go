// Package mocks provides in-memory store implementations and mock services
// for testing without a live database.
package mocks
