// Package store defines the persistence interfaces for users and tasks,
// along with the sentinel errors implementations translate driver failures
// into. Concrete implementations live in internal/platform.
package store
