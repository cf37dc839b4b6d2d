// Package service contains the application use cases. It orchestrates
// interactions between domain objects and the persistence interfaces defined
// in internal/store, and is the only layer HTTP handlers talk to.
//
// Services receive their dependencies through constructor injection and
// return domain errors that the API layer maps to HTTP status codes.
package service
