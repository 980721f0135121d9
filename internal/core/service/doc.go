// Package service provides domain services for tasktrack.
//
// Services implement use cases by coordinating storage operations
// on domain models. They define interfaces for storage dependencies,
// keeping the core logic independent of any concrete backend.
package service
