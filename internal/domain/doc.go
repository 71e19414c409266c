// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (kudos.go, member.go, errors.go) hold shared types and
// cross-cutting contracts. No implementation code lives here; keeping the
// interfaces next to their types avoids circular imports between the kudos
// service, the storage adapters, and the Slack adapter.
package domain
