// Package constants contains string values shared between configuration and implementations.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Recommendation tie-break policies
const (
	TieBreakStable = "stable"
	TieBreakRandom = "random"
)

// Roles carried in access tokens
const (
	RoleDiner = "diner"
)
