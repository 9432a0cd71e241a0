// Package constants defines shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Saved-property event actions published to the event bus.
const (
	SavedPropertyActionSaved   = "saved"
	SavedPropertyActionUnsaved = "unsaved"
)
