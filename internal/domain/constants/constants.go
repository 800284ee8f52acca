// Package constants holds configuration keywords shared between infra constructors.
package constants

// Store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names, shared with the mobile client.
const (
	CollectionAddresses = "addresses"
	CollectionComments  = "comments"
	CollectionUsers     = "users"
)
