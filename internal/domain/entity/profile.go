package entity

// Profile holds the public details of a user, keyed by lower-cased email.
type Profile struct {
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}
