package model

// User is an identity value from the fixed registry. Users are created at
// startup and never mutated; name is unique within the registry.
type User struct {
	// Name is the display name and identity key.
	Name string `json:"name" db:"name"`

	// Avatar is a reference to the user's avatar image.
	Avatar string `json:"avatar" db:"avatar"`
}
