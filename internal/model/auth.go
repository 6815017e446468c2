package model

// AuthResult is returned by a successful signup or signin.
type AuthResult struct {
	User        User
	AccessToken string
}
