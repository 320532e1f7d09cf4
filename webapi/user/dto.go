package user

// UpsertUserRequest is the body of PUT /user. Omitting userId creates a user.
type UpsertUserRequest struct {
	UserID     int    `json:"userId" validate:"gte=0"`
	GivenName  string `json:"givenName" validate:"max=100"`
	FamilyName string `json:"familyName" validate:"max=100"`
}
