package dto

import "github.com/amirasaad/banking/pkg/domain/user"

// UserUpsert is the input of an upsert. A zero ID creates a new user.
type UserUpsert struct {
	ID         int    `json:"userId,omitempty"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

// UserView is a user without accounts.
type UserView struct {
	ID         int    `json:"id"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

// UserDetail is a user together with the accounts it owns.
type UserDetail struct {
	UserView
	Accounts []AccountView `json:"accounts"`
}

// NewUserView projects a user entity without its accounts.
func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:         u.ID,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
	}
}

// NewUserDetail projects a user entity including its accounts.
func NewUserDetail(u *user.User) *UserDetail {
	return &UserDetail{
		UserView: *NewUserView(u),
		Accounts: AccountViews(u.Accounts),
	}
}
