package user

import (
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user does not exist: %w", domain.ErrNotFound)
)

// TableName is the table holding users.
const TableName = "users"

// AccountsRelation names the has-many relation for eager loading.
const AccountsRelation = "Accounts"

// User owns zero or more accounts. Accounts do not outlive their user.
type User struct {
	ID         int               `gorm:"primaryKey;autoIncrement" json:"id"`
	GivenName  string            `gorm:"size:100" json:"givenName"`
	FamilyName string            `gorm:"size:100" json:"familyName"`
	Accounts   []account.Account `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"accounts,omitempty"`
}

// TableName implements repository.Entity.
func (User) TableName() string {
	return TableName
}

// New creates a user that has not been persisted yet.
func New(givenName, familyName string) *User {
	return &User{
		GivenName:  givenName,
		FamilyName: familyName,
	}
}

// Rename overwrites both name fields.
func (u *User) Rename(givenName, familyName string) {
	u.GivenName = givenName
	u.FamilyName = familyName
}
