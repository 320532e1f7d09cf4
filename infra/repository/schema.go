package repository

import (
	"fmt"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/user"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and accounts tables. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}, &account.Account{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	// sqlite cannot add constraints to an existing table.
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	m := db.Migrator()
	if !m.HasConstraint(&user.User{}, user.AccountsRelation) {
		if err := m.CreateConstraint(&user.User{}, user.AccountsRelation); err != nil {
			return fmt.Errorf("create accounts foreign key: %w", err)
		}
	}
	return nil
}
