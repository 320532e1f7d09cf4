package account

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Scale is the number of fractional digits a balance or amount may carry.
const Scale = 4

// Balance is an exact amount of money as stored on an account.
// sqlite would give a decimal column NUMERIC affinity and read it back as a
// float, so the column is TEXT there and numeric everywhere else.
type Balance struct {
	decimal.Decimal
}

// NewBalance wraps d.
func NewBalance(d decimal.Decimal) Balance {
	return Balance{Decimal: d}
}

// GormDBDataType implements schema.GormDataTypeInterface per dialect.
func (Balance) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return fmt.Sprintf("numeric(20,%d)", Scale)
}

// FitsScale reports whether d has at most Scale fractional digits.
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}
