package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	q := NewQuery(WithID(7), WithUserID(uint(3)), OrderBy("label", true), Include("Accounts"))

	assert.Equal(t, []Condition{{Column: "id", Value: 7}, {Column: "user_id", Value: uint(3)}}, q.Conditions)
	assert.Equal(t, []Order{{Column: "label", Desc: true}}, q.Orders)
	assert.Equal(t, []string{"Accounts"}, q.Includes)
	assert.NoError(t, q.Validate())
}

func TestNewQuery_Empty(t *testing.T) {
	q := NewQuery()
	assert.Empty(t, q.Conditions)
	assert.Empty(t, q.Orders)
	assert.Empty(t, q.Includes)
	assert.NoError(t, q.Validate())
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name string
		opt  QueryOption
	}{
		{"condition", Where("id; DROP TABLE users", 1)},
		{"order", OrderBy("amount desc, id", false)},
		{"relation", Include("Accounts.User")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewQuery(tt.opt).Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidQuery))
		})
	}
}
