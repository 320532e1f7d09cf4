package repository

import (
	"fmt"
	"regexp"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Condition is a single equality predicate.
type Condition struct {
	Column string
	Value  any
}

// Order describes one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// Query is the typed filter a Find call is built from: equality conditions
// joined by AND, ordering and eager loads.
type Query struct {
	Conditions []Condition
	Orders     []Order
	Includes   []string
}

// QueryOption mutates a Query.
type QueryOption func(*Query)

// NewQuery applies opts to an empty Query.
func NewQuery(opts ...QueryOption) Query {
	var q Query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Validate rejects column and relation names that are not plain identifiers.
func (q Query) Validate() error {
	for _, c := range q.Conditions {
		if !identifier.MatchString(c.Column) {
			return fmt.Errorf("%w: column %q", ErrInvalidQuery, c.Column)
		}
	}
	for _, o := range q.Orders {
		if !identifier.MatchString(o.Column) {
			return fmt.Errorf("%w: order column %q", ErrInvalidQuery, o.Column)
		}
	}
	for _, rel := range q.Includes {
		if !identifier.MatchString(rel) {
			return fmt.Errorf("%w: relation %q", ErrInvalidQuery, rel)
		}
	}
	return nil
}

// WithID filters on the primary key.
func WithID[K Key](id K) QueryOption {
	return Where("id", id)
}

// WithUserID filters on the owning user.
func WithUserID[K Key](id K) QueryOption {
	return Where("user_id", id)
}

// Where adds an equality condition on column.
func Where(column string, value any) QueryOption {
	return func(q *Query) {
		q.Conditions = append(q.Conditions, Condition{Column: column, Value: value})
	}
}

// OrderBy sorts the result by column.
func OrderBy(column string, desc bool) QueryOption {
	return func(q *Query) {
		q.Orders = append(q.Orders, Order{Column: column, Desc: desc})
	}
}

// Include eager-loads the named relation, e.g. "Accounts".
func Include(relation string) QueryOption {
	return func(q *Query) {
		q.Includes = append(q.Includes, relation)
	}
}
