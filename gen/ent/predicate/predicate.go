// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Admin is the predicate function for admin builders.
type Admin func(*sql.Selector)

// Bid is the predicate function for bid builders.
type Bid func(*sql.Selector)

// MandiReport is the predicate function for mandireport builders.
type MandiReport func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Shop is the predicate function for shop builders.
type Shop func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
