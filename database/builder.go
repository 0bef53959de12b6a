package database

import (
	"context"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db  *DB
	ctx context.Context

	// Query clauses
	wheres    []*WhereClause
	orders    []*OrderClause
	limitVal  *int
	offsetVal *int

	// Relations to preload
	relations []string
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:        db,
		ctx:       context.Background(),
		wheres:    []*WhereClause{},
		orders:    []*OrderClause{},
		relations: []string{},
	}
}

// Context sets the context for the query
func (q *QueryBuilder[T]) Context(ctx context.Context) *QueryBuilder[T] {
	q.ctx = ctx
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
	})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IN",
		Value:    values,
	})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  sql,
		RawArgs: args,
	})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation specifies a relation to preload
func (q *QueryBuilder[T]) Relation(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}
