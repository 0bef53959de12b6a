package database

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// RawQuery executes a raw SQL query and scans the results into a slice of T
func RawQuery[T any](db *DB, ctx context.Context, query string, args ...any) ([]T, error) {
	var data []T
	err := WithRetry(ctx, func() error {
		return db.NewRaw(query, args...).Scan(ctx, &data)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// RawExec executes a raw SQL statement that returns no rows
func RawExec(db *DB, ctx context.Context, query string, args ...any) error {
	return WithRetry(ctx, func() error {
		_, err := db.ExecContext(ctx, query, args...)
		return err
	})
}

// Transaction runs fn inside a database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func Transaction(db *DB, ctx context.Context, fn func(tx bun.Tx) error) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(tx)
	})
}

// Pagination describes a requested result page (1-based)
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// PaginatedResult wraps one page of results with paging metadata
type PaginatedResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate executes the query twice: once for the total count and once
// for the requested page.
func Paginate[T any](q *QueryBuilder[T], p Pagination) (*PaginatedResult[T], error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}

	total, err := q.Count()
	if err != nil {
		return nil, err
	}

	items, err := q.Limit(p.PerPage).Offset((p.Page - 1) * p.PerPage).All()
	if err != nil {
		return nil, err
	}

	totalPages := (total + p.PerPage - 1) / p.PerPage

	return &PaginatedResult[T]{
		Items:      items,
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// FindByID fetches a single row by primary key, or (nil, nil) when the
// row does not exist.
func FindByID[T any](db *DB, ctx context.Context, id any) (*T, error) {
	return Query[T](db).Context(ctx).Where("id", id).First()
}

// Create inserts a single row and scans database defaults back into it
func Create[T any](db *DB, ctx context.Context, data *T) error {
	return Query[T](db).Context(ctx).Insert(data)
}
