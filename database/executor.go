package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching rows
func (q *QueryBuilder[T]) All() ([]T, error) {
	ctx := q.ctx

	var data []T
	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// First executes the query and returns the first matching row, or
// (nil, nil) when no row matches.
func (q *QueryBuilder[T]) First() (*T, error) {
	ctx := q.ctx

	var data T
	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &data, nil
}

// Count returns the number of rows matching the query
func (q *QueryBuilder[T]) Count() (int, error) {
	ctx := q.ctx

	var model T
	query := q.db.NewSelect().Model(&model)
	query = q.applyWheres(query)

	var count int
	err := WithRetry(ctx, func() error {
		var countErr error
		count, countErr = query.Count(ctx)
		return countErr
	})
	return count, err
}

// Insert inserts a single row and scans database defaults back into it
func (q *QueryBuilder[T]) Insert(data *T) error {
	ctx := q.ctx

	return WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})
}

// Update applies the given column/value pairs to all rows matching the
// query and returns the number of rows affected.
func (q *QueryBuilder[T]) Update(values map[string]any) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("update requires at least one column")
	}
	if len(q.wheres) == 0 {
		return 0, fmt.Errorf("update requires at least one WHERE condition")
	}

	ctx := q.ctx

	var model T
	query := q.db.NewUpdate().Model(&model)
	for column, value := range values {
		query = query.Set("? = ?", bun.Ident(column), value)
	}
	query = q.applyWheresUpdate(query)

	var affected int64
	err := WithRetry(ctx, func() error {
		res, execErr := query.Exec(ctx)
		if execErr != nil {
			return execErr
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	return affected, err
}

// Delete removes all rows matching the query and returns the number of
// rows affected.
func (q *QueryBuilder[T]) Delete() (int64, error) {
	if len(q.wheres) == 0 {
		return 0, fmt.Errorf("delete requires at least one WHERE condition")
	}

	ctx := q.ctx

	var model T
	query := q.db.NewDelete().Model(&model)
	query = q.applyWheresDelete(query)

	var affected int64
	err := WithRetry(ctx, func() error {
		res, execErr := query.Exec(ctx)
		if execErr != nil {
			return execErr
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	return affected, err
}

func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	for _, relation := range q.relations {
		query = query.Relation(relation)
	}

	query = q.applyWheres(query)

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

func (q *QueryBuilder[T]) applyWheres(query *bun.SelectQuery) *bun.SelectQuery {
	for _, clause := range q.wheres {
		switch {
		case clause.IsRaw:
			query = query.Where(clause.RawSQL, clause.RawArgs...)
		case clause.Operator == "IN":
			query = query.Where("? IN (?)", bun.Ident(clause.Column), bun.In(clause.Value))
		default:
			query = query.Where(fmt.Sprintf("? %s ?", clause.Operator), bun.Ident(clause.Column), clause.Value)
		}
	}
	return query
}

func (q *QueryBuilder[T]) applyWheresUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, clause := range q.wheres {
		switch {
		case clause.IsRaw:
			query = query.Where(clause.RawSQL, clause.RawArgs...)
		case clause.Operator == "IN":
			query = query.Where("? IN (?)", bun.Ident(clause.Column), bun.In(clause.Value))
		default:
			query = query.Where(fmt.Sprintf("? %s ?", clause.Operator), bun.Ident(clause.Column), clause.Value)
		}
	}
	return query
}

func (q *QueryBuilder[T]) applyWheresDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, clause := range q.wheres {
		switch {
		case clause.IsRaw:
			query = query.Where(clause.RawSQL, clause.RawArgs...)
		case clause.Operator == "IN":
			query = query.Where("? IN (?)", bun.Ident(clause.Column), bun.In(clause.Value))
		default:
			query = query.Where(fmt.Sprintf("? %s ?", clause.Operator), bun.Ident(clause.Column), clause.Value)
		}
	}
	return query
}
