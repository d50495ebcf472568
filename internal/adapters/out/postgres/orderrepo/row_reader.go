package orderrepo

import (
	"context"
	"database/sql"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"

	"gorm.io/gorm"
)

const activeOrderRowsQuery = `
	SELECT
		o.id,
		o.order_number,
		o.order_type,
		o.status,
		o.customer_name,
		o.table_number,
		o.created_at,
		i.id,
		i.name,
		i.quantity,
		i.modifiers,
		i.special_instructions
	FROM orders o
	LEFT JOIN order_items i ON i.order_id = o.id
	WHERE o.status != ?
	ORDER BY o.created_at DESC, o.id ASC, i.id ASC
`

// GormActiveOrderRowReader implements ports.ActiveOrderRowReader.
type GormActiveOrderRowReader struct {
	db *gorm.DB
}

func NewGormActiveOrderRowReader(db *gorm.DB) *GormActiveOrderRowReader {
	return &GormActiveOrderRowReader{db: db}
}

// ListActiveRows reads the display join. Done orders are never returned.
func (r *GormActiveOrderRowReader) ListActiveRows(ctx context.Context) ([]services.JoinedRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(activeOrderRowsQuery, order.Done.String()).Rows()
	if err != nil {
		return nil, mapError("list active orders", err)
	}
	defer rows.Close()

	result := make([]services.JoinedRow, 0)
	for rows.Next() {
		var (
			row          services.JoinedRow
			customerName sql.NullString
			tableNumber  sql.NullString
			itemID       sql.NullInt64
			itemName     sql.NullString
			quantity     sql.NullInt64
			modifiers    sql.NullString
			instructions sql.NullString
		)

		err = rows.Scan(
			&row.OrderID,
			&row.OrderNumber,
			&row.OrderType,
			&row.Status,
			&customerName,
			&tableNumber,
			&row.CreatedAt,
			&itemID,
			&itemName,
			&quantity,
			&modifiers,
			&instructions,
		)
		if err != nil {
			return nil, mapError("scan active order row", err)
		}

		row.CustomerName = nullString(customerName)
		row.TableNumber = nullString(tableNumber)
		row.ItemName = nullString(itemName)
		row.ItemModifiers = nullString(modifiers)
		row.SpecialInstructions = nullString(instructions)
		if itemID.Valid {
			id := itemID.Int64
			row.ItemID = &id
		}
		if quantity.Valid {
			q := int(quantity.Int64)
			row.ItemQuantity = &q
		}

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, mapError("list active orders", err)
	}

	return result, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
