// repositories/mysql/reference_repo.go
// Repo data referensi admin: customer / komponen / supplier
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ReferenceRepo struct{ DB *sql.DB }

type CustomerComponent struct {
	CustomerName  string `json:"customerName"`
	ComponentName string `json:"componentName"`
	SupplierName  string `json:"supplierName,omitempty"`
}

// ListCustomers mengambil pasangan customer/komponen unik dari admin_entries.
func (r *ReferenceRepo) ListCustomers(ctx context.Context) ([]CustomerComponent, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	const q = `
		SELECT customer_name, component_name, MAX(supplier_name)
		FROM admin_entries
		GROUP BY customer_name, component_name
		ORDER BY customer_name, component_name`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var out []CustomerComponent
	for rows.Next() {
		var (
			c        CustomerComponent
			supplier sql.NullString
		)
		if err := rows.Scan(&c.CustomerName, &c.ComponentName, &supplier); err != nil {
			return nil, err
		}
		c.SupplierName = supplier.String
		out = append(out, c)
	}
	return out, rows.Err()
}
