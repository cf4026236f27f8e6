package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/inventory"
)

// InventoryRow is a stored inventory item with the shortage computed at
// save time.
type InventoryRow struct {
	ID       int64
	Item     inventory.Item
	Shortage float64
}

// LoadInventory returns all stored items in insertion order.
func (s *Store) LoadInventory() ([]InventoryRow, error) {
	if s == nil || s.db == nil {
		return nil, errNoStore
	}

	rows, err := s.db.Query(
		"SELECT id, product_name, stock, required, shortage FROM inventory_items ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inventory: %w", err)
	}
	defer rows.Close()

	var out []InventoryRow
	for rows.Next() {
		var r InventoryRow
		var stock, required float64
		if err := rows.Scan(&r.ID, &r.Item.Name, &stock, &required, &r.Shortage); err != nil {
			return nil, fmt.Errorf("storage: cannot scan inventory row: %w", err)
		}
		r.Item.Stock = inventory.Quantity(stock)
		r.Item.Required = inventory.Quantity(required)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveInventory replaces the whole inventory with items in one transaction.
// On any failure the previous contents are kept.
func (s *Store) SaveInventory(items []inventory.Item) (err error) {
	if s == nil || s.db == nil {
		return errNoStore
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	if _, err = tx.Exec("DELETE FROM inventory_items"); err != nil {
		return fmt.Errorf("storage: cannot clear inventory: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO inventory_items (product_name, stock, required, shortage) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err = stmt.Exec(it.Name, float64(it.Stock), float64(it.Required), it.Shortage()); err != nil {
			return fmt.Errorf("storage: cannot insert %q: %w", it.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit inventory: %w", err)
	}
	return nil
}

// AddInventoryItem appends one item, keeping the existing rows.
func (s *Store) AddInventoryItem(it inventory.Item) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errNoStore
	}

	res, err := s.db.Exec(
		"INSERT INTO inventory_items (product_name, stock, required, shortage) VALUES (?, ?, ?, ?)",
		it.Name, float64(it.Stock), float64(it.Required), it.Shortage(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot insert %q: %w", it.Name, err)
	}
	return res.LastInsertId()
}
