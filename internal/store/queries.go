package store

// Warehouse queries
const (
	queryMaxWarehouseID = `SELECT COALESCE(MAX(TRY_CAST(id AS BIGINT)), 0) FROM warehouses`

	queryWarehouseSequence = `SELECT COALESCE(MAX(last_value), 0) FROM id_sequences WHERE name = 'warehouses'`

	queryBumpWarehouseSequence = `
		INSERT INTO id_sequences (name, last_value)
		VALUES ('warehouses', ?)
		ON CONFLICT (name) DO UPDATE SET
			last_value = EXCLUDED.last_value`

	queryInsertWarehouse = `
		INSERT INTO warehouses (id, name, created_at, modified_at, modified_by)
		VALUES (?, ?, ?, ?, ?)`

	querySeedWarehouse = `
		INSERT INTO warehouses (id, name, created_at, modified_at, modified_by)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM warehouses WHERE id = ? OR name = ?)`

	queryUpdateWarehouse = `
		UPDATE warehouses SET name = ?, modified_at = ?, modified_by = ?
		WHERE id = ?`

	queryDeleteWarehouse = `DELETE FROM warehouses WHERE id = ?`

	queryWarehouseExists = `SELECT COUNT(*) FROM warehouses WHERE id = ?`

	queryWarehouseName = `SELECT name FROM warehouses WHERE id = ?`

	queryCountProductsInWarehouse = `SELECT COUNT(*) FROM products WHERE warehouse_id = ?`

	queryDeleteProductsInWarehouse = `DELETE FROM products WHERE warehouse_id = ?`
)

// Product queries
const (
	queryProductExists = `SELECT COUNT(*) FROM products WHERE id = ?`

	queryInsertProduct = `
		INSERT INTO products (id, name, price, quantity, department, warehouse_id, created_at, modified_at, modified_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateProduct = `
		UPDATE products SET
			name = ?,
			price = ?,
			quantity = ?,
			department = ?,
			warehouse_id = ?,
			modified_at = ?,
			modified_by = ?
		WHERE id = ?`

	queryDeleteProduct = `DELETE FROM products WHERE id = ?`
)

// User queries
const (
	queryGetUser = `
		SELECT name, password_hash, role, COALESCE(last_login, '')
		FROM users WHERE lower(name) = lower(?)`

	queryCountUsersByName = `SELECT COUNT(*) FROM users WHERE lower(name) = lower(?)`

	queryInsertUser = `
		INSERT INTO users (name, password_hash, role)
		VALUES (?, ?, ?)`

	queryTouchLastLogin = `UPDATE users SET last_login = ? WHERE lower(name) = lower(?)`
)
