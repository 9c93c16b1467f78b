package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/hanikdev/storefront-golang/internal/models"
)

// MySQL is a Store over a database/sql connection pool. Order line items,
// the buyer snapshot, and bank details are stored as JSON columns; they are
// point-in-time copies, never joined back to live rows.
type MySQL struct {
	db *sql.DB
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

// InitSchema creates the three tables if they do not exist yet.
func (s *MySQL) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			phone VARCHAR(64) NOT NULL DEFAULT '',
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME(6) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL DEFAULT '',
			description TEXT NOT NULL,
			price DOUBLE NOT NULL,
			image TEXT,
			stock INT NOT NULL DEFAULT 0,
			discount DOUBLE NOT NULL DEFAULT 0,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			user_snapshot JSON,
			items JSON NOT NULL,
			total DOUBLE NOT NULL,
			status VARCHAR(32) NOT NULL,
			bank_details JSON,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			INDEX idx_orders_user_id (user_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// --- Users ---

func (s *MySQL) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, phone, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.IsAdmin, u.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MySQL) UserByID(ctx context.Context, id string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, phone, is_admin, created_at FROM users WHERE id = ?", id))
}

func (s *MySQL) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, phone, is_admin, created_at FROM users WHERE email = ?", email))
}

func (s *MySQL) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- Products ---

const productColumns = "id, name, slug, description, price, image, stock, discount, created_at, updated_at"

func (s *MySQL) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &image,
			&p.Stock, &p.Discount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Image = image.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *MySQL) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	var image sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &image,
			&p.Stock, &p.Discount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Image = image.String
	return &p, nil
}

func (s *MySQL) CreateProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, price, image, stock, discount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, p.ID, p.Name, p.Slug, p.Description, p.Price, p.Image,
		p.Stock, p.Discount, p.CreatedAt, p.UpdatedAt)
	return err
}

func (s *MySQL) UpdateProduct(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = ?, slug = ?, description = ?, price = ?, image = ?, stock = ?, discount = ?, updated_at = ?
		WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, p.Name, p.Slug, p.Description, p.Price, p.Image,
		p.Stock, p.Discount, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQL) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- Orders ---

const orderColumns = "id, user_id, user_snapshot, items, total, status, bank_details, created_at, updated_at"

func (s *MySQL) CreateOrder(ctx context.Context, o *models.Order) error {
	userJSON, itemsJSON, bankJSON, err := marshalOrderBlobs(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (id, user_id, user_snapshot, items, total, status, bank_details, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, o.ID, o.UserID, userJSON, itemsJSON, o.Total, o.Status,
		bankJSON, o.CreatedAt, o.UpdatedAt)
	return err
}

func (s *MySQL) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = ?", id)
	o, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *MySQL) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.queryOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at ASC")
}

func (s *MySQL) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at ASC", userID)
}

func (s *MySQL) queryOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (s *MySQL) UpdateOrder(ctx context.Context, o *models.Order) error {
	userJSON, itemsJSON, bankJSON, err := marshalOrderBlobs(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders
		SET user_snapshot = ?, items = ?, total = ?, status = ?, bank_details = ?, updated_at = ?
		WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, userJSON, itemsJSON, o.Total, o.Status, bankJSON, o.UpdatedAt, o.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQL) DeleteOrder(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQL) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *MySQL) Close(context.Context) error { return s.db.Close() }

// marshalOrderBlobs serializes the snapshot fields for the JSON columns.
func marshalOrderBlobs(o *models.Order) (user, items, bank []byte, err error) {
	items, err = json.Marshal(o.Items)
	if err != nil {
		return nil, nil, nil, err
	}
	if o.User != nil {
		user, err = json.Marshal(o.User)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if o.BankDetails != nil {
		bank, err = json.Marshal(o.BankDetails)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return user, items, bank, nil
}

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var o models.Order
	var userJSON, bankJSON sql.NullString
	var itemsJSON []byte
	if err := scan(&o.ID, &o.UserID, &userJSON, &itemsJSON, &o.Total, &o.Status,
		&bankJSON, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	if userJSON.Valid && userJSON.String != "" {
		o.User = &models.OrderUser{}
		if err := json.Unmarshal([]byte(userJSON.String), o.User); err != nil {
			return nil, err
		}
	}
	if bankJSON.Valid && bankJSON.String != "" {
		o.BankDetails = &models.BankDetails{}
		if err := json.Unmarshal([]byte(bankJSON.String), o.BankDetails); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
