package postgres

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"turfBooker/internal/booking"
	"turfBooker/internal/config"
	"turfBooker/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			id             TEXT PRIMARY KEY,
			user_id        TEXT,
			full_name      TEXT NOT NULL,
			phone          TEXT NOT NULL,
			email          TEXT,
			sport          TEXT NOT NULL,
			date           TEXT NOT NULL,
			slots          TEXT[] NOT NULL,
			players        INT,
			notes          TEXT,
			payment_method TEXT NOT NULL,
			payment_amount TEXT NOT NULL,
			discount_code  TEXT,
			total_price    INT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_sport_date ON bookings(sport, date);

		CREATE TABLE IF NOT EXISTS current_user_record (
			id    INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			user_id TEXT NOT NULL,
			name  TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT
		);`)

	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// LoadAll returns the full booking history, oldest first.
func (s *Storage) LoadAll() ([]models.Booking, error) {
	query := `
		SELECT id, user_id, full_name, phone, email, sport, date, slots,
		       players, notes, payment_method, payment_amount, discount_code,
		       total_price, created_at
		FROM bookings
		ORDER BY created_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var (
			b       models.Booking
			userID  sql.NullString
			email   sql.NullString
			players sql.NullInt64
			notes   sql.NullString
			code    sql.NullString
		)

		err = rows.Scan(
			&b.ID,
			&userID,
			&b.FullName,
			&b.Phone,
			&email,
			&b.Sport,
			&b.Date,
			pq.Array(&b.Slots),
			&players,
			&notes,
			&b.PaymentMethod,
			&b.PaymentAmount,
			&code,
			&b.TotalPrice,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		b.UserID = userID.String
		b.Email = email.String
		b.Players = int(players.Int64)
		b.Notes = notes.String
		b.DiscountCode = code.String

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// Append inserts one booking, re-checking slot conflicts for the same
// (sport, date) inside the transaction. An advisory lock on the
// (sport, date) pair serializes concurrent appends, so this is the
// atomic conditional append the file backend cannot offer.
func (s *Storage) Append(b models.Booking) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1 || '|' || $2))`, b.Sport, b.Date); err != nil {
		return fmt.Errorf("failed to lock (sport, date): %w", err)
	}

	var taken bool
	conflictQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE sport = $1 AND date = $2 AND slots && $3
		)`

	err = tx.QueryRow(conflictQuery, b.Sport, b.Date, pq.Array(b.Slots)).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check slot conflicts: %w", err)
	}

	if taken {
		return booking.ErrSlotConflict
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, full_name, phone, email, sport, date,
		                      slots, players, notes, payment_method, payment_amount,
		                      discount_code, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = tx.Exec(insertQuery,
		b.ID,
		nullable(b.UserID),
		b.FullName,
		b.Phone,
		nullable(b.Email),
		b.Sport,
		b.Date,
		pq.Array(b.Slots),
		b.Players,
		nullable(b.Notes),
		b.PaymentMethod,
		string(b.PaymentAmount),
		nullable(b.DiscountCode),
		b.TotalPrice,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return tx.Commit()
}

// SaveCurrentUser upserts the single current-user record.
func (s *Storage) SaveCurrentUser(u models.User) error {
	query := `
		INSERT INTO current_user_record (id, user_id, name, phone, email)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET user_id = $1, name = $2, phone = $3, email = $4`

	if _, err := s.DB.Exec(query, u.ID, u.Name, u.Phone, nullable(u.Email)); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}

	return nil
}

// CurrentUser returns the stored user record, or nil if none exists.
func (s *Storage) CurrentUser() (*models.User, error) {
	query := `SELECT user_id, name, phone, email FROM current_user_record WHERE id = 1`

	var (
		u     models.User
		email sql.NullString
	)

	err := s.DB.QueryRow(query).Scan(&u.ID, &u.Name, &u.Phone, &email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	u.Email = email.String

	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
