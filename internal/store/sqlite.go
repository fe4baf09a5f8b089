package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteStore persists price bars and portfolios to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads don't block while an analysis run writes back.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_bars (
			symbol      TEXT NOT NULL,
			date        TEXT NOT NULL,
			open        REAL,
			high        REAL,
			low         REAL,
			close       REAL,
			volume      REAL,
			update_time TEXT,
			PRIMARY KEY (symbol, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol_date ON price_bars(symbol, date)`,

		`CREATE TABLE IF NOT EXISTS portfolios (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT,
			create_time TEXT,
			description TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS portfolio_components (
			portfolio_id INTEGER,
			symbol       TEXT,
			weight       REAL,
			PRIMARY KEY (portfolio_id, symbol),
			FOREIGN KEY (portfolio_id) REFERENCES portfolios(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Get returns the cached bars for symbol within [start, end] inclusive,
// ascending by date. ok is false when the store holds no rows for the symbol.
func (s *SQLiteStore) Get(symbol string, start, end time.Time) ([]model.Bar, bool, error) {
	var count int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM price_bars WHERE symbol = ?`, symbol,
	).Scan(&count); err != nil {
		return nil, false, fmt.Errorf("count bars: %w", err)
	}
	if count == 0 {
		return nil, false, nil
	}

	rows, err := s.db.Query(
		`SELECT date, open, high, low, close, volume
		 FROM price_bars
		 WHERE symbol = ? AND date BETWEEN ? AND ?
		 ORDER BY date`,
		symbol, start.Format(dateLayout), end.Format(dateLayout),
	)
	if err != nil {
		return nil, true, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.Bar
	for rows.Next() {
		var dateStr string
		var b model.Bar
		if err := rows.Scan(&dateStr, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, true, fmt.Errorf("scan bar: %w", err)
		}
		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, true, fmt.Errorf("parse date %q: %w", dateStr, err)
		}
		b.Date = d
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, true, fmt.Errorf("iterate bars: %w", err)
	}
	return bars, true, nil
}

// Put replaces all stored bars for symbol with the given slice in one
// transaction. Durable before return.
func (s *SQLiteStore) Put(symbol string, bars []model.Bar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin put: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM price_bars WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear bars: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO price_bars (symbol, date, open, high, low, close, volume, update_time)
		 VALUES (?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format("2006-01-02 15:04:05")
	for _, b := range bars {
		if _, err := stmt.Exec(symbol, b.Date.Format(dateLayout),
			b.Open, b.High, b.Low, b.Close, b.Volume, now); err != nil {
			return fmt.Errorf("insert bar %s: %w", b.Date.Format(dateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put: %w", err)
	}
	return nil
}

// SavePortfolio stores a named weight specification and returns its id.
func (s *SQLiteStore) SavePortfolio(name, description string, weights map[string]float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save portfolio: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO portfolios (name, create_time, description) VALUES (?,?,?)`,
		name, time.Now().Format("2006-01-02 15:04:05"), description,
	)
	if err != nil {
		return 0, fmt.Errorf("insert portfolio: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("portfolio id: %w", err)
	}

	for sym, w := range weights {
		if _, err := tx.Exec(
			`INSERT INTO portfolio_components (portfolio_id, symbol, weight) VALUES (?,?,?)`,
			id, sym, w,
		); err != nil {
			return 0, fmt.Errorf("insert component %s: %w", sym, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save portfolio: %w", err)
	}
	return id, nil
}

// GetPortfolio loads a saved portfolio by id. Returns nil when not found.
func (s *SQLiteStore) GetPortfolio(id int64) (*model.SavedPortfolio, error) {
	p := &model.SavedPortfolio{ID: id, Weights: make(map[string]float64)}
	err := s.db.QueryRow(
		`SELECT name, create_time, description FROM portfolios WHERE id = ?`, id,
	).Scan(&p.Name, &p.CreatedAt, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query portfolio: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT symbol, weight FROM portfolio_components WHERE portfolio_id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sym string
		var w float64
		if err := rows.Scan(&sym, &w); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		p.Weights[sym] = w
	}
	return p, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
