package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	rates "github.com/malusev998/privat-rates"
)

const (
	MySQLTimeFormat = "2006-01-02 15:04:05"
	idLength        = 16

	createTableQuery = "CREATE TABLE IF NOT EXISTS %s(" +
		"id BINARY(16) PRIMARY KEY, " +
		"rate_date CHAR(10) NOT NULL, " +
		"currency CHAR(3) NOT NULL, " +
		"sale DECIMAL(14,6) NULL, " +
		"purchase DECIMAL(14,6) NULL, " +
		"provider VARCHAR(50) NOT NULL, " +
		"created_at DATETIME NOT NULL, " +
		"INDEX rate_date_currency (rate_date, currency));"
	insertQuery    = "INSERT INTO %s(id, rate_date, currency, sale, purchase, provider, created_at) VALUES (?,?,?,?,?,?,?);"
	selectByDate   = "SELECT id, rate_date, currency, sale, purchase, provider, created_at FROM %s WHERE rate_date = ? ORDER BY currency DESC;"
	dropTableQuery = "DROP TABLE IF EXISTS %s;"
)

var ErrNotEnoughBytesInGenerator = errors.New("id generator must return 16 bytes")

type (
	IDGenerator interface {
		Generate() []byte
	}

	uuidGenerator struct{}

	sqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		idGenerator IDGenerator
		tableName   string
	}
)

func (uuidGenerator) Generate() []byte {
	id := uuid.New()
	return id[:]
}

func NewMySQLStorage(c MySQLConfig) (rates.Storage, error) {
	db, err := sql.Open("mysql", c.ConnectionString)

	if err != nil {
		return nil, err
	}

	return NewSQLStorage(c.Cxt, db, c.IDGenerator, c.TableName, c.Migrate)
}

func NewSQLStorage(ctx context.Context, db *sql.DB, idGenerator IDGenerator, tableName string, migrate bool) (rates.Storage, error) {
	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	if tableName == "" {
		tableName = "exchange_rates"
	}

	s := sqlStorage{
		ctx:         contextOrBackground(ctx),
		db:          db,
		idGenerator: idGenerator,
		tableName:   tableName,
	}

	if migrate {
		if err := s.Migrate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s sqlStorage) generateID() (uuid.UUID, error) {
	bytes := s.idGenerator.Generate()

	if len(bytes) != idLength {
		return uuid.Nil, ErrNotEnoughBytesInGenerator
	}

	return uuid.FromBytes(bytes)
}

func (s sqlStorage) Store(days rates.ResultSet) ([]rates.QuoteWithID, error) {
	quotes := days.Quotes(rates.PrivatBankProvider)

	if len(quotes) == 0 {
		return quotes, nil
	}

	for i := range quotes {
		id, err := s.generateID()
		if err != nil {
			return nil, err
		}

		quotes[i].ID = id
	}

	tx, err := s.db.BeginTx(s.ctx, nil)

	if err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(s.ctx, fmt.Sprintf(insertQuery, s.tableName))

	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	defer stmt.Close()

	now := time.Now().UTC().Truncate(time.Second)

	for i, q := range quotes {
		id := q.ID.(uuid.UUID)

		_, err := stmt.ExecContext(
			s.ctx,
			id[:],
			q.Date,
			string(q.Currency),
			q.Quote.Sale,
			q.Quote.Purchase,
			string(q.Provider),
			now.Format(MySQLTimeFormat),
		)

		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}

		quotes[i].CreatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func (s sqlStorage) GetByDate(date string) ([]rates.QuoteWithID, error) {
	rows, err := s.db.QueryContext(s.ctx, fmt.Sprintf(selectByDate, s.tableName), date)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	quotes := make([]rates.QuoteWithID, 0, len(rates.SupportedCurrencies))

	for rows.Next() {
		var (
			id        []byte
			rateDate  string
			currency  string
			sale      decimal.NullDecimal
			purchase  decimal.NullDecimal
			provider  string
			createdAt string
		)

		if err := rows.Scan(&id, &rateDate, &currency, &sale, &purchase, &provider, &createdAt); err != nil {
			return nil, err
		}

		parsedID, err := uuid.FromBytes(id)
		if err != nil {
			return nil, err
		}

		created, err := time.Parse(MySQLTimeFormat, createdAt)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, rates.QuoteWithID{
			Date:      rateDate,
			Currency:  rates.Currency(currency),
			Quote:     rates.CurrencyQuote{Sale: sale, Purchase: purchase},
			Provider:  rates.Provider(provider),
			CreatedAt: created,
			ID:        parsedID,
		})
	}

	return quotes, rows.Err()
}

func (s sqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}

func (s sqlStorage) Migrate() error {
	_, err := s.db.ExecContext(s.ctx, fmt.Sprintf(createTableQuery, s.tableName))

	return err
}

func (s sqlStorage) Drop() error {
	_, err := s.db.ExecContext(s.ctx, fmt.Sprintf(dropTableQuery, s.tableName))

	return err
}

func (s sqlStorage) Close() error {
	return s.db.Close()
}
