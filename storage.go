package rates

type Storage interface {
	Store(days ResultSet) ([]QuoteWithID, error)
	GetByDate(date string) ([]QuoteWithID, error)
	GetStorageProviderName() string
	Migrate() error
	Drop() error
	Close() error
}
