package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	rates "github.com/malusev998/privat-rates"
)

type (
	mongoStorage struct {
		ctx        context.Context
		client     *mongo.Client
		collection *mongo.Collection
	}

	mongoQuote struct {
		ID        primitive.ObjectID    `bson:"_id,omitempty"`
		Date      string                `bson:"date"`
		Currency  string                `bson:"currency"`
		Sale      *primitive.Decimal128 `bson:"sale"`
		Purchase  *primitive.Decimal128 `bson:"purchase"`
		Provider  string                `bson:"provider"`
		CreatedAt time.Time             `bson:"createdAt"`
	}
)

func NewMongoStorage(c MongoDBConfig) (rates.Storage, error) {
	ctx := contextOrBackground(c.Cxt)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.ConnectionString))

	if err != nil {
		return nil, err
	}

	s := mongoStorage{
		ctx:        ctx,
		client:     client,
		collection: client.Database(c.Database).Collection(c.Collection),
	}

	if c.Migrate {
		if err := s.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return s, nil
}

func toDecimal128(d decimal.NullDecimal) (*primitive.Decimal128, error) {
	if !d.Valid {
		return nil, nil
	}

	value, err := primitive.ParseDecimal128(d.Decimal.String())
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func fromDecimal128(d *primitive.Decimal128) (decimal.NullDecimal, error) {
	if d == nil {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NewNullDecimal(value), nil
}

func toMongoQuote(q rates.QuoteWithID) (mongoQuote, error) {
	sale, err := toDecimal128(q.Quote.Sale)
	if err != nil {
		return mongoQuote{}, err
	}

	purchase, err := toDecimal128(q.Quote.Purchase)
	if err != nil {
		return mongoQuote{}, err
	}

	return mongoQuote{
		Date:      q.Date,
		Currency:  string(q.Currency),
		Sale:      sale,
		Purchase:  purchase,
		Provider:  string(q.Provider),
		CreatedAt: q.CreatedAt,
	}, nil
}

func (m mongoQuote) toQuote() (rates.QuoteWithID, error) {
	sale, err := fromDecimal128(m.Sale)
	if err != nil {
		return rates.QuoteWithID{}, err
	}

	purchase, err := fromDecimal128(m.Purchase)
	if err != nil {
		return rates.QuoteWithID{}, err
	}

	return rates.QuoteWithID{
		Date:      m.Date,
		Currency:  rates.Currency(m.Currency),
		Quote:     rates.CurrencyQuote{Sale: sale, Purchase: purchase},
		Provider:  rates.Provider(m.Provider),
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
	}, nil
}

func (s mongoStorage) Store(days rates.ResultSet) ([]rates.QuoteWithID, error) {
	quotes := days.Quotes(rates.PrivatBankProvider)

	if len(quotes) == 0 {
		return quotes, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	documents := make([]interface{}, 0, len(quotes))

	for i := range quotes {
		quotes[i].CreatedAt = now

		doc, err := toMongoQuote(quotes[i])
		if err != nil {
			return nil, err
		}

		documents = append(documents, doc)
	}

	result, err := s.collection.InsertMany(s.ctx, documents)

	if err != nil {
		return nil, err
	}

	for i, id := range result.InsertedIDs {
		quotes[i].ID = id
	}

	return quotes, nil
}

func (s mongoStorage) GetByDate(date string) ([]rates.QuoteWithID, error) {
	cursor, err := s.collection.Find(s.ctx, bson.M{"date": date}, options.Find().SetSort(bson.D{{Key: "currency", Value: -1}}))

	if err != nil {
		return nil, err
	}

	defer cursor.Close(s.ctx)

	quotes := make([]rates.QuoteWithID, 0, len(rates.SupportedCurrencies))

	for cursor.Next(s.ctx) {
		var doc mongoQuote

		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		q, err := doc.toQuote()
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, q)
	}

	return quotes, cursor.Err()
}

func (s mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}

func (s mongoStorage) Migrate() error {
	_, err := s.collection.Indexes().CreateOne(s.ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}, {Key: "currency", Value: 1}},
	})

	return err
}

func (s mongoStorage) Drop() error {
	return s.collection.Drop(s.ctx)
}

func (s mongoStorage) Close() error {
	return s.client.Disconnect(s.ctx)
}
