package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hanikdev/storefront-golang/internal/models"
)

// Mongo is a Store over a MongoDB database. Record IDs are the service-issued
// UUID strings, stored directly as _id, so identifiers stay uniform across
// store implementations.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to the given URI and prepares the database, including the
// unique index on user emails.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	m := &Mongo{client: client, db: client.Database(dbName)}

	_, err = m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) users() *mongo.Collection    { return m.db.Collection("users") }
func (m *Mongo) products() *mongo.Collection { return m.db.Collection("products") }
func (m *Mongo) orders() *mongo.Collection   { return m.db.Collection("orders") }

// --- Users ---

func (m *Mongo) CreateUser(ctx context.Context, u *models.User) error {
	_, err := m.users().InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := m.users().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- Products ---

func (m *Mongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := m.products().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Mongo) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := m.products().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) CreateProduct(ctx context.Context, p *models.Product) error {
	_, err := m.products().InsertOne(ctx, p)
	return err
}

func (m *Mongo) UpdateProduct(ctx context.Context, p *models.Product) error {
	res, err := m.products().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) error {
	res, err := m.products().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Orders ---

func (m *Mongo) CreateOrder(ctx context.Context, o *models.Order) error {
	_, err := m.orders().InsertOne(ctx, o)
	return err
}

func (m *Mongo) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := m.orders().FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (m *Mongo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{})
}

func (m *Mongo) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{"userId": userID})
}

func (m *Mongo) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cur, err := m.orders().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *Mongo) UpdateOrder(ctx context.Context, o *models.Order) error {
	res, err := m.orders().ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteOrder(ctx context.Context, id string) error {
	res, err := m.orders().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error { return m.client.Ping(ctx, readpref.Primary()) }

func (m *Mongo) Close(ctx context.Context) error { return m.client.Disconnect(ctx) }
