package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

const sweetsCollection = "sweets"

// SweetRepository implements ports.SweetRepository using MongoDB.
type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetsCollection)}
}

type mongoSweet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Quantity    int64              `bson:"quantity"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *SweetRepository) Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoSweet{
		Name:        sweet.Name,
		Category:    sweet.Category,
		Price:       sweet.Price,
		Quantity:    sweet.Quantity,
		Description: sweet.Description,
		ImageURL:    sweet.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSweetExists
		}
		return nil, fmt.Errorf("insert sweet: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("find sweet: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SweetRepository) FindByName(ctx context.Context, name string) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSweet
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("find sweet by name: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SweetRepository) List(ctx context.Context, page, limit int) ([]*domain.Sweet, int64, error) {
	return r.findPage(ctx, bson.M{}, page, limit)
}

func (r *SweetRepository) Search(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	return r.findPage(ctx, query, filter.Page, filter.Limit)
}

func (r *SweetRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]*domain.Sweet, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find sweets: %w", err)
	}
	defer cur.Close(ctx)

	var sweets []*domain.Sweet
	for cur.Next(ctx) {
		var ms mongoSweet
		if err := cur.Decode(&ms); err != nil {
			return nil, 0, fmt.Errorf("decode sweet: %w", err)
		}
		sweets = append(sweets, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sweets: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count sweets: %w", err)
	}
	return sweets, total, nil
}

func (r *SweetRepository) Update(ctx context.Context, id string, update ports.SweetUpdate) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoSweet
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSweetExists
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// DecrementStock subtracts qty in a single conditional update: the filter
// requires quantity >= qty, so two concurrent purchases can never both
// succeed against the same units. On a guard miss the document is re-read
// once to distinguish a missing sweet from insufficient stock.
func (r *SweetRepository) DecrementStock(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": qty}}
	sweet, err := r.adjustQuantity(ctx, filter, -qty)
	if err == nil {
		return sweet, nil
	}
	if !errors.Is(err, domain.ErrSweetNotFound) {
		return nil, err
	}

	current, findErr := r.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr
	}
	return nil, &domain.InsufficientStockError{Available: current.Quantity}
}

// IncrementStock adds qty via an atomic $inc.
func (r *SweetRepository) IncrementStock(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.adjustQuantity(ctx, bson.M{"_id": oid}, qty)
}

func (r *SweetRepository) adjustQuantity(ctx context.Context, filter bson.M, delta int64) (*domain.Sweet, error) {
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoSweet
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}
	return ms.toDomain(), nil
}

// EnsureIndexes creates the indexes backing name uniqueness and search.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (ms *mongoSweet) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:          ms.ID.Hex(),
		Name:        ms.Name,
		Category:    ms.Category,
		Price:       ms.Price,
		Quantity:    ms.Quantity,
		Description: ms.Description,
		ImageURL:    ms.ImageURL,
		CreatedAt:   ms.CreatedAt.UTC(),
		UpdatedAt:   ms.UpdatedAt.UTC(),
	}
}
