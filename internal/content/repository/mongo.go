package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leadcore/cms-backend/internal/content"
)

// Index key patterns the filtered queries hint at. Hinting makes a missing
// index fail loudly instead of degrading to a collection scan, which is how
// deployment misconfiguration gets surfaced as QueryConfigError.
var (
	slugIndexKeys      = bson.D{{Key: "slug", Value: 1}}
	publishedIndexKeys = bson.D{{Key: "status", Value: 1}, {Key: "publishedAt", Value: -1}}
	visibleIndexKeys   = bson.D{{Key: "visible", Value: 1}, {Key: "order", Value: 1}}
)

// MongoStore implements Store on a MongoDB database, one Mongo collection per
// CMS collection. Documents are keyed by an "id" string field with a unique
// index rather than by ObjectID, so ids look the same on both backends.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// EnsureIndexes creates the indexes every collection needs: unique id, slug
// equality, and the two compound indexes behind GetPublished/GetVisible.
// Idempotent; call at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: slugIndexKeys},
		{Keys: publishedIndexKeys},
		{Keys: visibleIndexKeys},
	}
	for _, col := range Collections {
		if _, err := s.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return &content.PersistenceError{Op: "ensureIndexes " + col, Err: err}
		}
	}
	return nil
}

func (s *MongoStore) GetAll(ctx context.Context, collection string) ([]content.Fields, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, &content.PersistenceError{Op: "getAll " + collection, Err: err}
	}
	return decodeCursor(ctx, collection, cur)
}

func (s *MongoStore) GetByID(ctx context.Context, collection, id string) (content.Fields, error) {
	return s.findOne(ctx, collection, bson.M{"id": id})
}

// GetBySlug issues an equality query against the slug index rather than
// scanning the collection.
func (s *MongoStore) GetBySlug(ctx context.Context, collection, slug string) (content.Fields, error) {
	var m bson.M
	opts := options.FindOne().SetHint(slugIndexKeys)
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, classifyQueryErr(collection, "getBySlug", err)
	}
	return normalize(m), nil
}

func (s *MongoStore) findOne(ctx context.Context, collection string, filter bson.M) (content.Fields, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, &content.PersistenceError{Op: "findOne " + collection, Err: err}
	}
	return normalize(m), nil
}

func (s *MongoStore) Create(ctx context.Context, collection string, fields content.Fields) (string, error) {
	id := newID()
	now := time.Now().UTC()
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = id
	doc["createdAt"] = now
	doc["updatedAt"] = now
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", &content.PersistenceError{Op: "create " + collection, Err: err}
	}
	return id, nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields content.Fields) error {
	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "createdAt" {
			continue
		}
		set[k] = v
	}
	update := bson.M{
		// updatedAt is server-assigned, matching the mutation path used on create
		"$currentDate": bson.M{"updatedAt": true},
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return &content.PersistenceError{Op: "update " + collection, Err: err}
	}
	if res.MatchedCount == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return &content.PersistenceError{Op: "delete " + collection, Err: err}
	}
	return nil
}

func (s *MongoStore) GetPublished(ctx context.Context, collection string) ([]content.Fields, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}}).
		SetHint(publishedIndexKeys)
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{"status": content.StatusPublished}, opts)
	if err != nil {
		return nil, classifyQueryErr(collection, "getPublished", err)
	}
	return decodeCursor(ctx, collection, cur)
}

func (s *MongoStore) GetVisible(ctx context.Context, collection string) ([]content.Fields, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetHint(visibleIndexKeys)
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{"visible": true}, opts)
	if err != nil {
		return nil, classifyQueryErr(collection, "getVisible", err)
	}
	return decodeCursor(ctx, collection, cur)
}

func decodeCursor(ctx context.Context, collection string, cur *mongo.Cursor) ([]content.Fields, error) {
	defer cur.Close(ctx)
	out := []content.Fields{}
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, &content.PersistenceError{Op: "decode " + collection, Err: err}
		}
		out = append(out, normalize(m))
	}
	if err := cur.Err(); err != nil {
		return nil, &content.PersistenceError{Op: "cursor " + collection, Err: err}
	}
	return out, nil
}

// normalize strips Mongo internals and converts BSON dates to the uniform
// RFC 3339 representation, so callers never see backend-specific timestamp
// types.
func normalize(m bson.M) content.Fields {
	delete(m, "_id")
	f := content.Fields(m)
	for _, k := range []string{"createdAt", "updatedAt", "publishedAt"} {
		switch t := f[k].(type) {
		case primitive.DateTime:
			f[k] = t.Time().UTC().Format(content.TimeLayout)
		case time.Time:
			f[k] = t.UTC().Format(content.TimeLayout)
		}
	}
	return f
}

// classifyQueryErr separates a missing-index failure (deployment problem)
// from transient persistence failures.
func classifyQueryErr(collection, op string, err error) error {
	if isIndexMissing(err) {
		return &content.QueryConfigError{Collection: collection, Err: err}
	}
	return &content.PersistenceError{Op: op + " " + collection, Err: err}
}

func isIndexMissing(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		// 27 = IndexNotFound; 2 = BadValue, which is what a hint naming a
		// nonexistent index comes back as
		if ce.Code == 27 {
			return true
		}
		if ce.Code == 2 && strings.Contains(ce.Message, "hint") {
			return true
		}
	}
	return strings.Contains(err.Error(), "hint provided does not correspond to an existing index")
}
