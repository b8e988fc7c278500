package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"github.com/tidwall/buntdb"

	"github.com/leadcore/cms-backend/internal/content"
)

const (
	localKeyPrefix    = "cms/"
	localInitSentinel = localKeyPrefix + "initialized"
)

// LocalStore implements Store on an embedded buntdb database, for local
// development and tests. Each collection lives under one key
// ("cms/<collection>") holding the whole document list as a JSON array;
// every write deserializes, mutates and reserializes that list inside a
// single transaction, so there are no partial writes and no lost updates
// between operations.
type LocalStore struct {
	db *buntdb.DB
}

// NewLocalStore opens (or creates) the database at path, ":memory:" for an
// ephemeral store. On first open every collection key is initialized, with
// fixture data when seed is true, so the admin UI has something to show.
func NewLocalStore(path string, seed bool) (*LocalStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, &content.PersistenceError{Op: "open", Err: err}
	}
	s := &LocalStore{db: db}
	if err := s.initialize(seed); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database.
func (s *LocalStore) Close() error { return s.db.Close() }

func (s *LocalStore) initialize(seed bool) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		if _, err := tx.Get(localInitSentinel); err == nil {
			return nil
		} else if err != buntdb.ErrNotFound {
			return err
		}
		for _, col := range Collections {
			docs := []content.Fields{}
			if seed {
				docs = seedDocuments(col)
			}
			if err := writeList(tx, col, docs); err != nil {
				return err
			}
		}
		if _, _, err := tx.Set(localInitSentinel, "true", nil); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return &content.PersistenceError{Op: "initialize", Err: err}
	}
	return nil
}

func readList(tx *buntdb.Tx, collection string) ([]content.Fields, error) {
	raw, err := tx.Get(localKeyPrefix + collection)
	if err == buntdb.ErrNotFound {
		return []content.Fields{}, nil
	}
	if err != nil {
		return nil, err
	}
	var docs []content.Fields
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func writeList(tx *buntdb.Tx, collection string, docs []content.Fields) error {
	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(localKeyPrefix+collection, string(b), nil)
	return err
}

// newID returns a random 96-bit hex id. Collision-resistant even under rapid
// successive creates, unlike a clock-derived value.
func newID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(b)
}

func (s *LocalStore) GetAll(ctx context.Context, collection string) ([]content.Fields, error) {
	var docs []content.Fields
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		docs, err = readList(tx, collection)
		return err
	})
	if err != nil {
		return nil, &content.PersistenceError{Op: "getAll " + collection, Err: err}
	}
	return docs, nil
}

func (s *LocalStore) GetByID(ctx context.Context, collection, id string) (content.Fields, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if fieldString(d, "id") == id {
			return d, nil
		}
	}
	return nil, nil
}

func (s *LocalStore) GetBySlug(ctx context.Context, collection, slug string) (content.Fields, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if fieldString(d, "slug") == slug {
			return d, nil
		}
	}
	return nil, nil
}

func (s *LocalStore) Create(ctx context.Context, collection string, fields content.Fields) (string, error) {
	id := newID()
	now := content.Now()
	err := s.db.Update(func(tx *buntdb.Tx) error {
		docs, err := readList(tx, collection)
		if err != nil {
			return err
		}
		doc := content.Fields{}
		for k, v := range fields {
			doc[k] = v
		}
		doc["id"] = id
		doc["createdAt"] = now
		doc["updatedAt"] = now
		docs = append(docs, doc)
		return writeList(tx, collection, docs)
	})
	if err != nil {
		return "", &content.PersistenceError{Op: "create " + collection, Err: err}
	}
	return id, nil
}

func (s *LocalStore) Update(ctx context.Context, collection, id string, fields content.Fields) error {
	found := false
	err := s.db.Update(func(tx *buntdb.Tx) error {
		docs, err := readList(tx, collection)
		if err != nil {
			return err
		}
		for i, d := range docs {
			if fieldString(d, "id") != id {
				continue
			}
			found = true
			for k, v := range fields {
				if k == "id" || k == "createdAt" {
					continue
				}
				d[k] = v
			}
			d["updatedAt"] = content.Now()
			docs[i] = d
			break
		}
		if !found {
			return nil
		}
		return writeList(tx, collection, docs)
	})
	if err != nil {
		return &content.PersistenceError{Op: "update " + collection, Err: err}
	}
	if !found {
		return content.ErrNotFound
	}
	return nil
}

func (s *LocalStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		docs, err := readList(tx, collection)
		if err != nil {
			return err
		}
		kept := docs[:0]
		for _, d := range docs {
			if fieldString(d, "id") != id {
				kept = append(kept, d)
			}
		}
		return writeList(tx, collection, kept)
	})
	if err != nil {
		return &content.PersistenceError{Op: "delete " + collection, Err: err}
	}
	return nil
}

func (s *LocalStore) GetPublished(ctx context.Context, collection string) ([]content.Fields, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]content.Fields, 0, len(docs))
	for _, d := range docs {
		if fieldString(d, "status") == content.StatusPublished {
			out = append(out, d)
		}
	}
	SortByPublishedAtDesc(out)
	return out, nil
}

func (s *LocalStore) GetVisible(ctx context.Context, collection string) ([]content.Fields, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]content.Fields, 0, len(docs))
	for _, d := range docs {
		if fieldBool(d, "visible") {
			out = append(out, d)
		}
	}
	SortByOrder(out)
	return out, nil
}
