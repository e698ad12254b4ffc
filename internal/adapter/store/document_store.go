package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"docassist/internal/domain"
)

var bucketDocuments = []byte("documents")

// ErrNotFound is returned when no document is stored under a session.
var ErrNotFound = errors.New("document not found")

// DocumentStore persists extracted document text between runs, keyed by
// session name. Only the source text is stored; vector indexes are
// rebuilt in memory per document.
type DocumentStore struct {
	db *bbolt.DB
}

type storedDocument struct {
	Name    string    `json:"name"`
	Text    string    `json:"text"`
	SavedAt time.Time `json:"saved_at"`
}

// Open opens or creates the store at path.
func Open(path string) (*DocumentStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents bucket: %w", err)
	}

	return &DocumentStore{db: db}, nil
}

// Put stores doc under session, replacing any previous document
// wholesale. There is no merge; one session holds one document.
func (s *DocumentStore) Put(session string, doc domain.Document) error {
	data, err := json.Marshal(storedDocument{
		Name:    doc.Name,
		Text:    doc.Text,
		SavedAt: doc.SavedAt,
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).Put([]byte(session), data)
	})
}

// Get returns the document stored under session.
func (s *DocumentStore) Get(session string) (domain.Document, error) {
	var doc domain.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocuments).Get([]byte(session))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, session)
		}

		var stored storedDocument
		if err := json.Unmarshal(data, &stored); err != nil {
			return fmt.Errorf("corrupt document entry %q: %w", session, err)
		}

		doc = domain.Document{
			Name:    stored.Name,
			Text:    stored.Text,
			SavedAt: stored.SavedAt,
		}
		return nil
	})

	return doc, err
}

// Delete removes the document stored under session, if any.
func (s *DocumentStore) Delete(session string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).Delete([]byte(session))
	})
}

// List returns all session names in lexical order.
func (s *DocumentStore) List() ([]string, error) {
	var sessions []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).ForEach(func(k, v []byte) error {
			sessions = append(sessions, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sessions)
	return sessions, nil
}

func (s *DocumentStore) Close() error {
	return s.db.Close()
}
