package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/response"
	"github.com/lojasmm/rowkit/internal/wire"
)

var draftsBucket = []byte("drafts")

// draftRecord is the persisted form of a draft. Components are stored in
// their wire form and decoded again on load.
type draftRecord struct {
	ID         string           `json:"id"`
	Content    string           `json:"content,omitempty"`
	Embeds     []response.Embed `json:"embeds,omitempty"`
	Mentions   []MentionRecord  `json:"mentions,omitempty"`
	Components []wire.Node      `json:"components,omitempty"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type Store interface {
	SaveDraft(id string, d response.Draft) error
	GetDraft(id string) (*response.Draft, error)
	DeleteDraft(id string) error
	ListDrafts() ([]string, error)
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating drafts bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) SaveDraft(id string, d response.Draft) error {
	if id == "" {
		return fmt.Errorf("saving draft: empty id")
	}
	rec := draftRecord{
		ID:         id,
		Content:    d.Content,
		Embeds:     d.Embeds,
		Mentions:   encodeMentions(d.Mentions),
		Components: component.EncodeRows(d.Components),
		UpdatedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling draft %s: %w", id, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Put([]byte(id), data)
	})
}

// GetDraft returns nil, nil when no draft has the given id.
func (s *BoltStore) GetDraft(id string) (*response.Draft, error) {
	var rec *draftRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(draftsBucket).Get([]byte(id))
		if v == nil {
			return nil
		}
		rec = &draftRecord{}
		return json.Unmarshal(v, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("loading draft %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}

	rows, err := component.DecodeRows(rec.Components)
	if err != nil {
		return nil, fmt.Errorf("decoding draft %s components: %w", id, err)
	}
	mentions, err := decodeMentions(rec.Mentions)
	if err != nil {
		return nil, fmt.Errorf("decoding draft %s mentions: %w", id, err)
	}

	return &response.Draft{
		Content:    rec.Content,
		Embeds:     rec.Embeds,
		Components: rows,
		Mentions:   mentions,
	}, nil
}

func (s *BoltStore) DeleteDraft(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Delete([]byte(id))
	})
}

// ListDrafts returns draft IDs in key order.
func (s *BoltStore) ListDrafts() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return ids, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
