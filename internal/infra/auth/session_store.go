package auth

import (
	bolt "go.etcd.io/bbolt"

	"nexus/internal/domain"
)

var (
	bucketSession = []byte("session")
	keySignedIn   = []byte("signed_in")
)

// SessionStore persists the single session flag in bbolt, replacing the
// original's browser-local storage.
type SessionStore struct {
	db *bolt.DB
}

func NewSessionStore(db *bolt.DB) (*SessionStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		return nil, domain.E(domain.CodeUnavailable, "auth.NewSessionStore", "create bucket", err)
	}
	return &SessionStore{db: db}, nil
}

func (s *SessionStore) SetSignedIn(signedIn bool) error {
	value := []byte{0}
	if signedIn {
		value[0] = 1
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keySignedIn, value)
	})
	if err != nil {
		return domain.E(domain.CodeUnavailable, "auth.SetSignedIn", "persist session flag", err)
	}
	return nil
}

func (s *SessionStore) SignedIn() (bool, error) {
	var signedIn bool
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketSession).Get(keySignedIn)
		signedIn = len(value) == 1 && value[0] == 1
		return nil
	})
	if err != nil {
		return false, domain.E(domain.CodeUnavailable, "auth.SignedIn", "read session flag", err)
	}
	return signedIn, nil
}
