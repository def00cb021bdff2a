/*
Copyright (C) 2024 The tub-modules Authors

This file is part of the tub-modules project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package state

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"filippo.io/age"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/zortax/tub-modules/deployment/pkg/stack"
)

var (
	// ErrNotFound is returned when no record exists for a stack.
	ErrNotFound = errors.New("no state recorded for stack")
	// ErrPassphraseRequired is returned when secret outputs are requested without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required to read secret outputs")

	stacksBucket = []byte("stacks")
)

// NotStoredValue replaces secret outputs that were saved without a passphrase.
const NotStoredValue = "[not stored]"

// Record is the state of a stack after its last successful submit.
type Record struct {
	Stack     string              `json:"stack"`
	RunID     string              `json:"runID"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Outputs   []stack.OutputEntry `json:"outputs"`
	// Sealed holds the secret outputs as an age payload, nil if they were not stored.
	Sealed []byte `json:"sealed,omitempty"`
}

// Store keeps stack records in a bolt file.
type Store struct {
	db         *bolt.DB
	workFactor int
}

type Option func(*Store)

// WithScryptWorkFactor sets the log2 work factor of the passphrase key derivation.
func WithScryptWorkFactor(logN int) Option {
	return func(s *Store) {
		s.workFactor = logN
	}
}

// DefaultPath returns the location of the state file, ~/.tubctl/state.db.
func DefaultPath() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "get user")
	}
	return filepath.Join(u.HomeDir, ".tubctl", "state.db"), nil
}

// Open opens the store at file, creating the file and its directory if needed.
func Open(file string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, errors.Wrapf(err, "ensure dir exists: %s", filepath.Dir(file))
	}
	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records entries for stackName. Secret entries are sealed with passphrase, an empty
// passphrase leaves them out of the store.
func (s *Store) Save(ctx context.Context, stackName, runID string, entries []stack.OutputEntry, passphrase string) error {
	record := Record{
		Stack:     stackName,
		RunID:     runID,
		UpdatedAt: time.Now().UTC(),
		Outputs:   make([]stack.OutputEntry, len(entries)),
	}
	secrets := map[string]string{}
	for i, e := range entries {
		record.Outputs[i] = e
		if e.Secret {
			secrets[e.Name] = e.Value
			record.Outputs[i].Value = ""
		}
	}
	if passphrase != "" && len(secrets) > 0 {
		sealed, err := s.seal(secrets, passphrase)
		if err != nil {
			return err
		}
		record.Sealed = sealed
	}
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(stacksBucket)
		if err != nil {
			return errors.Wrap(err, "ensure bucket exists")
		}
		return b.Put([]byte(stackName), data)
	})
}

// Load returns the record of stackName.
func (s *Store) Load(ctx context.Context, stackName string) (*Record, error) {
	var data []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(stacksBucket)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(stackName))
		if len(v) == 0 {
			return ErrNotFound
		}
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	}); err != nil {
		return nil, err
	}
	record := &Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, errors.Wrapf(err, "unmarshal record of stack %s", stackName)
	}
	return record, nil
}

// Delete removes the record of stackName, a missing record is not an error.
func (s *Store) Delete(ctx context.Context, stackName string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(stacksBucket)
		if b == nil {
			return nil
		}
		return errors.Wrap(b.Delete([]byte(stackName)), "delete key")
	})
}

// Entries returns the outputs of r. Secret values are masked when reveal is false, otherwise
// they are unsealed with passphrase.
func (r *Record) Entries(reveal bool, passphrase string) ([]stack.OutputEntry, error) {
	entries := make([]stack.OutputEntry, len(r.Outputs))
	copy(entries, r.Outputs)
	if !reveal {
		return stack.Masked(entries), nil
	}
	var secrets map[string]string
	if r.Sealed != nil {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		var err error
		if secrets, err = unseal(r.Sealed, passphrase); err != nil {
			return nil, err
		}
	}
	for i, e := range entries {
		if !e.Secret {
			continue
		}
		if v, ok := secrets[e.Name]; ok {
			entries[i].Value = v
		} else {
			entries[i].Value = NotStoredValue
		}
	}
	return entries, nil
}

func (s *Store) seal(secrets map[string]string, passphrase string) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "create scrypt recipient")
	}
	if s.workFactor > 0 {
		recipient.SetWorkFactor(s.workFactor)
	}
	plain, err := json.Marshal(secrets)
	if err != nil {
		return nil, errors.Wrap(err, "marshal secrets")
	}
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt secrets")
	}
	if _, err := w.Write(plain); err != nil {
		return nil, errors.Wrap(err, "encrypt secrets")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "encrypt secrets")
	}
	return buf.Bytes(), nil
}

func unseal(sealed []byte, passphrase string) (map[string]string, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "create scrypt identity")
	}
	r, err := age.Decrypt(bytes.NewReader(sealed), identity)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt secrets")
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt secrets")
	}
	secrets := map[string]string{}
	if err := json.Unmarshal(plain, &secrets); err != nil {
		return nil, errors.Wrap(err, "unmarshal secrets")
	}
	return secrets, nil
}
