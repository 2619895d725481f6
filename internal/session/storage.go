// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"
)

// ErrItemNotFound is returned by [Storage.GetItem] when no value is stored
// under the requested key.
var ErrItemNotFound = errors.New("session item not found")

// Storage keys.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Storage is a string key/value store that survives between client
// invocations.
//
//go:generate mockgen -source=storage.go -destination=../mock/session_storage_mock.go -package=mock
type Storage interface {
	// GetItem returns the value stored under key or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

type memoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage returns a process-local [Storage].
func NewMemoryStorage() Storage {
	return &memoryStorage{items: make(map[string]string)}
}

func (m *memoryStorage) GetItem(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (m *memoryStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
