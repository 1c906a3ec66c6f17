package storage

import (
	"context"
	"sync"
)

// MemoryBridge is an in-process image bridge used by tests and local runs
// without a bucket. URLs are "memory://<key>".
type MemoryBridge struct {
	mu      sync.Mutex
	objects map[string]Image

	// Injected failures, checked before the operation runs.
	PutErr    error
	DeleteErr error
}

func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{objects: make(map[string]Image)}
}

func (m *MemoryBridge) Put(_ context.Context, data []byte, contentType string) (string, error) {
	if m.PutErr != nil {
		return "", &BridgeError{Op: "put", Err: m.PutErr}
	}
	key, err := NewImageKey(contentType)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Image{Data: append([]byte(nil), data...), ContentType: contentType}
	return key, nil
}

func (m *MemoryBridge) GetDownloadURL(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return "", &BridgeError{Op: "head", Key: key, Err: ErrObjectNotFound}
	}
	return "memory://" + key, nil
}

func (m *MemoryBridge) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return &BridgeError{Op: "delete", Key: key, Err: m.DeleteErr}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Has reports whether key is currently stored.
func (m *MemoryBridge) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryBridge) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
