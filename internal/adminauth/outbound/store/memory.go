package store

import (
	"context"
	"sync"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
)

// Memory is a Store backed by a process-local map.
//
// Expired challenges are removed lazily by the verification flow, not by a
// background sweeper.
type Memory struct {
	mu         sync.Mutex
	challenges map[string]entity.Challenge
	ins        instrument.Instrumentation
}

// NewMemory constructs an empty in-memory store.
func NewMemory(ins instrument.Instrumentation) *Memory {
	return &Memory{
		challenges: make(map[string]entity.Challenge),
		ins:        ins,
	}
}

func (m *Memory) Get(ctx context.Context, email string) (ch *entity.Challenge, err error) {
	_, span := startSpan(ctx, m.ins, "MemoryGet")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	found, ok := m.challenges[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &found, nil
}

func (m *Memory) Put(ctx context.Context, ch entity.Challenge) (err error) {
	_, span := startSpan(ctx, m.ins, "MemoryPut")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.challenges[ch.Email] = ch
	return nil
}

func (m *Memory) Delete(ctx context.Context, email string) (err error) {
	_, span := startSpan(ctx, m.ins, "MemoryDelete")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.challenges, email)
	return nil
}

func (m *Memory) AddAttempt(ctx context.Context, email string) (err error) {
	_, span := startSpan(ctx, m.ins, "MemoryAddAttempt")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	found, ok := m.challenges[email]
	if !ok {
		return goerror.ErrNotFound
	}

	found.Attempts++
	m.challenges[email] = found
	return nil
}
