package repository

import (
	"errors"
	"sync"

	"adaptive-quiz-service/internal/models"
)

// ErrNotFound is returned when a bank or session id is unknown.
var ErrNotFound = errors.New("not found")

// BankRepository is the in-memory question bank store. Banks are immutable
// once saved, so lookups can hand out the stored pointer. No eviction: bank
// lifetime is the process lifetime.
type BankRepository struct {
	mu    sync.RWMutex
	banks map[string]*models.QuestionBank
}

func NewBankRepository() *BankRepository {
	return &BankRepository{banks: make(map[string]*models.QuestionBank)}
}

func (r *BankRepository) Save(bank *models.QuestionBank) {
	r.mu.Lock()
	r.banks[bank.ID] = bank
	r.mu.Unlock()
}

func (r *BankRepository) FindByID(id string) (*models.QuestionBank, error) {
	r.mu.RLock()
	bank, ok := r.banks[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return bank, nil
}
