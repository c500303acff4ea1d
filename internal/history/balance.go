package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/shiftwise/internal/storage"
	"github.com/shopspring/decimal"
)

const (
	balanceKey = "leave_balance_data"

	// MaxBalanceHistory is how many superseded balances are kept.
	MaxBalanceHistory = 10
)

type Balance struct {
	Opening decimal.Decimal `json:"opening"`
	Earned  decimal.Decimal `json:"earned"`
	Availed decimal.Decimal `json:"availed"`
	SavedAt time.Time       `json:"saved_at"`
}

type BalanceData struct {
	Current *Balance  `json:"current"`
	History []Balance `json:"history"`
}

// HasSavedData reports whether anything has ever been saved.
func (d *BalanceData) HasSavedData() bool {
	return d.Current != nil || len(d.History) > 0
}

// BalanceBook keeps the current EL balance and the ones it replaced.
type BalanceBook struct {
	store storage.Store
	now   func() time.Time
}

func NewBalanceBook(store storage.Store, now func() time.Time) *BalanceBook {
	if now == nil {
		now = time.Now
	}
	return &BalanceBook{store: store, now: now}
}

func (b *BalanceBook) Load() (*BalanceData, error) {
	var d BalanceData
	err := storage.GetJSON(b.store, balanceKey, &d)
	if errors.Is(err, storage.ErrNotFound) {
		return &BalanceData{History: []Balance{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if d.History == nil {
		d.History = []Balance{}
	}
	return &d, nil
}

// Save makes bal current, pushing the previous current balance onto the history.
func (b *BalanceBook) Save(bal Balance) (*BalanceData, error) {
	d, err := b.Load()
	if err != nil {
		return nil, err
	}

	bal.SavedAt = b.now()
	if d.Current != nil {
		d.History = prepend(*d.Current, d.History)
	}
	d.Current = &bal

	return d, b.put(d)
}

// LoadFromHistory swaps history entry i in as the current balance.
func (b *BalanceBook) LoadFromHistory(i int) (*BalanceData, error) {
	d, err := b.Load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(d.History) {
		return nil, fmt.Errorf("no balance history entry %d", i)
	}

	chosen := d.History[i]
	rest := append(append([]Balance{}, d.History[:i]...), d.History[i+1:]...)
	if d.Current != nil {
		rest = prepend(*d.Current, rest)
	}
	d.History = rest
	d.Current = &chosen

	return d, b.put(d)
}

func (b *BalanceBook) DeleteHistoryEntry(i int) (*BalanceData, error) {
	d, err := b.Load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(d.History) {
		return nil, fmt.Errorf("no balance history entry %d", i)
	}
	d.History = append(d.History[:i], d.History[i+1:]...)
	return d, b.put(d)
}

func (b *BalanceBook) Clear() error {
	return b.store.Delete(balanceKey)
}

func (b *BalanceBook) put(d *BalanceData) error {
	return storage.PutJSON(b.store, balanceKey, d)
}

func prepend(bal Balance, history []Balance) []Balance {
	out := append([]Balance{bal}, history...)
	if len(out) > MaxBalanceHistory {
		out = out[:MaxBalanceHistory]
	}
	return out
}
