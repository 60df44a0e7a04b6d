// Package ledger owns the user's transactions, goals and subscriptions and
// writes every mutation through to a store.KV.
//
// A Ledger is not safe for concurrent mutation; it belongs to a single
// goroutine (one CLI command, or the TUI update loop).
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/store"
)

// Storage keys.
const (
	KeyName          = "moneymirror-name"
	KeyTransactions  = "moneymirror-tx"
	KeySubscriptions = "moneymirror-subs"
	KeyGoals         = "moneymirror-goals"
)

// Rejection reasons. Callers match with errors.Is.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("name is required")
	ErrNotFound      = errors.New("not found")
)

// Draft is the user-entered form of a transaction.
type Draft struct {
	Amount   string
	Kind     model.Kind
	Category string
	Note     string // defaults to Category when blank
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for recovered decode failures.
func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock overrides the clock used to date new transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// Ledger is the single owner of the record collections.
type Ledger struct {
	kv  store.KV
	log *zap.Logger
	now func() time.Time

	name    string
	txs     []model.Transaction
	goals   []model.Goal
	subs    []model.Subscription
	editing string
}

// Open creates a Ledger over kv and loads its persisted state.
func Open(kv store.KV, opts ...Option) (*Ledger, error) {
	if kv == nil {
		return nil, errors.New("ledger: nil store")
	}
	l := &Ledger{
		kv:  kv,
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Load()
	return l, nil
}

// Load replaces in-memory state with what is stored. Absent or malformed
// values become empty collections; failures are logged, never returned.
// Any active edit session is cleared.
func (l *Ledger) Load() {
	l.editing = ""
	l.name = l.loadName()

	l.txs = decodeCollection[model.Transaction](l, KeyTransactions)
	l.goals = decodeCollection[model.Goal](l, KeyGoals)
	l.subs = decodeCollection[model.Subscription](l, KeySubscriptions)

	l.log.Debug("ledger loaded",
		zap.Int("transactions", len(l.txs)),
		zap.Int("goals", len(l.goals)),
		zap.Int("subscriptions", len(l.subs)),
	)
}

func (l *Ledger) loadName() string {
	raw, ok, err := l.kv.Get(KeyName)
	if err != nil {
		l.log.Warn("reading display name", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal([]byte(raw), &name); err != nil {
		// Older stores kept the bare string.
		return raw
	}
	return name
}

// decodeCollection reads the list stored under key. Any decode error
// discards the whole list, including elements decoded before the error.
func decodeCollection[T any](l *Ledger, key string) []T {
	raw, ok, err := l.kv.Get(key)
	if err != nil {
		l.log.Warn("reading collection", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		l.log.Warn("discarding malformed collection", zap.String("key", key), zap.Error(err))
		return nil
	}
	return list
}

func (l *Ledger) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := l.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// DisplayName returns the stored user name, or "" before setup.
func (l *Ledger) DisplayName() string { return l.name }

// SetDisplayName stores a trimmed, non-empty display name.
func (l *Ledger) SetDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := l.save(KeyName, name); err != nil {
		return err
	}
	l.name = name
	return nil
}

func (l *Ledger) resolveDraft(d Draft) (decimal.Decimal, model.Kind, string, string, error) {
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return decimal.Zero, "", "", "", err
	}
	kind := d.Kind
	if kind == "" {
		kind = model.Expense
	}
	if !kind.Valid() {
		return decimal.Zero, "", "", "", fmt.Errorf("unknown transaction type %q", d.Kind)
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = "Other"
	}
	note := strings.TrimSpace(d.Note)
	if note == "" {
		note = category
	}
	return amount, kind, category, note, nil
}

// AddTransaction validates d, dates it today and prepends it.
func (l *Ledger) AddTransaction(d Draft) (model.Transaction, error) {
	amount, kind, category, note, err := l.resolveDraft(d)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:         uuid.NewString(),
		Amount:     amount,
		Kind:       kind,
		Category:   category,
		Note:       note,
		OccurredOn: l.now().Format(model.DayLayout),
	}

	prev := l.txs
	next := make([]model.Transaction, 0, len(prev)+1)
	next = append(next, tx)
	next = append(next, prev...)
	l.txs = next

	if err := l.save(KeyTransactions, l.txs); err != nil {
		l.txs = prev
		return model.Transaction{}, err
	}
	l.log.Debug("transaction added", zap.String("id", tx.ID), zap.String("category", category))
	return tx, nil
}

// UpdateTransaction replaces amount, kind, category and note of id. The id
// and date are preserved.
func (l *Ledger) UpdateTransaction(id string, d Draft) (model.Transaction, error) {
	idx := l.txIndex(id)
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	amount, kind, category, note, err := l.resolveDraft(d)
	if err != nil {
		return model.Transaction{}, err
	}

	prev := l.txs
	next := make([]model.Transaction, len(prev))
	copy(next, prev)
	tx := next[idx]
	tx.Amount = amount
	tx.Kind = kind
	tx.Category = category
	tx.Note = note
	next[idx] = tx
	l.txs = next

	if err := l.save(KeyTransactions, l.txs); err != nil {
		l.txs = prev
		return model.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes id. Deleting the transaction under edit ends the
// edit session.
func (l *Ledger) DeleteTransaction(id string) error {
	idx := l.txIndex(id)
	if idx < 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}

	prev := l.txs
	next := make([]model.Transaction, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	l.txs = next

	if err := l.save(KeyTransactions, l.txs); err != nil {
		l.txs = prev
		return err
	}
	if l.editing == id {
		l.editing = ""
	}
	return nil
}

// Transaction returns the transaction with id.
func (l *Ledger) Transaction(id string) (model.Transaction, bool) {
	idx := l.txIndex(id)
	if idx < 0 {
		return model.Transaction{}, false
	}
	return l.txs[idx], true
}

func (l *Ledger) txIndex(id string) int {
	for i, tx := range l.txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// BeginEdit marks id as the transaction under edit and returns it for
// prefilling a form.
func (l *Ledger) BeginEdit(id string) (model.Transaction, error) {
	tx, ok := l.Transaction(id)
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	l.editing = id
	return tx, nil
}

// CancelEdit ends the edit session without changes.
func (l *Ledger) CancelEdit() { l.editing = "" }

// EditingID returns the id under edit, if any.
func (l *Ledger) EditingID() (string, bool) {
	return l.editing, l.editing != ""
}

// SaveEdit applies d to the transaction under edit and ends the session.
// A rejected draft leaves the session open.
func (l *Ledger) SaveEdit(d Draft) (model.Transaction, error) {
	if l.editing == "" {
		return model.Transaction{}, fmt.Errorf("no transaction under edit: %w", ErrNotFound)
	}
	tx, err := l.UpdateTransaction(l.editing, d)
	if err != nil {
		return model.Transaction{}, err
	}
	l.editing = ""
	return tx, nil
}

// AddGoal appends a goal with zero savings.
func (l *Ledger) AddGoal(name, target string) (model.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Goal{}, ErrEmptyName
	}
	amount, err := ParsePositiveAmount(target)
	if err != nil {
		return model.Goal{}, err
	}

	g := model.Goal{ID: uuid.NewString(), Name: name, Target: amount, Saved: decimal.Zero}
	prev := l.goals
	l.goals = append(append(make([]model.Goal, 0, len(prev)+1), prev...), g)
	if err := l.save(KeyGoals, l.goals); err != nil {
		l.goals = prev
		return model.Goal{}, err
	}
	return g, nil
}

// DepositToGoal adds a positive amount to a goal's savings. Over-funding is
// allowed.
func (l *Ledger) DepositToGoal(id, amount string) (model.Goal, error) {
	idx := -1
	for i, g := range l.goals {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	d, err := ParsePositiveAmount(amount)
	if err != nil {
		return model.Goal{}, err
	}

	prev := l.goals
	next := make([]model.Goal, len(prev))
	copy(next, prev)
	next[idx].Saved = next[idx].Saved.Add(d)
	l.goals = next
	if err := l.save(KeyGoals, l.goals); err != nil {
		l.goals = prev
		return model.Goal{}, err
	}
	return next[idx], nil
}

// DeleteGoal removes a goal.
func (l *Ledger) DeleteGoal(id string) error {
	prev := l.goals
	next := make([]model.Goal, 0, len(prev))
	for _, g := range prev {
		if g.ID != id {
			next = append(next, g)
		}
	}
	if len(next) == len(prev) {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	l.goals = next
	if err := l.save(KeyGoals, l.goals); err != nil {
		l.goals = prev
		return err
	}
	return nil
}

// AddSubscription appends a monthly subscription.
func (l *Ledger) AddSubscription(name, amount string) (model.Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Subscription{}, ErrEmptyName
	}
	d, err := ParsePositiveAmount(amount)
	if err != nil {
		return model.Subscription{}, err
	}

	s := model.Subscription{ID: uuid.NewString(), Name: name, Amount: d}
	prev := l.subs
	l.subs = append(append(make([]model.Subscription, 0, len(prev)+1), prev...), s)
	if err := l.save(KeySubscriptions, l.subs); err != nil {
		l.subs = prev
		return model.Subscription{}, err
	}
	return s, nil
}

// DeleteSubscription removes a subscription.
func (l *Ledger) DeleteSubscription(id string) error {
	prev := l.subs
	next := make([]model.Subscription, 0, len(prev))
	for _, s := range prev {
		if s.ID != id {
			next = append(next, s)
		}
	}
	if len(next) == len(prev) {
		return fmt.Errorf("subscription %s: %w", id, ErrNotFound)
	}
	l.subs = next
	if err := l.save(KeySubscriptions, l.subs); err != nil {
		l.subs = prev
		return err
	}
	return nil
}

// Transactions returns a copy of all transactions, newest first.
func (l *Ledger) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), l.txs...)
}

// Goals returns a copy of all goals in creation order.
func (l *Ledger) Goals() []model.Goal {
	return append([]model.Goal(nil), l.goals...)
}

// Subscriptions returns a copy of all subscriptions in creation order.
func (l *Ledger) Subscriptions() []model.Subscription {
	return append([]model.Subscription(nil), l.subs...)
}

// Snapshot returns copies of all three collections.
func (l *Ledger) Snapshot() model.Snapshot {
	return model.Snapshot{
		Transactions:  l.Transactions(),
		Goals:         l.Goals(),
		Subscriptions: l.Subscriptions(),
	}
}

// Store returns the underlying key/value store.
func (l *Ledger) Store() store.KV { return l.kv }
