// Package watch provides the long-running ledger monitor. It re-reads the
// store on an interval, applies the weekly rollover and emits an event
// whenever the headline figures change.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
	"github.com/theirongolddev/moneymirror/internal/store"
)

// Event types.
const (
	EventSnapshot    = "snapshot"
	EventLedgerDelta = "ledger_delta"
	EventWeekReset   = "week_reset"
)

// Config controls the watch runtime behavior.
type Config struct {
	Interval     time.Duration
	EventsBuffer int
	WeeklyMode   bool
	Now          func() time.Time
}

// Snapshot is a compact ledger state for status and event payloads.
type Snapshot struct {
	At                time.Time       `json:"at"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	Balance           decimal.Decimal `json:"balance"`
	SubscriptionTotal decimal.Decimal `json:"subscription_total"`
	TodayExpense      decimal.Decimal `json:"today_expense"`
	WeekExpense       decimal.Decimal `json:"week_expense"`
	Transactions      int             `json:"transactions"`
	Goals             int             `json:"goals"`
	Subscriptions     int             `json:"subscriptions"`
	WeekKey           string          `json:"week_key,omitempty"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	Transactions  int             `json:"transactions"`
	Goals         int             `json:"goals"`
	Subscriptions int             `json:"subscriptions"`
	WeekExpense   decimal.Decimal `json:"week_expense"`
}

func (d Delta) isZero() bool {
	return d.Income.IsZero() &&
		d.Expense.IsZero() &&
		d.Balance.IsZero() &&
		d.Transactions == 0 &&
		d.Goals == 0 &&
		d.Subscriptions == 0 &&
		d.WeekExpense.IsZero()
}

// Event is emitted whenever the ledger snapshot updates.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status describes the service's runtime state.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service polls a store and publishes ledger events.
type Service struct {
	cfg Config
	kv  store.KV
	log *zap.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new watch service reading from kv.
func New(cfg Config, kv store.KV, log *zap.Logger) *Service {
	if cfg.Interval < time.Second {
		cfg.Interval = 15 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		cfg:       cfg,
		kv:        kv,
		log:       log,
		startedAt: cfg.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Reload re-reads the ledger and, when w is non-nil, the weekly window.
// The TUI calls it on each refresh tick.
func Reload(l *ledger.Ledger, w *period.Window, now time.Time) (period.State, error) {
	l.Load()
	return loadWindow(w, now)
}

func loadWindow(w *period.Window, now time.Time) (period.State, error) {
	if w == nil {
		return period.Fresh, nil
	}
	state, _, err := w.Load(now)
	return state, err
}

// Run polls until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeSubscribers()
			return nil
		case <-ticker.C:
			s.pollOnce()
		}
	}
}

func (s *Service) pollOnce() {
	now := s.cfg.Now()

	// Open loads the ledger; only the window still needs reading.
	l, err := ledger.Open(s.kv, ledger.WithLogger(s.log))
	if err != nil {
		s.recordError(now, err)
		return
	}

	var window *period.Window
	if s.cfg.WeeklyMode {
		window = period.NewWindow(s.kv, s.log)
	}
	state, err := loadWindow(window, now)
	if err != nil {
		s.recordError(now, err)
		return
	}

	snap := snapshotFrom(pipeline.Summarize(l.Snapshot(), now), now)
	if window != nil {
		snap.WeekKey = window.Key()
		snap.WeekExpense = window.WeekTotal()
		snap.TodayExpense = window.TodayTotal(now)
	}

	var evs []Event

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if state == period.Stale && prevExists {
		s.nextEventID++
		evs = append(evs, Event{ID: s.nextEventID, Type: EventWeekReset, Timestamp: now, Snapshot: snap})
	}
	if !prevExists {
		s.nextEventID++
		evs = append(evs, Event{ID: s.nextEventID, Type: EventSnapshot, Timestamp: now, Snapshot: snap})
	} else if delta := diffSnapshots(prev, snap); !delta.isZero() {
		s.nextEventID++
		evs = append(evs, Event{ID: s.nextEventID, Type: EventLedgerDelta, Timestamp: now, Snapshot: snap, Delta: delta})
	}
	s.mu.Unlock()

	for _, ev := range evs {
		s.publishEvent(ev)
	}
}

func (s *Service) recordError(now time.Time, err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.lastPollAt = now
	s.pollCount++
	s.mu.Unlock()
	s.log.Warn("watch poll failed", zap.Error(err))
}

func snapshotFrom(sum model.Summary, at time.Time) Snapshot {
	return Snapshot{
		At:                at,
		Income:            sum.Income,
		Expense:           sum.Expense,
		Balance:           sum.Balance,
		SubscriptionTotal: sum.SubscriptionTotal,
		TodayExpense:      sum.TodayExpense,
		WeekExpense:       sum.WeekExpense,
		Transactions:      sum.Transactions,
		Goals:             sum.Goals,
		Subscriptions:     sum.Subscriptions,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Income:        curr.Income.Sub(prev.Income),
		Expense:       curr.Expense.Sub(prev.Expense),
		Balance:       curr.Balance.Sub(prev.Balance),
		Transactions:  curr.Transactions - prev.Transactions,
		Goals:         curr.Goals - prev.Goals,
		Subscriptions: curr.Subscriptions - prev.Subscriptions,
		WeekExpense:   curr.WeekExpense.Sub(prev.WeekExpense),
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

// Status returns the current runtime state.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

// Events returns a copy of the buffered events, oldest first.
func (s *Service) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

// Subscribe registers a channel that receives every subsequent event.
// Slow subscribers miss events rather than block the poller. The returned
// func unsubscribes.
func (s *Service) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	s.mu.Unlock()

	return ch, func() { s.removeSubscriber(id) }
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Service) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
