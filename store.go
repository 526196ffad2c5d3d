package goodmoney

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/laurenceescalante81/Good-Money-AI-sub001/kv"
)

// Key suffixes under which each collection or singleton persists. The full
// key is "<prefix>_<suffix>".
const (
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
	keyGoals        = "goals"
	keyMortgage     = "mortgage"
	keySuper        = "super"
	keyInsurance    = "insurance"
	keyProfileMode  = "profileMode"
	keyPartnerName  = "partnerName"
)

// DefaultKeyPrefix scopes the persisted keys of a ledger.
const DefaultKeyPrefix = "goodmoney"

// Store is the single authoritative, mutable snapshot of all entities. It
// bridges in-memory state and the durable key-value substrate.
//
// Mutations apply to memory synchronously and persist asynchronously; the
// caller never blocks on durability and never sees a persistence error.
// Inputs are trusted: validation is the caller's responsibility.
type Store struct {
	db     kv.Store
	clock  Clock
	log    zerolog.Logger
	prefix string

	mu           sync.RWMutex
	ready        bool
	transactions []Transaction
	budgets      []Budget
	goals        []SavingsGoal
	mortgage     *MortgageDetails
	super        *SuperDetails
	insurance    []InsurancePolicy
	profile      Profile

	loadOnce sync.Once

	qmu      sync.Mutex
	queues   map[string]*writeQueue
	inflight sync.WaitGroup

	smu  sync.Mutex
	subs []chan string
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the source of "now" (month windows, projections, ids).
func WithClock(c Clock) Option { return func(s *Store) { s.clock = c } }

// WithLogger sets the logger persistence failures are reported to.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithKeyPrefix changes the prefix scoping the persisted keys.
func WithKeyPrefix(prefix string) Option { return func(s *Store) { s.prefix = prefix } }

// NewStore creates an empty, not-yet-loaded store over db. Call Load before
// querying.
func NewStore(db kv.Store, opts ...Option) *Store {
	s := &Store{
		db:      db,
		clock:   SystemClock(),
		log:     zerolog.Nop(),
		prefix:  DefaultKeyPrefix,
		profile: DefaultProfile(),
		queues:  make(map[string]*writeQueue),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(suffix string) string { return s.prefix + "_" + suffix }

// Load reads every collection from the substrate, in parallel, and flips the
// store from loading to ready exactly once. A failed or absent key yields
// that slot's empty or default value; failures are logged, never fatal.
func (s *Store) Load(ctx context.Context) {
	s.loadOnce.Do(func() { s.load(ctx) })
}

func (s *Store) load(ctx context.Context) {
	var (
		txs       []Transaction
		budgets   []Budget
		goals     []SavingsGoal
		mortgage  *MortgageDetails
		super     *SuperDetails
		insurance []InsurancePolicy
		mode      ProfileMode
		modeOK    bool
		partner   string
		partnerOK bool
	)

	var wg sync.WaitGroup
	wg.Add(8)
	go func() { defer wg.Done(); txs, _ = loadSlot[[]Transaction](ctx, s, keyTransactions) }()
	go func() { defer wg.Done(); budgets, _ = loadSlot[[]Budget](ctx, s, keyBudgets) }()
	go func() { defer wg.Done(); goals, _ = loadSlot[[]SavingsGoal](ctx, s, keyGoals) }()
	go func() { defer wg.Done(); mortgage, _ = loadSlot[*MortgageDetails](ctx, s, keyMortgage) }()
	go func() { defer wg.Done(); super, _ = loadSlot[*SuperDetails](ctx, s, keySuper) }()
	go func() { defer wg.Done(); insurance, _ = loadSlot[[]InsurancePolicy](ctx, s, keyInsurance) }()
	go func() { defer wg.Done(); mode, modeOK = loadSlot[ProfileMode](ctx, s, keyProfileMode) }()
	go func() { defer wg.Done(); partner, partnerOK = loadSlot[string](ctx, s, keyPartnerName) }()
	wg.Wait()

	// All reads settled: publish the whole snapshot and the ready flag in one
	// critical section so no partial load is ever observable.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = txs
	s.budgets = budgets
	s.goals = goals
	s.mortgage = mortgage
	s.super = super
	s.insurance = insurance
	if modeOK {
		s.profile.Mode = mode
	}
	if partnerOK {
		s.profile.PartnerName = partner
	}
	s.ready = true
}

// loadSlot reads and decodes one persisted slot. ok is false when the key is
// absent or unreadable, in which case the zero value applies.
func loadSlot[T any](ctx context.Context, s *Store, suffix string) (v T, ok bool) {
	key := s.key(suffix)
	data, found, err := s.db.Get(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("could not load key, using default")
		return v, false
	}
	if !found {
		return v, false
	}
	v, err = decodeSlot[T](data)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("could not decode key, using default")
		var zero T
		return zero, false
	}
	return v, true
}

// Ready reports whether the initial load has settled. Until then the store
// is loading, which is distinct from being empty.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Subscribe returns a channel receiving the key suffix of every mutated
// collection, for callers that re-render on change. Slow consumers drop
// notifications rather than block the writer. The channel is closed by Close.
func (s *Store) Subscribe() <-chan string {
	ch := make(chan string, 16)
	s.smu.Lock()
	s.subs = append(s.subs, ch)
	s.smu.Unlock()
	return ch
}

func (s *Store) notify(suffix string) {
	s.smu.Lock()
	defer s.smu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- suffix:
		default:
		}
	}
}

// Close drains the pending persistence queues and closes subscriptions. The
// embedded source of this design never exits; a CLI process must.
func (s *Store) Close() {
	s.inflight.Wait()
	s.smu.Lock()
	defer s.smu.Unlock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

// AddTransaction records a new transaction with a fresh id, prepending it:
// most-recent-first ordering is an invariant of the collection. If the date
// is empty it is stamped with the current instant.
func (s *Store) AddTransaction(t Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	t.ID = newID(now)
	if t.Date == "" {
		t.Date = now.UTC().Format(DatetimeFormat)
	}
	s.transactions = append([]Transaction{t}, s.transactions...)
	s.persistSet(keyTransactions, s.encode(s.transactions))
	return t
}

// DeleteTransaction removes a transaction by id. An absent id is a no-op.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.transactions[:0:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.transactions) {
		return
	}
	s.transactions = kept
	s.persistSet(keyTransactions, s.encode(s.transactions))
}

// Transactions returns the current transactions, most recent first.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Transaction(nil), s.transactions...)
}

// AddBudget records a new budget. Uniqueness of the category across budgets
// is the caller's contract; the store does not reject a duplicate.
func (s *Store) AddBudget(b Budget) Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, b)
	s.persistSet(keyBudgets, s.encode(s.budgets))
	return b
}

// DeleteBudget removes the budget for a category. Absent category is a no-op.
func (s *Store) DeleteBudget(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.budgets[:0:0]
	for _, b := range s.budgets {
		if b.Category != category {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.budgets) {
		return
	}
	s.budgets = kept
	s.persistSet(keyBudgets, s.encode(s.budgets))
}

// Budgets returns the current budgets in creation order.
func (s *Store) Budgets() []Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Budget(nil), s.budgets...)
}

// AddGoal records a new savings goal with a fresh id. Progress always starts
// at zero regardless of the input's CurrentAmount.
func (s *Store) AddGoal(g SavingsGoal) SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = newID(s.clock.Now())
	g.CurrentAmount = Amount{}
	s.goals = append(s.goals, g)
	s.persistSet(keyGoals, s.encode(s.goals))
	return g
}

// UpdateGoalAmount applies a deposit (or withdrawal, when delta is negative)
// to a goal. The balance is clamped at zero and may exceed the target.
// An absent id is a no-op.
func (s *Store) UpdateGoalAmount(id string, delta Amount) (SavingsGoal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.goals {
		if g.ID != id {
			continue
		}
		next := g.CurrentAmount.Add(delta)
		if next.IsNegative() {
			next = Amount{}
		}
		s.goals[i].CurrentAmount = next
		s.persistSet(keyGoals, s.encode(s.goals))
		return s.goals[i], true
	}
	return SavingsGoal{}, false
}

// DeleteGoal removes a goal by id. An absent id is a no-op.
func (s *Store) DeleteGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.goals[:0:0]
	for _, g := range s.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(s.goals) {
		return
	}
	s.goals = kept
	s.persistSet(keyGoals, s.encode(s.goals))
}

// Goals returns the current savings goals in creation order.
func (s *Store) Goals() []SavingsGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SavingsGoal(nil), s.goals...)
}

// SetMortgage replaces the mortgage record wholesale.
func (s *Store) SetMortgage(m MortgageDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mortgage = &m
	s.persistSet(keyMortgage, s.encode(s.mortgage))
}

// ClearMortgage removes the mortgage record and its persisted key.
func (s *Store) ClearMortgage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mortgage = nil
	s.persistDelete(keyMortgage)
}

// Mortgage returns the mortgage record, if any.
func (s *Store) Mortgage() (MortgageDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mortgage == nil {
		return MortgageDetails{}, false
	}
	return *s.mortgage, true
}

// SetSuper replaces the superannuation record wholesale, stamping
// LastUpdated when the caller left it empty.
func (s *Store) SetSuper(d SuperDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.LastUpdated == "" {
		d.LastUpdated = s.clock.Now().UTC().Format(DatetimeFormat)
	}
	s.super = &d
	s.persistSet(keySuper, s.encode(s.super))
}

// ClearSuper removes the superannuation record and its persisted key.
func (s *Store) ClearSuper() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.super = nil
	s.persistDelete(keySuper)
}

// Super returns the superannuation record, if any.
func (s *Store) Super() (SuperDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.super == nil {
		return SuperDetails{}, false
	}
	return *s.super, true
}

// AddInsurance records a new policy with a fresh id.
func (s *Store) AddInsurance(p InsurancePolicy) InsurancePolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID(s.clock.Now())
	s.insurance = append(s.insurance, p)
	s.persistSet(keyInsurance, s.encode(s.insurance))
	return p
}

// DeleteInsurance removes a policy by id. An absent id is a no-op.
func (s *Store) DeleteInsurance(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.insurance[:0:0]
	for _, p := range s.insurance {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.insurance) {
		return
	}
	s.insurance = kept
	s.persistSet(keyInsurance, s.encode(s.insurance))
}

// Insurance returns the current policies in creation order.
func (s *Store) Insurance() []InsurancePolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]InsurancePolicy(nil), s.insurance...)
}

// SetProfileMode switches between individual and couple mode.
func (s *Store) SetProfileMode(mode ProfileMode) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Mode = mode
	s.persistSet(keyProfileMode, s.encode(s.profile.Mode))
	return s.profile
}

// SetPartnerName renames the partner.
func (s *Store) SetPartnerName(name string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.PartnerName = name
	s.persistSet(keyPartnerName, s.encode(s.profile.PartnerName))
	return s.profile
}

// Profile returns the current profile settings.
func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
