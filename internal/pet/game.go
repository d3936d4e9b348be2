package pet

import (
	"context"
	"sync"
	"time"

	"codepet/internal/logger"
)

// Game owns the single pet snapshot. Every operation works on a clone and
// swaps it in only when the rule succeeds.
type Game struct {
	mu      sync.Mutex
	pet     Pet
	store   Store
	rng     Rand
	now     func() time.Time
	pending *Action
	newName string
}

// Option configures a Game
type Option func(*Game)

// WithRand injects the random source
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithClock injects the clock
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithStore persists the snapshot after every change
func WithStore(s Store) Option {
	return func(g *Game) { g.store = s }
}

// WithNewPetName names the pet Open creates when the store is empty
func WithNewPetName(name string) Option {
	return func(g *Game) { g.newName = name }
}

// NewGame wraps an existing snapshot
func NewGame(p Pet, opts ...Option) *Game {
	g := &Game{pet: p.Clone(), rng: NewRand(), now: TimeNow}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Open loads the saved pet (or creates one) and runs the daily rollover
func Open(ctx context.Context, store Store, opts ...Option) (*Game, Result, error) {
	g := NewGame(Pet{}, append([]Option{WithStore(store)}, opts...)...)
	p, created, err := LoadPet(ctx, store, g.now())
	if err != nil {
		return nil, Result{}, err
	}
	if created && g.newName != "" {
		name, err := cleanName(g.newName)
		if err != nil {
			return nil, Result{}, err
		}
		p.Name = name
	}
	g.pet = p
	if created {
		logger.Info("created new pet", "name", p.Name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	res := g.housekeep(ctx)
	if created {
		if err := g.save(ctx); err != nil {
			return g, res, err
		}
	}
	return g, res, nil
}

// Snapshot returns a copy of the current pet
func (g *Game) Snapshot() Pet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pet.Clone()
}

// Busy reports whether an action is waiting to commit
func (g *Game) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Pending returns the action waiting to commit, if any
func (g *Game) Pending() (Action, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return Action{}, false
	}
	return *g.pending, true
}

// Begin validates an action and marks the game busy until Commit.
// A second Begin while busy fails with ErrBusy and is not queued.
func (g *Game) Begin(ctx context.Context, a Action) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.begin(ctx, a)
}

// Commit applies the pending action and clears the busy flag
func (g *Game) Commit(ctx context.Context) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commit(ctx)
}

// Run begins and commits an action at once, for callers with no animation
func (g *Game) Run(ctx context.Context, a Action) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	res, err := g.begin(ctx, a)
	if err != nil {
		return res, err
	}
	r, err := g.commit(ctx)
	res.Merge(r)
	return res, err
}

// Tick applies ambient decay and expires stale offers
func (g *Game) Tick(ctx context.Context) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	res := g.housekeep(ctx)
	r, err := g.mutate(ctx, func(p *Pet, t *turn) error {
		applyDecay(p, t)
		return nil
	})
	res.Merge(r)
	return res, err
}

// RollIdle decides whether the pet plays an idle animation. It never changes the pet.
func (g *Game) RollIdle() (IdleAnimation, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return RollIdleAnimation(g.rng)
}

// CreateTradeOffer runs a trade creation and returns the new offer id
func (g *Game) CreateTradeOffer(ctx context.Context, offerIDs, requestIDs []int) (string, Result, error) {
	var id string
	res, err := g.Run(ctx, CreateTradeOffer(offerIDs, requestIDs, &id))
	return id, res, err
}

// CompleteDailyTask marks a task done, reporting whether it was newly completed
func (g *Game) CompleteDailyTask(ctx context.Context, id string) (bool, Result, error) {
	var done bool
	res, err := g.Run(ctx, CompleteDailyTask(id, &done))
	return done, res, err
}

func (g *Game) begin(ctx context.Context, a Action) (Result, error) {
	if g.pending != nil {
		return ErrorResult(ErrBusy), ErrBusy
	}
	res := g.housekeep(ctx)
	if err := a.Check(g.pet); err != nil {
		res.Merge(ErrorResult(err))
		return res, err
	}
	g.pending = &a
	return res, nil
}

func (g *Game) commit(ctx context.Context) (Result, error) {
	if g.pending == nil {
		return Result{}, ErrNoOp
	}
	a := *g.pending
	g.pending = nil

	res := g.housekeep(ctx)
	r, err := g.mutate(ctx, a.apply)
	res.Merge(r)
	if err != nil {
		logger.Debug("action failed", "action", a.Kind, "error", err)
	}
	return res, err
}

// housekeep runs the daily rollover and offer expiry on the live snapshot.
// Neither can fail, so no clone is needed.
func (g *Game) housekeep(ctx context.Context) Result {
	t := newTurn(g.rng, g.now())
	rolled := g.pet.rollover(t)
	expired := g.pet.expireOffers(t.now)
	if expired > 0 {
		logger.Info("trade offers expired", "count", expired)
	}
	if rolled || expired > 0 {
		// failures are logged by save; the in-memory state stays authoritative
		_ = g.save(ctx)
	}
	return t.res
}

// mutate applies a rule to a clone and swaps it in on success
func (g *Game) mutate(ctx context.Context, fn func(*Pet, *turn) error) (Result, error) {
	t := newTurn(g.rng, g.now())
	next := g.pet.Clone()
	if err := fn(&next, t); err != nil {
		return ErrorResult(err), err
	}
	next.checkMilestones(t)
	g.pet = next
	return t.res, g.save(ctx)
}

func (g *Game) save(ctx context.Context) error {
	if g.store == nil {
		return nil
	}
	if err := SavePet(ctx, g.store, g.pet, g.now()); err != nil {
		logger.Error("failed to save pet", "error", err)
		return err
	}
	return nil
}
