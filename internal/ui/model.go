package ui

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codepet/internal/logger"
	"codepet/internal/pet"
)

// Tab is one panel of the game screen
type Tab int

const (
	TabActions Tab = iota
	TabInventory
	TabShop
	TabTasks
	TabCollection
	TabTrades
	TabTrophies
)

var tabNames = []string{"Actions", "Inventory", "Shop", "Tasks", "Collection", "Trades", "Trophies"}

func (t Tab) String() string { return tabNames[t] }

const (
	MessageDuration = 3 * time.Second
	RewardDuration  = 3 * time.Second
)

type menuEntry struct {
	label  string
	action func() pet.Action // nil asks for a reset confirmation
}

var actionMenu = []menuEntry{
	{"💻 Code session", pet.CodeSession},
	{"☕ Take a break", pet.Break},
	{"😴 Sleep", pet.Sleep},
	{"🎾 Play", pet.Play},
	{"🏋️ Train", pet.Train},
	{"🤗 Pet", pet.Cuddle},
	{"🍎 Feed", pet.Feed},
	{"🎩 Trick", pet.Trick},
	{"🔄 Reset progress", nil},
}

// Options tunes the timers driving the game screen
type Options struct {
	DecayInterval time.Duration
	IdleInterval  time.Duration
	Now           func() time.Time
}

// Model represents the game screen. Pet is the last snapshot read from the game.
type Model struct {
	ctx  context.Context
	game *pet.Game
	opts Options

	Pet          pet.Pet
	Tab          Tab
	Choice       int
	Quitting     bool
	ConfirmReset bool

	Notes          []pet.Notification
	MessageExpires time.Time
	Reward         *pet.Reward
	RewardExpires  time.Time

	Animation Animation
	Idle      Animation
	animSeq   int
	idleSeq   int

	// Marks for building a trade on the collection tab
	Offer map[int]bool
	Want  map[int]bool
}

type decayTickMsg time.Time
type idleTickMsg time.Time
type animTickMsg struct {
	seq  int
	idle bool
}

// NewModel creates a new game model around an opened game
func NewModel(ctx context.Context, game *pet.Game, opts Options) Model {
	if opts.DecayInterval <= 0 {
		opts.DecayInterval = pet.DefaultDecayInterval
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = pet.DefaultIdleInterval
	}
	if opts.Now == nil {
		opts.Now = pet.TimeNow
	}
	return Model{
		ctx:   ctx,
		game:  game,
		opts:  opts,
		Pet:   game.Snapshot(),
		Offer: map[int]bool{},
		Want:  map[int]bool{},
	}
}

// Run starts the full-screen game, showing the startup result first
func Run(ctx context.Context, game *pet.Game, opts Options, startup pet.Result) error {
	m := NewModel(ctx, game, opts)
	m.show(startup)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		logger.Error("game screen stopped", "error", err)
		return err
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(decayTick(m.opts.DecayInterval), idleTick(m.opts.IdleInterval))
}

func decayTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}

func idleTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return idleTickMsg(t)
	})
}

func animTick(seq int, idle bool) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(time.Time) tea.Msg {
		return animTickMsg{seq: seq, idle: idle}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}
		// The pet is busy until the animation ends and the action commits
		if m.Animation.Type != AnimNone || m.Idle.Type != AnimNone {
			return m, nil
		}
		if m.ConfirmReset {
			m.ConfirmReset = false
			if msg.String() == "y" {
				return m.start(pet.ResetProgress())
			}
			m.setMessage("Reset cancelled.", pet.NoteInfo)
			return m, nil
		}
		return m.handleKey(msg.String())

	case decayTickMsg:
		res, err := m.game.Tick(m.ctx)
		if err != nil {
			logger.Warn("decay tick failed", "error", err)
		}
		m.show(res)
		m.refresh()
		return m, decayTick(m.opts.DecayInterval)

	case idleTickMsg:
		next := idleTick(m.opts.IdleInterval)
		if m.Animation.Type != AnimNone || m.Idle.Type != AnimNone {
			return m, next
		}
		idle, ok := m.game.RollIdle()
		if !ok {
			return m, next
		}
		m.idleSeq++
		m.Idle = Animation{Type: animationForIdle(idle.Name), StartTime: m.opts.Now(), Duration: idle.Duration}
		return m, tea.Batch(next, animTick(m.idleSeq, true))

	case animTickMsg:
		if msg.idle {
			// Drop ticks that belong to an older idle animation
			if m.Idle.Type == AnimNone || msg.seq != m.idleSeq {
				return m, nil
			}
			m.Idle.Frame++
			if IsAnimationComplete(m.Idle) {
				m.Idle = Animation{}
				return m, nil
			}
			return m, animTick(m.idleSeq, true)
		}

		if m.Animation.Type == AnimNone || msg.seq != m.animSeq {
			return m, nil
		}
		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			return m.commit()
		}
		return m, animTick(m.animSeq, false)
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab", "right", "l":
		m.switchTab((m.Tab + 1) % Tab(len(tabNames)))
	case "shift+tab", "left", "h":
		m.switchTab((m.Tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case "1", "2", "3", "4", "5", "6", "7":
		m.switchTab(Tab(key[0] - '1'))
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < m.rows()-1 {
			m.Choice++
		}
	case "enter", " ":
		return m.activate()
	case "s":
		return m.sell()
	case "o", "w":
		m.mark(key == "o")
	case "t":
		return m.createTrade()
	case "a", "r", "x":
		return m.answerTrade(key)
	case "esc":
		clear(m.Offer)
		clear(m.Want)
	}
	return m, nil
}

func (m *Model) switchTab(t Tab) {
	m.Tab = t
	m.Choice = 0
}

// rows is the number of selectable rows on the current tab
func (m Model) rows() int {
	switch m.Tab {
	case TabActions:
		return len(actionMenu)
	case TabInventory:
		return len(m.Pet.Items)
	case TabShop:
		return len(pet.Shop(m.Pet))
	case TabCollection:
		return len(m.Pet.Collectibles)
	case TabTrades:
		return len(m.Pet.TradeOffers)
	default:
		return 0
	}
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.Tab {
	case TabActions:
		entry := actionMenu[m.Choice]
		if entry.action == nil {
			m.ConfirmReset = true
			return m, nil
		}
		return m.start(entry.action())
	case TabInventory:
		if m.Choice < len(m.Pet.Items) {
			return m.start(pet.UseItem(m.Pet.Items[m.Choice].ID))
		}
	case TabShop:
		shop := pet.Shop(m.Pet)
		if m.Choice < len(shop) {
			return m.start(pet.Buy(shop[m.Choice]))
		}
	}
	return m, nil
}

func (m Model) sell() (tea.Model, tea.Cmd) {
	switch m.Tab {
	case TabInventory:
		if m.Choice < len(m.Pet.Items) {
			return m.start(pet.SellItem(m.Pet.Items[m.Choice].ID))
		}
	case TabCollection:
		if m.Choice < len(m.Pet.Collectibles) {
			return m.start(pet.SellCollectible(m.Pet.Collectibles[m.Choice].ID))
		}
	}
	return m, nil
}

// mark toggles the selected collectible on the offered or wanted side of a trade
func (m *Model) mark(offer bool) {
	if m.Tab != TabCollection || m.Choice >= len(m.Pet.Collectibles) {
		return
	}
	c := m.Pet.Collectibles[m.Choice]
	side, other := m.Want, m.Offer
	if offer {
		side, other = m.Offer, m.Want
	}
	delete(other, c.ID)
	if side[c.ID] {
		delete(side, c.ID)
	} else {
		side[c.ID] = true
	}
}

func (m Model) createTrade() (tea.Model, tea.Cmd) {
	if m.Tab != TabCollection {
		return m, nil
	}
	id, res, err := m.game.CreateTradeOffer(m.ctx, markedIDs(m.Offer), markedIDs(m.Want))
	m.show(res)
	m.refresh()
	if err == nil {
		logger.Debug("trade offer created", "id", id)
		clear(m.Offer)
		clear(m.Want)
	}
	return m, nil
}

func markedIDs(marks map[int]bool) []int {
	ids := make([]int, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m Model) answerTrade(key string) (tea.Model, tea.Cmd) {
	if m.Tab != TabTrades || m.Choice >= len(m.Pet.TradeOffers) {
		return m, nil
	}
	id := m.Pet.TradeOffers[m.Choice].ID
	switch key {
	case "a":
		return m.start(pet.RespondToTrade(id, pet.Accept))
	case "r":
		return m.start(pet.RespondToTrade(id, pet.Reject))
	default:
		return m.start(pet.CancelTrade(id))
	}
}

// start begins an action and animates it for its delay before committing
func (m Model) start(a pet.Action) (Model, tea.Cmd) {
	res, err := m.game.Begin(m.ctx, a)
	m.show(res)
	m.refresh()
	if err != nil {
		return m, nil
	}
	if a.Delay <= 0 {
		return m.commit()
	}
	m.animSeq++
	m.Animation = Animation{
		Type:      animationForAction(a.Kind),
		StartTime: m.opts.Now(),
		Duration:  a.Delay,
	}
	return m, animTick(m.animSeq, false)
}

func (m Model) commit() (Model, tea.Cmd) {
	m.Animation = Animation{}
	res, err := m.game.Commit(m.ctx)
	if err != nil {
		logger.Debug("commit failed", "error", err)
	}
	m.show(res)
	m.refresh()
	return m, nil
}

// refresh re-reads the snapshot and keeps the cursor in range
func (m *Model) refresh() {
	m.Pet = m.game.Snapshot()
	if n := m.rows(); m.Choice >= n {
		m.Choice = max(n-1, 0)
	}
}

// show displays an operation's notifications and its latest reward
func (m *Model) show(res pet.Result) {
	now := m.opts.Now()
	if len(res.Notifications) > 0 {
		m.Notes = res.Notifications
		m.MessageExpires = now.Add(MessageDuration)
	}
	if n := len(res.Rewards); n > 0 {
		r := res.Rewards[n-1]
		m.Reward = &r
		m.RewardExpires = now.Add(RewardDuration)
	}
}

func (m *Model) setMessage(msg, kind string) {
	m.show(pet.Result{Notifications: []pet.Notification{{Message: msg, Kind: kind}}})
}

func (m Model) messageVisible() bool {
	return len(m.Notes) > 0 && m.opts.Now().Before(m.MessageExpires)
}

func (m Model) rewardVisible() bool {
	return m.Reward != nil && m.opts.Now().Before(m.RewardExpires)
}
