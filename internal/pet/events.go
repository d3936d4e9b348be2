package pet

import (
	"fmt"
	"time"
)

// Notification kinds
const (
	NoteInfo    = "info"
	NoteSuccess = "success"
	NoteError   = "error"
)

// Reward kinds
const (
	RewardLevel      = "level"
	RewardDailyLogin = "dailyLogin"
)

// Notification is a short message for the presentation layer
type Notification struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Reward is a celebratory event worth an overlay
type Reward struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

// Result collects everything one operation wants to announce
type Result struct {
	Notifications []Notification `json:"notifications,omitempty"`
	Rewards       []Reward       `json:"rewards,omitempty"`
}

// Merge appends another result's events after this one's
func (r *Result) Merge(o Result) {
	r.Notifications = append(r.Notifications, o.Notifications...)
	r.Rewards = append(r.Rewards, o.Rewards...)
}

// Messages flattens the notifications for plain output
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Notifications))
	for _, n := range r.Notifications {
		out = append(out, n.Message)
	}
	return out
}

// turn carries the inputs and announcements of a single rule application
type turn struct {
	rng Rand
	now time.Time
	res Result
}

func newTurn(rng Rand, now time.Time) *turn {
	return &turn{rng: rng, now: now}
}

func (t *turn) info(format string, args ...any) {
	t.res.Notifications = append(t.res.Notifications, Notification{fmt.Sprintf(format, args...), NoteInfo})
}

func (t *turn) success(format string, args ...any) {
	t.res.Notifications = append(t.res.Notifications, Notification{fmt.Sprintf(format, args...), NoteSuccess})
}

func (t *turn) reward(kind string, value int) {
	t.res.Rewards = append(t.res.Rewards, Reward{kind, value})
}

// randInt returns a value in [lo, lo+spread)
func (t *turn) randInt(lo, spread int) int {
	return lo + t.rng.Intn(spread)
}

// ErrorResult wraps a failure as a single error notification
func ErrorResult(err error) Result {
	return Result{Notifications: []Notification{{err.Error(), NoteError}}}
}
