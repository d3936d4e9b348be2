package pet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// StorageKey is the slot the snapshot lives under
	StorageKey = "code-pet-storage"
	// SnapshotVersion is the envelope format written by this build
	SnapshotVersion = 1
)

var (
	// ErrNoSnapshot is returned by a Store when the slot is empty
	ErrNoSnapshot = errors.New("no saved pet")
	// ErrSnapshotVersion means the snapshot was written by an unknown format
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)

// Store is a keyed slot holding one encoded snapshot
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type envelope struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	State   Pet       `json:"state"`
}

// EncodeSnapshot wraps the pet in a versioned envelope
func EncodeSnapshot(p Pet, savedAt time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(envelope{
		Version: SnapshotVersion,
		SavedAt: savedAt.UTC(),
		State:   p,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot unwraps an envelope and repairs fields older snapshots may lack
func DecodeSnapshot(data []byte) (Pet, time.Time, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Pet{}, time.Time{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if env.Version != SnapshotVersion {
		return Pet{}, time.Time{}, fmt.Errorf("version %d: %w", env.Version, ErrSnapshotVersion)
	}
	p := env.State
	p.normalize()
	return p, env.SavedAt, nil
}

// normalize restores invariants on a decoded snapshot
func (p *Pet) normalize() {
	if p.Name == "" {
		p.Name = DefaultPetName
	}
	if p.Level < 1 {
		p.Level = 1
	}
	p.Experience = max(p.Experience, 0)
	p.Streak = max(p.Streak, 0)
	p.Coins = max(p.Coins, 0)
	p.Energy = Clamp(p.Energy)
	p.Health = Clamp(p.Health)
	p.Happiness = Clamp(p.Happiness)
	p.Intelligence = Clamp(p.Intelligence)
	if p.Form == "" {
		p.Form = FormForLevel(p.Level)
	}
	if p.Mood == "" {
		p.Mood = MoodNeutral
	}

	if p.DailyTasksCompleted == nil {
		p.DailyTasksCompleted = []string{}
	}
	if p.Items == nil {
		p.Items = []InventoryItem{}
	}
	if p.Achievements == nil {
		p.Achievements = AchievementCatalog()
	}
	if p.Trophies == nil {
		p.Trophies = TrophyCatalog()
	}
	if p.Collectibles == nil {
		p.Collectibles = []Collectible{}
	}
	if p.TradeOffers == nil {
		p.TradeOffers = []TradeOffer{}
	}
	if p.Skills == nil {
		p.Skills = SkillCatalog()
	}
	p.refreshSkills(nil)
	for _, it := range p.Items {
		if it.ID >= p.NextItemID {
			p.NextItemID = it.ID + 1
		}
	}
}

// LoadPet reads the snapshot from the store, creating a new pet if the slot is empty
func LoadPet(ctx context.Context, store Store, now time.Time) (Pet, bool, error) {
	data, err := store.Load(ctx, StorageKey)
	if errors.Is(err, ErrNoSnapshot) {
		return NewPet(now), true, nil
	}
	if err != nil {
		return Pet{}, false, fmt.Errorf("load pet: %w", err)
	}
	p, _, err := DecodeSnapshot(data)
	if err != nil {
		return Pet{}, false, fmt.Errorf("load pet: %w", err)
	}
	return p, false, nil
}

// SavePet encodes and writes the snapshot
func SavePet(ctx context.Context, store Store, p Pet, now time.Time) error {
	data, err := EncodeSnapshot(p, now)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save pet: %w", err)
	}
	return nil
}
