package pet

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"codepet/internal/logger"
)

// TradeDecision is the answer to a pending offer
type TradeDecision string

const (
	Accept TradeDecision = "accept"
	Reject TradeDecision = "reject"
)

// ParseTradeDecision accepts accept/accepted and reject/rejected
func ParseTradeDecision(s string) (TradeDecision, error) {
	switch s {
	case "accept", "accepted":
		return Accept, nil
	case "reject", "rejected":
		return Reject, nil
	}
	return "", fmt.Errorf("trade decision %q: %w", s, ErrInvalidInput)
}

// PendingOffers returns offers still awaiting an answer
func (p Pet) PendingOffers() []TradeOffer {
	var out []TradeOffer
	for _, o := range p.TradeOffers {
		if o.Status == TradePending {
			out = append(out, o)
		}
	}
	return out
}

func checkCreateOffer(offerIDs, requestIDs []int) func(Pet) error {
	return func(p Pet) error {
		if len(offerIDs) == 0 || len(requestIDs) == 0 {
			return fmt.Errorf("an offer needs items on both sides: %w", ErrInvalidInput)
		}
		seen := map[int]bool{}
		for _, id := range append(append([]int{}, offerIDs...), requestIDs...) {
			if seen[id] {
				return fmt.Errorf("collectible %d listed twice: %w", id, ErrInvalidInput)
			}
			seen[id] = true
		}
		for _, id := range offerIDs {
			idx := p.FindCollectible(id)
			if idx < 0 || !p.Collectibles[idx].Owned {
				return invalidRef("owned collectible", id)
			}
			if !p.Collectibles[idx].Tradable {
				return fmt.Errorf("%s is not tradable: %w", p.Collectibles[idx].Name, ErrInvalidInput)
			}
		}
		for _, id := range requestIDs {
			idx := p.FindCollectible(id)
			if idx < 0 {
				return invalidRef("collectible", id)
			}
			if p.Collectibles[idx].Owned {
				return fmt.Errorf("already own %s: %w", p.Collectibles[idx].Name, ErrInvalidInput)
			}
			if !p.Collectibles[idx].Tradable {
				return fmt.Errorf("%s is not tradable: %w", p.Collectibles[idx].Name, ErrInvalidInput)
			}
		}
		return nil
	}
}

// pickCollectibles copies catalog entries into an offer, without ownership dates
func (p *Pet) pickCollectibles(ids []int) []Collectible {
	out := make([]Collectible, 0, len(ids))
	for _, id := range ids {
		c := p.Collectibles[p.FindCollectible(id)]
		c.ObtainedDate = nil
		out = append(out, c)
	}
	return out
}

func createOffer(offerIDs, requestIDs []int, created *string) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkCreateOffer(offerIDs, requestIDs)(*p); err != nil {
			return err
		}
		now := t.now.UTC()
		offer := TradeOffer{
			ID:           uuid.NewString(),
			FromUser:     LocalUser,
			OfferItems:   p.pickCollectibles(offerIDs),
			RequestItems: p.pickCollectibles(requestIDs),
			Status:       TradePending,
			CreatedAt:    now,
			ExpiresAt:    now.Add(TradeOfferTTL),
		}
		p.TradeOffers = append(p.TradeOffers, offer)
		if created != nil {
			*created = offer.ID
		}
		t.success("Trade offer created! It expires in 24 hours.")
		logger.Info("trade offer created", "offer", offer.ID, "give", len(offerIDs), "want", len(requestIDs))
		return nil
	}
}

func checkRespond(id string) func(Pet) error {
	return func(p Pet) error {
		idx := p.FindOffer(id)
		if idx < 0 {
			return invalidRef("trade offer", id)
		}
		if st := p.TradeOffers[idx].Status; st != TradePending {
			return fmt.Errorf("trade offer is %s: %w", st, ErrNoOp)
		}
		return nil
	}
}

func respondToOffer(id string, decision TradeDecision) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkRespond(id)(*p); err != nil {
			return err
		}
		offer := &p.TradeOffers[p.FindOffer(id)]
		if t.now.After(offer.ExpiresAt) {
			// the housekeeping pass normally catches this first
			return fmt.Errorf("trade offer expired at %s: %w", offer.ExpiresAt.Format(time.RFC3339), ErrNoOp)
		}

		if decision == Reject {
			offer.Status = TradeRejected
			t.info("Trade with %s rejected.", offer.FromUser)
			return nil
		}

		gain, give := offer.OfferItems, offer.RequestItems
		if offer.Outgoing() {
			gain, give = give, gain
		}
		for _, c := range give {
			idx := p.FindCollectible(c.ID)
			if idx < 0 || !p.Collectibles[idx].Owned {
				return invalidRef("owned collectible", c.ID)
			}
		}

		for _, c := range give {
			own := &p.Collectibles[p.FindCollectible(c.ID)]
			own.Owned = false
			own.ObtainedDate = nil
		}
		obtained := t.now.UTC()
		for _, c := range gain {
			idx := p.FindCollectible(c.ID)
			if idx < 0 {
				p.Collectibles = append(p.Collectibles, c)
				idx = len(p.Collectibles) - 1
			}
			own := &p.Collectibles[idx]
			own.Owned = true
			stamp := obtained
			own.ObtainedDate = &stamp
		}
		offer.Status = TradeAccepted

		t.success("Trade with %s accepted! You received %d item(s).", offer.FromUser, len(gain))
		logger.Info("trade accepted", "offer", offer.ID, "from", offer.FromUser, "gained", len(gain), "gave", len(give))
		return nil
	}
}

func cancelOffer(id string) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkRespond(id)(*p); err != nil {
			return err
		}
		offer := &p.TradeOffers[p.FindOffer(id)]
		offer.Status = TradeExpired
		t.info("Trade offer cancelled.")
		return nil
	}
}

// expireOffers moves past-due pending offers to expired
func (p *Pet) expireOffers(now time.Time) int {
	n := 0
	for i := range p.TradeOffers {
		o := &p.TradeOffers[i]
		if o.Status == TradePending && now.After(o.ExpiresAt) {
			o.Status = TradeExpired
			n++
		}
	}
	return n
}
