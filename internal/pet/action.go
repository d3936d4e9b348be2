package pet

import "time"

// ActionKind names a player operation
type ActionKind string

const (
	ActCode            ActionKind = "code"
	ActBreak           ActionKind = "break"
	ActSleep           ActionKind = "sleep"
	ActPlay            ActionKind = "play"
	ActTrain           ActionKind = "train"
	ActPet             ActionKind = "pet"
	ActFeed            ActionKind = "feed"
	ActTrick           ActionKind = "trick"
	ActBuy             ActionKind = "buy"
	ActUseItem         ActionKind = "use"
	ActSellItem        ActionKind = "sell-item"
	ActSellCollectible ActionKind = "sell-collectible"
	ActCreateTrade     ActionKind = "trade-create"
	ActRespondTrade    ActionKind = "trade-respond"
	ActCancelTrade     ActionKind = "trade-cancel"
	ActCompleteTask    ActionKind = "task"
	ActSetName         ActionKind = "name"
	ActCustomize       ActionKind = "customize"
	ActReset           ActionKind = "reset"
)

// Action is a deferred operation: check runs when it begins, apply when it commits.
// Delay is how long the presentation layer animates in between.
type Action struct {
	Kind  ActionKind
	Delay time.Duration

	check func(Pet) error
	apply func(*Pet, *turn) error
}

// Check validates the action against a snapshot without changing it
func (a Action) Check(p Pet) error {
	if a.check == nil {
		return nil
	}
	return a.check(p)
}

func CodeSession() Action {
	return Action{Kind: ActCode, Delay: CodeDelay, check: needEnergy("coding", CodeEnergyRequired), apply: codeSession}
}

func Break() Action {
	return Action{Kind: ActBreak, Delay: ActionDelay, apply: takeBreak}
}

func Sleep() Action {
	return Action{Kind: ActSleep, Delay: ActionDelay, apply: sleep}
}

func Play() Action {
	return Action{Kind: ActPlay, Delay: ActionDelay, check: needEnergy("playing", PlayEnergyRequired), apply: play}
}

func Train() Action {
	return Action{Kind: ActTrain, Delay: ActionDelay, check: needEnergy("training", TrainEnergyRequired), apply: train}
}

// Cuddle pets the pet
func Cuddle() Action {
	return Action{Kind: ActPet, Delay: ActionDelay, apply: petPet}
}

func Feed() Action {
	return Action{Kind: ActFeed, Delay: FeedDelay, apply: feed}
}

func Trick() Action {
	return Action{Kind: ActTrick, Delay: ActionDelay, apply: trick}
}

// Buy purchases a shop entry; free entries animate briefly
func Buy(item ShopItem) Action {
	delay := FreePurchaseDelay
	if item.Price > 0 {
		delay = PaidPurchaseDelay
	}
	return Action{
		Kind:  ActBuy,
		Delay: delay,
		check: func(p Pet) error { return checkPurchase(p, item) },
		apply: buy(item),
	}
}

func UseItem(id int) Action {
	return Action{Kind: ActUseItem, Delay: ItemDelay, check: checkUseItem(id), apply: useItem(id)}
}

func SellItem(id int) Action {
	return Action{Kind: ActSellItem, check: checkUseItem(id), apply: sellItem(id)}
}

func SellCollectible(id int) Action {
	return Action{Kind: ActSellCollectible, check: checkSellCollectible(id), apply: sellCollectible(id)}
}

// CreateTradeOffer lists owned collectibles against wanted ones.
// The new offer's id is written to created, if non-nil, on commit.
func CreateTradeOffer(offerIDs, requestIDs []int, created *string) Action {
	return Action{
		Kind:  ActCreateTrade,
		check: checkCreateOffer(offerIDs, requestIDs),
		apply: createOffer(offerIDs, requestIDs, created),
	}
}

func RespondToTrade(id string, decision TradeDecision) Action {
	return Action{Kind: ActRespondTrade, check: checkRespond(id), apply: respondToOffer(id, decision)}
}

func CancelTrade(id string) Action {
	return Action{Kind: ActCancelTrade, check: checkRespond(id), apply: cancelOffer(id)}
}

// CompleteDailyTask marks a task done; done reports whether it was new
func CompleteDailyTask(id string, done *bool) Action {
	if done == nil {
		done = new(bool)
	}
	return Action{Kind: ActCompleteTask, check: checkDailyTask(id), apply: completeTask(id, done)}
}

func SetName(name string) Action {
	return Action{
		Kind:  ActSetName,
		check: func(Pet) error {
			_, err := cleanName(name)
			return err
		},
		apply: setName(name),
	}
}

func ApplyCustomization(slot, value string) Action {
	return Action{Kind: ActCustomize, apply: applyCustomization(slot, value)}
}

func ResetProgress() Action {
	return Action{Kind: ActReset, apply: resetProgress}
}
