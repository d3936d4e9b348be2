package ui

import (
	"time"

	"codepet/internal/pet"
)

// AnimationType represents different animation types
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimCode
	AnimRest
	AnimSleep
	AnimPlay
	AnimTrain
	AnimCuddle
	AnimFeed
	AnimTrick
	AnimItem
	AnimShop
	AnimBounce
	AnimSpin
	AnimPulse
)

// Animation tracks an in-progress animation. Duration is how long it plays
// before the pending action commits.
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
	Duration  time.Duration
}

// AnimationFrames holds ASCII art frames for each animation type.
// Frames loop until the animation's duration is used up.
var AnimationFrames = map[AnimationType][]string{
	AnimCode: {
		"  [ ]  \n  /|\\ ⌨️\n  / \\  ",
		"  [>]  \n  /|\\ ⌨️ _\n  / \\  ",
		"  [>_] \n  /|\\ ⌨️ __\n  / \\  ",
		"  [✓]  \n  \\o/ 💻\n  / \\  ",
	},
	AnimRest: {
		"   ☕   \n  (o.o) ",
		"   ☕~  \n  (-.-) ",
		"   ☕~~ \n  (^.^) ",
	},
	AnimSleep: {
		"       \n  (-.-) \n       ",
		"    z  \n  (-.-) \n       ",
		"   z Z \n  (-.-) \n       ",
		"  z Z z\n  (-.-) \n    💤 ",
	},
	AnimPlay: {
		"  ⚽       \n  \\o/      ",
		"      ⚽   \n   o/      ",
		"         ⚽\n   \\o      ",
		"      ⚽   \n   o/      ",
		"  ⚽       \n  \\o/      ",
	},
	AnimTrain: {
		"  o   \n /|\\  \n / \\  ",
		" \\o/  \n  |   \n / \\  ",
		"  o   \n /|\\ 💪\n / \\  ",
	},
	AnimCuddle: {
		"  (^.^)  \n    ✋    ",
		"  (^ω^)  \n   ✋     ",
		"  (^.^) ♡\n    ✋    ",
	},
	AnimFeed: {
		"  🍎   \n       \n  (o.o) ",
		"       \n  🍎   \n  (o.o) ",
		"       \n       \n  (^o^)🍎",
		"       \n       \n  (^.^) ",
	},
	AnimTrick: {
		"   o   \n  /|\\  ",
		"   ✨  \n  \\o/  ",
		"  ✨o✨ \n   |   ",
		"   o   \n  /|\\ ⭐",
	},
	AnimItem: {
		"  🎁     \n  (o.o) ",
		"  ✨🎁✨ \n  (o.o) ",
		"  ✨ ✨  \n  (^o^) ",
		"    ✨   \n  (^.^) ",
	},
	AnimShop: {
		"  🛒    \n  🪙 →  ",
		"  🛒📦  \n     ✓  ",
	},
	AnimBounce: {
		"  (^.^) \n        \n ------",
		"        \n  (^.^) \n ------",
		"  (^.^) \n        \n ------",
	},
	AnimSpin: {
		"  (^.^) ",
		"  (^.-) ",
		"  (-.-) ",
		"  (-.^) ",
	},
	AnimPulse: {
		"   (^.^)   ",
		"  ( ^.^ )  ",
		" (  ^.^  ) ",
		"  ( ^.^ )  ",
	},
}

// AnimationFrameDuration is how long each frame is displayed
const AnimationFrameDuration = 200 * time.Millisecond

// animationForAction picks the animation played while an action is pending
func animationForAction(kind pet.ActionKind) AnimationType {
	switch kind {
	case pet.ActCode:
		return AnimCode
	case pet.ActBreak:
		return AnimRest
	case pet.ActSleep:
		return AnimSleep
	case pet.ActPlay:
		return AnimPlay
	case pet.ActTrain:
		return AnimTrain
	case pet.ActPet:
		return AnimCuddle
	case pet.ActFeed:
		return AnimFeed
	case pet.ActTrick:
		return AnimTrick
	case pet.ActUseItem:
		return AnimItem
	case pet.ActBuy:
		return AnimShop
	default:
		return AnimItem
	}
}

// animationForIdle maps an idle flourish to its frames
func animationForIdle(name string) AnimationType {
	switch name {
	case "bounce":
		return AnimBounce
	case "spin":
		return AnimSpin
	case "pulse":
		return AnimPulse
	default:
		return AnimNone
	}
}

// GetAnimationFrame returns the current frame for an animation
func GetAnimationFrame(anim Animation) string {
	frames, ok := AnimationFrames[anim.Type]
	if !ok || len(frames) == 0 {
		return ""
	}
	return frames[anim.Frame%len(frames)]
}

// AnimationTotalFrames returns the number of ticks an animation plays for.
// Without a duration it plays each frame once.
func AnimationTotalFrames(anim Animation) int {
	if anim.Type == AnimNone {
		return 0
	}
	if anim.Duration <= 0 {
		return len(AnimationFrames[anim.Type])
	}
	n := int((anim.Duration + AnimationFrameDuration - 1) / AnimationFrameDuration)
	return max(n, 1)
}

// IsAnimationComplete checks if an animation has finished
func IsAnimationComplete(anim Animation) bool {
	if anim.Type == AnimNone {
		return true
	}
	return anim.Frame >= AnimationTotalFrames(anim)
}
