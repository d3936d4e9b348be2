package pet

// InferMood derives the mood from energy, happiness and a roll in [0,1)
func InferMood(energy, happiness, roll float64) Mood {
	switch {
	case energy < 20 || happiness < 20:
		return MoodTired
	case energy > 80 && happiness > 80:
		if roll > 0.7 {
			return MoodExcited
		}
		return MoodHappy
	case energy > 50 && happiness > 50:
		if roll > 0.8 {
			return MoodCurious
		}
		if roll > 0.6 {
			return MoodPlayful
		}
		return MoodHappy
	default:
		if roll > 0.7 {
			return MoodSleepy
		}
		return MoodNeutral
	}
}

// refreshMood re-infers the mood and announces a fresh transition into tired
func (p *Pet) refreshMood(t *turn) {
	prev := p.Mood
	p.Mood = InferMood(p.Energy, p.Happiness, t.rng.Float64())
	if p.Mood == MoodTired && prev != MoodTired {
		t.info("%s is getting tired...", p.Name)
	}
}

// MoodEmoji returns the face for a mood
func MoodEmoji(m Mood) string {
	switch m {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodTired:
		return StatusEmojiTired
	case MoodExcited:
		return StatusEmojiExcited
	case MoodCurious:
		return StatusEmojiCurious
	case MoodPlayful:
		return StatusEmojiPlayful
	case MoodSleepy:
		return StatusEmojiSleepy
	default:
		return StatusEmojiNeutral
	}
}

// GetStatus returns the mood face followed by the most pressing need, if any
func GetStatus(p Pet) string {
	status := MoodEmoji(p.Mood)

	lowest, need := p.Health, "🤒"
	if p.Energy < lowest {
		lowest, need = p.Energy, "🔋"
	}
	if p.Happiness < lowest {
		lowest, need = p.Happiness, "💔"
	}
	if lowest < 30 {
		status += need
	}
	return status
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(p Pet) string {
	return GetStatus(p) + " " + p.GetMoodLabel()
}

// GetMoodLabel capitalizes the mood for display
func (p *Pet) GetMoodLabel() string {
	if p.Mood == "" {
		return "Neutral"
	}
	m := string(p.Mood)
	return string(m[0]-'a'+'A') + m[1:]
}
