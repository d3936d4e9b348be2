package pet

func (p *Pet) unlockAchievement(t *turn, id int) {
	for i := range p.Achievements {
		a := &p.Achievements[i]
		if a.ID == id && !a.Unlocked {
			a.Unlocked = true
			t.success("Achievement unlocked: %s!", a.Name)
		}
	}
}

func (p *Pet) unlockTrophy(t *turn, id int) {
	for i := range p.Trophies {
		tr := &p.Trophies[i]
		if tr.ID == id && !tr.Unlocked {
			tr.Unlocked = true
			t.success("Trophy unlocked: %s!", tr.Name)
		}
	}
}

func (p Pet) allAchievementsUnlocked() bool {
	for _, a := range p.Achievements {
		if !a.Unlocked {
			return false
		}
	}
	return len(p.Achievements) > 0
}

// checkMilestones unlocks whatever the current snapshot has earned
func (p *Pet) checkMilestones(t *turn) {
	if p.Streak >= CodeWarriorStreak {
		p.unlockAchievement(t, 2)
	}
	if p.CodeSessions >= BugHunterSessions {
		p.unlockAchievement(t, 4)
	}
	if p.Level >= LevelTenAchievement {
		p.unlockAchievement(t, 5)
	}
	if p.ItemsBought >= ShopaholicPurchases {
		p.unlockAchievement(t, 6)
	}
	if p.AllDailyTasksDone() {
		p.unlockAchievement(t, 7)
	}
	if FormRank(p.Form) >= FormRank(FormDragon) {
		p.unlockAchievement(t, 8)
	}

	if p.Streak >= StreakChampionDays {
		p.unlockTrophy(t, 4)
	}
	if p.Happiness >= MaxStat {
		p.unlockTrophy(t, 5)
	}
	if p.Form == FormAlien {
		p.unlockTrophy(t, 6)
	}
	if p.allAchievementsUnlocked() {
		p.unlockTrophy(t, 7)
	}
}

// UnlockedCount tallies unlocked achievements and trophies
func (p Pet) UnlockedCount() (achievements, trophies int) {
	for _, a := range p.Achievements {
		if a.Unlocked {
			achievements++
		}
	}
	for _, tr := range p.Trophies {
		if tr.Unlocked {
			trophies++
		}
	}
	return achievements, trophies
}
