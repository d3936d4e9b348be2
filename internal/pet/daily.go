package pet

import (
	"fmt"
	"slices"
)

// rollover resets the daily cycle on the first interaction of a new day
func (p *Pet) rollover(t *turn) bool {
	today := DateKey(t.now)
	if p.LastLogin == today {
		return false
	}
	p.DailyTasksCompleted = []string{}
	p.LastLogin = today

	bonus := LoginRewardBase + p.Streak*LoginRewardPerStreak
	p.Coins += bonus
	t.reward(RewardDailyLogin, bonus)
	t.success("Daily Login Reward: +%d coins!", bonus)
	return true
}

// completeDailyTask marks a task done and pays its bonus the first time each day
func (p *Pet) completeDailyTask(t *turn, id string) bool {
	task, ok := FindDailyTask(id)
	if !ok || slices.Contains(p.DailyTasksCompleted, id) {
		return false
	}
	p.DailyTasksCompleted = append(p.DailyTasksCompleted, id)
	p.Coins += task.Reward
	t.success("Daily task completed: %s! +%d coins", task.Name, task.Reward)
	return true
}

// IsTaskDone reports whether the task was completed today
func (p Pet) IsTaskDone(id string) bool {
	return slices.Contains(p.DailyTasksCompleted, id)
}

// AllDailyTasksDone reports whether every catalog task is complete
func (p Pet) AllDailyTasksDone() bool {
	for _, task := range DailyTasks {
		if !p.IsTaskDone(task.ID) {
			return false
		}
	}
	return true
}

func checkDailyTask(id string) func(Pet) error {
	return func(Pet) error {
		if _, ok := FindDailyTask(id); !ok {
			return invalidRef("daily task", id)
		}
		return nil
	}
}

func completeTask(id string, done *bool) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkDailyTask(id)(*p); err != nil {
			return err
		}
		*done = p.completeDailyTask(t, id)
		if !*done {
			t.info("%s was already completed today.", id)
		}
		return nil
	}
}

// DailyProgress renders progress like "3/6"
func (p Pet) DailyProgress() string {
	return fmt.Sprintf("%d/%d", len(p.DailyTasksCompleted), len(DailyTasks))
}
