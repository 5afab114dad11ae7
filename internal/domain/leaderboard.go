package domain

import "time"

const LeaderboardSize = 10

type LeaderboardRow struct {
	Rank   int
	UserID UserID
	Count  int
	Team   Team
}

type Leaderboard struct {
	Rows      []LeaderboardRow
	Requester *LeaderboardRow
}

type PeriodReset struct {
	Period string
	At     time.Time
}

func PeriodName(t time.Time) string {
	return t.Format("January 2006")
}
