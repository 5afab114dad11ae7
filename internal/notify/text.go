package notify

import (
	"fmt"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

func TeamText(team domain.Team) string {
	return fmt.Sprintf("You're on team %s!", team)
}

func WinText(win domain.Win) string {
	return fmt.Sprintf("And that's a win for team %s! Great job, everyone!\n"+
		"The game has been reset. The next number is 1 or -1, depending on your team.\n\n"+
		"UP team wins: %d\nDOWN team wins: %d", win.Winner, win.UpWins, win.DownWins)
}

func PeriodResetText(reset domain.PeriodReset) string {
	return fmt.Sprintf("A new month of counting has begun! The leaderboard has been reset for %s.", reset.Period)
}

func ReasonText(reason domain.RejectReason, team domain.Team, expected int) string {
	switch reason {
	case domain.ReasonConsecutiveTurn:
		return "You can't count twice in a row!"
	case domain.ReasonWrongNumber:
		return fmt.Sprintf("That's not the right number! You're on team %s, so the next number should have been %d.", team, expected)
	default:
		return string(reason)
	}
}

func WarningText(outcome domain.MoveOutcome) string {
	return ReasonText(outcome.Reason, outcome.Team, outcome.Expected) +
		"\nSince this is your first time screwing up, I'll let you off with a warning. Don't let it happen again!"
}

func PenaltyText(outcome domain.MoveOutcome) string {
	p := outcome.Penalty
	return ReasonText(outcome.Reason, outcome.Team, outcome.Expected) +
		fmt.Sprintf("\nAs punishment for your wrongdoing I'm moving the game %d points in the other direction. "+
			"Counting resumes from %d, meaning the next number is %d or %d depending on your team.",
			domain.PenaltyShift, p.NewCounter, p.NextLower, p.NextUpper)
}
