package domain

import (
	"regexp"
	"strconv"
)

type RejectReason string

const (
	ReasonConsecutiveTurn RejectReason = "consecutive-turn"
	ReasonWrongNumber     RejectReason = "wrong-number"
)

var (
	moveRE    = regexp.MustCompile(`(?s)^(-?\d+)(?:\s+.*)?$`)
	mentionRE = regexp.MustCompile(`<@([UW][A-Z0-9]+)\|`)
)

// ParseMove reads the number at the start of a channel message. Anything
// after the number has to be separated from it by whitespace.
func ParseMove(text string) (int, error) {
	m := moveRE.FindStringSubmatch(text)
	if m == nil {
		return 0, ErrMalformedMove
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, ErrMalformedMove
	}

	return n, nil
}

// ParseMention extracts the user id from an escaped mention like <@U123|name>.
func ParseMention(text string) (UserID, error) {
	m := mentionRE.FindStringSubmatch(text)
	if m == nil {
		return "", ErrInvalidMention
	}

	return UserID(m[1]), nil
}

type Warning struct {
	Reason RejectReason
}

type Penalty struct {
	Reason     RejectReason
	NewCounter int
	NextLower  int
	NextUpper  int
}

type Win struct {
	Winner   Team
	UpWins   int
	DownWins int
}

// MoveOutcome is what a submitted move resulted in. Exactly one of Warning and
// Penalty is set on rejection.
type MoveOutcome struct {
	UserID   UserID
	Team     Team
	Accepted bool
	Reason   RejectReason
	Expected int
	Counter  int
	Warning  *Warning
	Penalty  *Penalty
	Win      *Win
}
