package domain

import "fmt"

type Team string

const (
	TeamUp   Team = "UP"
	TeamDown Team = "DOWN"
)

// Direction is the step a team applies to the counter on a valid move.
func (t Team) Direction() int {
	switch t {
	case TeamUp:
		return 1
	case TeamDown:
		return -1
	default:
		panic(fmt.Sprintf("unknown team %q", string(t)))
	}
}

func (t Team) Opposite() Team {
	switch t {
	case TeamUp:
		return TeamDown
	case TeamDown:
		return TeamUp
	default:
		panic(fmt.Sprintf("unknown team %q", string(t)))
	}
}

func (t Team) Valid() bool {
	return t == TeamUp || t == TeamDown
}

func ParseTeam(s string) (Team, error) {
	team := Team(s)
	if !team.Valid() {
		return "", fmt.Errorf("unknown team %q", s)
	}
	return team, nil
}
