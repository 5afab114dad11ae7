package domain

// WinningScore is the absolute counter value at which a team wins a round.
const WinningScore = 100

// PenaltyShift is how far the counter moves against an offender who already
// used their grace.
const PenaltyShift = 5

type Game struct {
	ID          int64
	Counter     int
	LastMover   *UserID
	UpWins      int
	DownWins    int
	UpMembers   int
	DownMembers int
}

// Target returns the only number the given team may post next.
func (g Game) Target(team Team) int {
	return g.Counter + team.Direction()
}

func (g Game) IsLastMover(userID UserID) bool {
	return g.LastMover != nil && *g.LastMover == userID
}

func (g Game) Members(team Team) int {
	if team == TeamUp {
		return g.UpMembers
	}
	return g.DownMembers
}

func (g *Game) AddMember(team Team) {
	if team == TeamUp {
		g.UpMembers++
		return
	}
	g.DownMembers++
}

// ResolveWin resets the round if the counter reached a winning score and
// reports which team won. A counter pushed past the score by a punishment
// counts as reaching it.
func (g *Game) ResolveWin() (Team, bool) {
	var winner Team
	switch {
	case g.Counter >= WinningScore:
		winner = TeamUp
		g.UpWins++
	case g.Counter <= -WinningScore:
		winner = TeamDown
		g.DownWins++
	default:
		return "", false
	}

	g.Counter = 0
	g.LastMover = nil

	return winner, true
}
