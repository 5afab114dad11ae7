package domain_test

import (
	"testing"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{"-7", -7, true},
		{"0", 0, true},
		{"42 let's go", 42, true},
		{"-3\tdown we go", -3, true},
		{"7\nline one\nline two", 7, true},
		{"12abc", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{" 5", 0, false},
		{"--5", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := domain.ParseMove(tt.text)
			if !tt.ok {
				assert.ErrorIs(t, err, domain.ErrMalformedMove)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMention(t *testing.T) {
	id, err := domain.ParseMention("<@U024BE7LH|bob>")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("U024BE7LH"), id)

	id, err = domain.ParseMention("what about <@W12AB|alice> ?")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("W12AB"), id)

	_, err = domain.ParseMention("bob")
	assert.ErrorIs(t, err, domain.ErrInvalidMention)

	_, err = domain.ParseMention("<@U024BE7LH>")
	assert.ErrorIs(t, err, domain.ErrInvalidMention)
}

func TestTeamDirection(t *testing.T) {
	assert.Equal(t, 1, domain.TeamUp.Direction())
	assert.Equal(t, -1, domain.TeamDown.Direction())
	assert.Equal(t, domain.TeamDown, domain.TeamUp.Opposite())
	assert.Equal(t, domain.TeamUp, domain.TeamDown.Opposite())
	assert.Panics(t, func() { domain.Team("SIDEWAYS").Direction() })

	_, err := domain.ParseTeam("SIDEWAYS")
	assert.Error(t, err)
	team, err := domain.ParseTeam("DOWN")
	require.NoError(t, err)
	assert.Equal(t, domain.TeamDown, team)
}

func TestGameTarget(t *testing.T) {
	game := domain.Game{Counter: 1}
	assert.Equal(t, 2, game.Target(domain.TeamUp))
	assert.Equal(t, 0, game.Target(domain.TeamDown))
}

func TestResolveWin(t *testing.T) {
	mover := domain.UserID("U1")

	game := domain.Game{Counter: 100, LastMover: &mover, DownWins: 2}
	winner, won := game.ResolveWin()
	require.True(t, won)
	assert.Equal(t, domain.TeamUp, winner)
	assert.Equal(t, domain.Game{UpWins: 1, DownWins: 2}, game)

	game = domain.Game{Counter: -104, LastMover: &mover}
	winner, won = game.ResolveWin()
	require.True(t, won)
	assert.Equal(t, domain.TeamDown, winner)
	assert.Equal(t, 0, game.Counter)
	assert.Equal(t, 1, game.DownWins)

	game = domain.Game{Counter: 99, LastMover: &mover}
	_, won = game.ResolveWin()
	assert.False(t, won)
	assert.Equal(t, 99, game.Counter)
	assert.True(t, game.IsLastMover(mover))
}

func TestPeriodName(t *testing.T) {
	assert.Equal(t, "March 2027", domain.PeriodName(time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)))
}
