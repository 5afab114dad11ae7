package service_test

import (
	"testing"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraceThenPunishment(t *testing.T) {
	userC := domain.User{ID: "UC", Team: domain.TeamUp}
	e := setup(t, domain.Game{Counter: 5}, userC)

	outcome, err := e.turnService.SubmitMove(e.ctx, userC.ID, 9)
	require.NoError(t, err)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, domain.ReasonWrongNumber, outcome.Reason)
	assert.Equal(t, 6, outcome.Expected)
	require.NotNil(t, outcome.Warning)
	assert.Nil(t, outcome.Penalty)
	assert.True(t, e.storage.Users[userC.ID].UsedGrace)
	assert.Equal(t, 5, e.state.Snapshot().Counter)

	outcome, err = e.turnService.SubmitMove(e.ctx, userC.ID, 9)
	require.NoError(t, err)
	assert.Nil(t, outcome.Warning)
	require.NotNil(t, outcome.Penalty)
	assert.Equal(t, domain.Penalty{
		Reason:     domain.ReasonWrongNumber,
		NewCounter: 0,
		NextLower:  -1,
		NextUpper:  1,
	}, *outcome.Penalty)
	assert.Equal(t, 0, e.state.Snapshot().Counter)
	assert.Equal(t, 0, e.storage.Game.Counter)
}

func TestPunishmentMovesAgainstDownTeam(t *testing.T) {
	offender := domain.User{ID: "UD", Team: domain.TeamDown, UsedGrace: true}
	e := setup(t, domain.Game{Counter: -20, LastMover: userPtr("U-other")}, offender)

	outcome, err := e.turnService.SubmitMove(e.ctx, offender.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, outcome.Penalty)
	assert.Equal(t, -15, outcome.Penalty.NewCounter)
	assert.Equal(t, -16, outcome.Penalty.NextLower)
	assert.Equal(t, -14, outcome.Penalty.NextUpper)

	game := e.state.Snapshot()
	assert.Equal(t, -15, game.Counter)
	assert.True(t, game.IsLastMover("U-other"))
}

func TestEveryLaterRejectionShiftsByFive(t *testing.T) {
	offender := domain.User{ID: "UP1", Team: domain.TeamUp}
	e := setup(t, domain.Game{Counter: 30}, offender)

	_, err := e.turnService.SubmitMove(e.ctx, offender.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, e.state.Snapshot().Counter)

	for _, want := range []int{25, 20, 15} {
		_, err := e.turnService.SubmitMove(e.ctx, offender.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, want, e.state.Snapshot().Counter)
	}
}

func TestConsecutiveTurnAlsoCountsAsInfraction(t *testing.T) {
	e := setup(t, domain.Game{Counter: 8, LastMover: userPtr(userA.ID)}, userA)

	outcome, err := e.turnService.SubmitMove(e.ctx, userA.ID, 9)
	require.NoError(t, err)
	require.NotNil(t, outcome.Warning)
	assert.Equal(t, domain.ReasonConsecutiveTurn, outcome.Warning.Reason)

	outcome, err = e.turnService.SubmitMove(e.ctx, userA.ID, 9)
	require.NoError(t, err)
	require.NotNil(t, outcome.Penalty)
	assert.Equal(t, 3, e.state.Snapshot().Counter)
}

func TestPunishmentPastWinningScoreEndsRound(t *testing.T) {
	offender := domain.User{ID: "UP1", Team: domain.TeamUp, UsedGrace: true}
	e := setup(t, domain.Game{Counter: -97, LastMover: userPtr("U-other"), DownWins: 4}, offender)

	outcome, err := e.turnService.SubmitMove(e.ctx, offender.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, outcome.Penalty)
	require.NotNil(t, outcome.Win)
	assert.Equal(t, domain.Win{Winner: domain.TeamDown, UpWins: 0, DownWins: 5}, *outcome.Win)
	assert.Equal(t, 0, outcome.Penalty.NewCounter)

	game := e.state.Snapshot()
	assert.Equal(t, 0, game.Counter)
	assert.Nil(t, game.LastMover)
	assert.Equal(t, 5, e.storage.Game.DownWins)
	require.Len(t, e.notifier.wins, 1)
}

func TestPunishmentReachingWinningScoreEndsRound(t *testing.T) {
	offender := domain.User{ID: "UD1", Team: domain.TeamDown, UsedGrace: true}
	e := setup(t, domain.Game{Counter: 95}, offender)

	outcome, err := e.turnService.SubmitMove(e.ctx, offender.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, outcome.Win)
	assert.Equal(t, domain.TeamUp, outcome.Win.Winner)
	assert.Equal(t, 0, e.state.Snapshot().Counter)
}

func TestFailedPunishmentWriteKeepsCounter(t *testing.T) {
	offender := domain.User{ID: "UP1", Team: domain.TeamUp, UsedGrace: true}
	e := setup(t, domain.Game{Counter: 12}, offender)
	e.gameRepo.failWrites = true

	_, err := e.turnService.SubmitMove(e.ctx, offender.ID, 0)
	require.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, 12, e.state.Snapshot().Counter)
	assert.Equal(t, 12, e.storage.Game.Counter)
}
