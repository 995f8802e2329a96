package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinner(t *testing.T) {
	g := &Game{
		Players: []PlayerID{"alice", "bob", "carol"},
		Scores:  map[PlayerID]int{"alice": 4, "bob": 9, "carol": 2},
	}
	assert.Equal(t, PlayerID("bob"), g.Winner())

	g.Scores["carol"] = 9
	assert.Equal(t, PlayerID(""), g.Winner(), "a tie has no winner")
}

func TestCurrentPlayer(t *testing.T) {
	g := &Game{Players: []PlayerID{"alice", "bob"}, CurrentIdx: 1}
	assert.Equal(t, PlayerID("bob"), g.CurrentPlayer())
	assert.True(t, g.HasPlayer("alice"))
	assert.False(t, g.HasPlayer("dave"))
	assert.Equal(t, PlayerID(""), (&Game{}).CurrentPlayer())
}
