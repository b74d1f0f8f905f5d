package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamey/communication/server"
	"gamey/engine"
	"gamey/game"
	"gamey/searcher"

	"github.com/stretchr/testify/require"
)

func TestRemoteBot(t *testing.T) {
	ts := httptest.NewServer(server.New(searcher.DefaultRegistry(2, 1)).Handler())
	defer ts.Close()

	t.Run("choosing a move remotely", func(t *testing.T) {
		state, err := game.FromYEN(game.YEN{Size: 4, Layout: "B/BB/.../RR.R"})
		require.NoError(t, err)

		bot := NewRemoteBot(ts.URL, searcher.MinimaxName)
		move, ok := bot.ChooseMove(state)

		require.True(t, ok)
		require.Equal(t, game.FromIndex(8, 4), move)
		require.Equal(t, "remote_minimax_bot", bot.Name())
	})

	t.Run("reporting server errors", func(t *testing.T) {
		_, err := NewRemoteBot(ts.URL, "alpha_beta_bot").Choose(game.NewGameY(3))
		require.ErrorContains(t, err, "404")

		_, ok := NewRemoteBot(ts.URL, "alpha_beta_bot").ChooseMove(game.NewGameY(3))
		require.False(t, ok)
	})

	t.Run("falling back to the status text on a plain error body", func(t *testing.T) {
		plain := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "<html>upstream down</html>", http.StatusBadGateway)
		}))
		defer plain.Close()

		_, err := NewRemoteBot(plain.URL, searcher.RandomName).Choose(game.NewGameY(3))
		require.EqualError(t, err, "bot server returned 502: Bad Gateway")
	})

	t.Run("playing a local game against a remote bot", func(t *testing.T) {
		e := engine.LocalEngine(NewRemoteBot(ts.URL, searcher.RandomName), searcher.NewRandom(4), 4, 0)

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, gameMetric.HasWinner)
		require.Equal(t, "remote_random_bot", moveMetrics[0].Bot)
	})
}
