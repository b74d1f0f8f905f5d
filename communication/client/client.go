package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gamey/communication"
	"gamey/game"

	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 30 * time.Second

// positioned is implemented by states that can be written as YEN.
type positioned interface {
	YEN() game.YEN
}

// RemoteBot asks a bot server for moves. It satisfies searcher.Bot, so remote
// bots can play in the local engine.
type RemoteBot struct {
	serverURL string
	bot       string
	client    *http.Client
}

func NewRemoteBot(serverURL, bot string) *RemoteBot {
	return &RemoteBot{
		serverURL: serverURL,
		bot:       bot,
		client:    &http.Client{Timeout: DefaultTimeout},
	}
}

func (r *RemoteBot) Name() string {
	return "remote_" + r.bot
}

// ChooseMove returns false when the server has no move or cannot be reached.
func (r *RemoteBot) ChooseMove(state game.State) (game.Coordinates, bool) {
	move, err := r.Choose(state)
	if err != nil {
		log.Error().Err(err).Str("bot", r.bot).Msg("remote-choose-failed")
		return game.Coordinates{}, false
	}
	return move, true
}

func (r *RemoteBot) Choose(state game.State) (game.Coordinates, error) {
	p, ok := state.(positioned)
	if !ok {
		return game.Coordinates{}, fmt.Errorf("cannot encode state of type %T", state)
	}
	data, err := json.Marshal(p.YEN())
	if err != nil {
		return game.Coordinates{}, fmt.Errorf("failed to encode position: %w", err)
	}

	resp, err := r.client.Post(r.serverURL+communication.ChoosePath(r.bot), "application/json", bytes.NewReader(data))
	if err != nil {
		return game.Coordinates{}, fmt.Errorf("failed to reach bot server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure communication.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil || failure.Message == "" {
			failure.Message = http.StatusText(resp.StatusCode)
		}
		return game.Coordinates{}, fmt.Errorf("bot server returned %d: %s", resp.StatusCode, failure.Message)
	}
	var response communication.ChooseMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return game.Coordinates{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return response.Coords, nil
}
