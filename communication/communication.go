package communication

import "gamey/game"

const APIVersion = "v1"

// ChooseMoveResponse answers POST /v1/ybot/choose/{bot} with a YEN position as
// the request body.
type ChooseMoveResponse struct {
	APIVersion string           `json:"api_version"`
	BotID      string           `json:"bot_id"`
	Coords     game.Coordinates `json:"coords"`
}

type ErrorResponse struct {
	APIVersion string `json:"api_version"`
	BotID      string `json:"bot_id,omitempty"`
	Message    string `json:"message"`
}

// ChoosePath returns the route choosing a move with the named bot.
func ChoosePath(bot string) string {
	return "/" + APIVersion + "/ybot/choose/" + bot
}
