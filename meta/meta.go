// meta/meta.go
package meta

// BOARD_SIZE defines the default side length of the board.
const BOARD_SIZE = 8

// MAX_DEPTH defines the default search depth of minimax bots.
const MAX_DEPTH = 2

// GAMES defines the default number of games per match up.
const GAMES = 10

// GO_ROUTINES defines the number of games played at once.
const GO_ROUTINES = 8

// MAX_MOVES caps the moves of a game, 0 for a full board.
const MAX_MOVES = 0
