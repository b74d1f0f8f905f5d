package server

import (
	"errors"
	"net/http"
	"time"

	"gamey/communication"
	"gamey/game"
	"gamey/searcher"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MaxBodyBytes caps a request body. A YEN layout holds one symbol per cell, so
// this also bounds the board a request can make the server allocate.
const MaxBodyBytes = 1 << 20

type Server struct {
	router   *gin.Engine
	registry *searcher.Registry
}

// New serves the bots of registry over HTTP.
func New(registry *searcher.Registry) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), logRequests)
	s := &Server{
		router:   router,
		registry: registry,
	}

	router.GET("/status", s.handleStatus)
	router.POST(communication.ChoosePath(":bot"), s.handleChoose)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	log.Info().Msgf("serving bots %v on %s", s.registry.Names(), addr)
	return s.router.Run(addr)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "bots": s.registry.Names()})
}

func (s *Server) handleChoose(c *gin.Context) {
	name := c.Param("bot")
	bot, ok := s.registry.Find(name)
	if !ok {
		s.fail(c, http.StatusNotFound, name, "unknown bot")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	var yen game.YEN
	if err := c.ShouldBindJSON(&yen); err != nil {
		s.fail(c, http.StatusBadRequest, name, err.Error())
		return
	}
	state, err := game.FromYEN(yen)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, game.ErrInvalidYEN) {
			status = http.StatusBadRequest
		}
		s.fail(c, status, name, err.Error())
		return
	}

	move, ok := bot.ChooseMove(state)
	if !ok {
		s.fail(c, http.StatusConflict, name, "no move available")
		return
	}
	c.JSON(http.StatusOK, communication.ChooseMoveResponse{
		APIVersion: communication.APIVersion,
		BotID:      name,
		Coords:     move,
	})
}

func (s *Server) fail(c *gin.Context, status int, bot, message string) {
	c.JSON(status, communication.ErrorResponse{
		APIVersion: communication.APIVersion,
		BotID:      bot,
		Message:    message,
	})
}

func logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("duration", time.Since(start)).
		Msg("http-request")
}
