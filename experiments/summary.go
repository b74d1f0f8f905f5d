package experiments

import (
	"slices"
	"time"

	"gamey/experiments/metrics"
	"gamey/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

type AgentSummary struct {
	Games        int
	Wins         int
	Moves        int
	MeanMoveTime time.Duration
	StdMoveTime  time.Duration
}

type Summary struct {
	Games    int
	Decided  int                  // Games with a winner
	Agents   map[int]AgentSummary // By AgentConfig.ID
	agentIDs []int
}

func summarize(games []metrics.GameRecord, moves []metrics.MoveRecord) *Summary {
	s := &Summary{Games: len(games), Agents: map[int]AgentSummary{}}

	seats := map[int][game.NumPlayers]int{}
	for _, g := range games {
		seats[g.ID] = [game.NumPlayers]int{g.Blue, g.Red}
		for _, id := range []int{g.Blue, g.Red} {
			a := s.Agents[id]
			a.Games++
			s.Agents[id] = a
		}
		if g.HasWinner {
			s.Decided++
			winner := seats[g.ID][g.Winner]
			a := s.Agents[winner]
			a.Wins++
			s.Agents[winner] = a
		}
	}

	times := map[int][]float64{}
	for _, m := range moves {
		id := seats[m.Game][m.Player]
		times[id] = append(times[id], float64(m.Duration))
	}
	for id, xs := range times {
		a := s.Agents[id]
		a.Moves = len(xs)
		if len(xs) > 1 {
			mean, std := stat.MeanStdDev(xs, nil)
			a.MeanMoveTime, a.StdMoveTime = time.Duration(mean), time.Duration(std)
		} else {
			a.MeanMoveTime = time.Duration(xs[0])
		}
		s.Agents[id] = a
	}

	s.agentIDs = lo.Keys(s.Agents)
	slices.Sort(s.agentIDs)
	return s
}

func (s *Summary) Log() {
	log.Info().Int("games", s.Games).Int("decided", s.Decided).Msg("experiment-summary")
	for _, id := range s.agentIDs {
		a := s.Agents[id]
		log.Info().
			Int("agent", id).
			Int("games", a.Games).
			Int("wins", a.Wins).
			Int("moves", a.Moves).
			Dur("mean_move_time", a.MeanMoveTime).
			Dur("std_move_time", a.StdMoveTime).
			Msg("agent-summary")
	}
}
