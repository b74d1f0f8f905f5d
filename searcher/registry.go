package searcher

import (
	"slices"
	"sync"

	"gamey/game"

	"github.com/samber/lo"
)

// Registry looks bots up by name.
type Registry struct {
	sync.RWMutex
	bots map[string]Bot
}

func NewRegistry() *Registry {
	return &Registry{bots: make(map[string]Bot)}
}

// DefaultRegistry holds a set-based minimax bot and a random bot.
func DefaultRegistry(maxDepth int, seed uint64) *Registry {
	return NewRegistry().
		With(NewMinimax(game.SetBasedHeuristic{}, WithMaxDepth(maxDepth), WithMetrics())).
		With(NewRandom(seed))
}

// DefaultNames returns the names DefaultRegistry registers, in sorted order.
func DefaultNames() []string {
	return []string{MinimaxName, RandomName}
}

// With registers bot under its name, replacing any bot of the same name.
func (r *Registry) With(bot Bot) *Registry {
	r.Lock()
	defer r.Unlock()

	r.bots[bot.Name()] = bot
	return r
}

func (r *Registry) Find(name string) (Bot, bool) {
	r.RLock()
	defer r.RUnlock()

	bot, ok := r.bots[name]
	return bot, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	names := lo.Keys(r.bots)
	slices.Sort(names)
	return names
}
