package draw

import (
	"fmt"

	"github.com/KirkDiggler/santa/internal/random"
)

// DefaultMaxAttempts is the randomized attempt budget before the exact fallback
const DefaultMaxAttempts = 200

// Method records which phase produced an assignment
type Method string

const (
	// MethodRandomized is a uniformly sampled permutation that passed validation
	MethodRandomized Method = "randomized"

	// MethodExact is a perfect matching found by Hopcroft-Karp. Its traversal
	// order is shuffled with the same source, so it is not cryptographically
	// unpredictable and is only reached under dense exclusions.
	MethodExact Method = "exact"
)

// Assignment maps each giver to their recipient
type Assignment map[string]string

// Recipient returns the recipient for giver
func (a Assignment) Recipient(giver string) (string, bool) {
	recipient, ok := a[giver]
	return recipient, ok
}

// Result is the outcome of a successful draw
type Result struct {
	Assignment Assignment

	// Attempts is the number of randomized permutations sampled
	Attempts int

	Method Method
}

// Config holds configuration for the generator
type Config struct {
	// Random is the source of randomness
	Random random.Source

	// MaxAttempts is the randomized attempt budget. Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// Generator draws assignments from an exclusion graph
type Generator struct {
	random      random.Source
	maxAttempts int
}

// NewGenerator creates a new generator
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Generator{
		random:      cfg.Random,
		maxAttempts: maxAttempts,
	}, nil
}

// Generate draws one valid assignment, or returns an *InfeasibleError when
// the exclusions admit none
func (g *Generator) Generate(graph *Graph) (*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	givers := graph.Participants()
	n := len(givers)
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrNotEnoughParticipants, n)
	}

	// Rejection sampling keeps the accepted permutation uniform over all
	// valid assignments
	recipients := graph.Participants()
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		g.random.Shuffle(n, func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})

		if !permutationAllowed(graph, givers, recipients) {
			continue
		}

		assignment := make(Assignment, n)
		for i, giver := range givers {
			assignment[giver] = recipients[i]
		}

		return g.checked(graph, &Result{
			Assignment: assignment,
			Attempts:   attempt,
			Method:     MethodRandomized,
		})
	}

	return g.exact(graph)
}

func (g *Generator) exact(graph *Graph) (*Result, error) {
	order := graph.Participants()
	g.random.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	adj := graph.adjacency(order)
	for _, recipients := range adj {
		g.random.Shuffle(len(recipients), func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})
	}

	m := newMatcher(adj, len(order))
	if m.run() < len(order) {
		return nil, graph.witness(m, order)
	}

	all := graph.Participants()
	assignment := make(Assignment, len(order))
	for u, giver := range order {
		assignment[giver] = all[m.matchL[u]]
	}

	return g.checked(graph, &Result{
		Assignment: assignment,
		Attempts:   g.maxAttempts,
		Method:     MethodExact,
	})
}

func (g *Generator) checked(graph *Graph, result *Result) (*Result, error) {
	if err := graph.Validate(result.Assignment); err != nil {
		return nil, err
	}
	return result, nil
}

func permutationAllowed(graph *Graph, givers, recipients []string) bool {
	for i, giver := range givers {
		if !graph.Allowed(giver, recipients[i]) {
			return false
		}
	}
	return true
}
