package draw

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/KirkDiggler/santa/internal/random"
	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *Generator
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	generator, err := NewGenerator(&Config{
		Random: random.New(&random.Config{Seed: 20251215}),
	})
	s.Require().NoError(err)
	s.generator = generator
}

func (s *GeneratorTestSuite) newGraph(participants ...string) *Graph {
	graph, err := NewGraph(participants)
	s.Require().NoError(err)
	return graph
}

func (s *GeneratorTestSuite) TestNewGenerator_Validation() {
	_, err := NewGenerator(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewGenerator(&Config{})
	s.ErrorIs(err, ErrNilRandom)
}

func (s *GeneratorTestSuite) TestGenerate_NilGraph() {
	_, err := s.generator.Generate(nil)
	s.ErrorIs(err, ErrNilGraph)
}

func (s *GeneratorTestSuite) TestGenerate_NotEnoughParticipants() {
	_, err := s.generator.Generate(s.newGraph())
	s.ErrorIs(err, ErrNotEnoughParticipants)

	_, err = s.generator.Generate(s.newGraph("alice"))
	s.ErrorIs(err, ErrNotEnoughParticipants)
}

func (s *GeneratorTestSuite) TestGenerate_TwoParticipantsSwap() {
	result, err := s.generator.Generate(s.newGraph("alice", "bob"))
	s.Require().NoError(err)

	s.Equal(Assignment{"alice": "bob", "bob": "alice"}, result.Assignment)
}

func (s *GeneratorTestSuite) TestGenerate_TwoParticipantsWithExclusion() {
	graph := s.newGraph("alice", "bob")
	s.Require().NoError(graph.AddExclusion("bob", "alice"))

	_, err := s.generator.Generate(graph)
	s.ErrorIs(err, ErrInfeasible)
}

func (s *GeneratorTestSuite) TestGenerate_FourWithoutExclusions() {
	graph := s.newGraph("alice", "bob", "carol", "dave")

	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		result, err := s.generator.Generate(graph)
		s.Require().NoError(err)
		s.Require().NoError(graph.Validate(result.Assignment))
		s.Equal(MethodRandomized, result.Method)

		seen[fmt.Sprint(result.Assignment)] = true
	}

	// redraws are not pinned to a single outcome
	s.Greater(len(seen), 1)
}

func (s *GeneratorTestSuite) TestGenerate_SingleExclusionForcesRecipient() {
	graph := s.newGraph("alice", "bob", "carol")
	s.Require().NoError(graph.AddExclusion("alice", "bob"))

	for i := 0; i < 10; i++ {
		result, err := s.generator.Generate(graph)
		s.Require().NoError(err)

		recipient, ok := result.Assignment.Recipient("alice")
		s.True(ok)
		s.Equal("carol", recipient)
	}
}

func (s *GeneratorTestSuite) TestGenerate_GiverWithoutRecipients() {
	graph := s.newGraph("alice", "bob", "carol")
	s.Require().NoError(graph.SetExclusions("alice", []string{"bob", "carol"}))

	result, err := s.generator.Generate(graph)
	s.Nil(result)
	s.Require().ErrorIs(err, ErrInfeasible)

	var infeasible *InfeasibleError
	s.Require().True(errors.As(err, &infeasible))
	s.Equal([]string{"alice"}, infeasible.Participants)
	s.Contains(infeasible.Error(), "alice")
}

func (s *GeneratorTestSuite) TestGenerate_ExactFallbackFindsOnlyCycle() {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%02d", i)
	}
	graph := s.newGraph(ids...)

	expected := Assignment{}
	for i, giver := range ids {
		next := ids[(i+1)%len(ids)]
		expected[giver] = next

		var excluded []string
		for _, other := range ids {
			if other != giver && other != next {
				excluded = append(excluded, other)
			}
		}
		s.Require().NoError(graph.SetExclusions(giver, excluded))
	}

	result, err := s.generator.Generate(graph)
	s.Require().NoError(err)
	s.Equal(MethodExact, result.Method)
	s.Equal(DefaultMaxAttempts, result.Attempts)
	s.Equal(expected, result.Assignment)
}

func (s *GeneratorTestSuite) TestGenerate_FeasibleGraphsAlwaysSucceed() {
	for seed := uint64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		n := 3 + rng.IntN(10)

		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}
		graph := s.newGraph(ids...)

		// hide one valid cycle and exclude a random share of every other pair
		cycle := append([]string(nil), ids...)
		rng.Shuffle(n, func(i, j int) { cycle[i], cycle[j] = cycle[j], cycle[i] })
		hidden := map[string]string{}
		for i, giver := range cycle {
			hidden[giver] = cycle[(i+1)%n]
		}

		for _, giver := range ids {
			for _, recipient := range ids {
				if recipient == giver || recipient == hidden[giver] {
					continue
				}
				if rng.Float64() < 0.7 {
					s.Require().NoError(graph.AddExclusion(giver, recipient))
				}
			}
		}

		s.True(graph.CheckFeasibility().Feasible, "seed %d", seed)

		result, err := s.generator.Generate(graph)
		s.Require().NoError(err, "seed %d", seed)
		s.Require().NoError(graph.Validate(result.Assignment), "seed %d", seed)
	}
}

func (s *GeneratorTestSuite) TestGenerate_InfeasibleGraphsNeverFabricate() {
	for seed := uint64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		n := 3 + rng.IntN(8)

		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}
		graph := s.newGraph(ids...)

		// nobody may give to the victim
		victim := ids[rng.IntN(n)]
		for _, giver := range ids {
			if giver != victim {
				s.Require().NoError(graph.AddExclusion(giver, victim))
			}
		}

		s.False(graph.CheckFeasibility().Feasible, "seed %d", seed)

		result, err := s.generator.Generate(graph)
		s.Nil(result, "seed %d", seed)
		s.ErrorIs(err, ErrInfeasible, "seed %d", seed)
	}
}

func (s *GeneratorTestSuite) TestGenerate_RandomizedPathIsBalanced() {
	graph := s.newGraph("alice", "bob", "carol")

	counts := map[string]int{}
	const draws = 2000
	for i := 0; i < draws; i++ {
		result, err := s.generator.Generate(graph)
		s.Require().NoError(err)
		counts[result.Assignment["alice"]]++
	}

	// the two derangements of three people are equally likely
	s.InDelta(draws/2, counts["bob"], draws*0.1)
	s.InDelta(draws/2, counts["carol"], draws*0.1)
}
