package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RandomTestSuite struct {
	suite.Suite
}

func TestRandomTestSuite(t *testing.T) {
	suite.Run(t, new(RandomTestSuite))
}

func (s *RandomTestSuite) TestSeededSourcesAreReproducible() {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 50; i++ {
		s.Equal(a.IntN(1000), b.IntN(1000))
	}
}

func (s *RandomTestSuite) TestIntNStaysInRange() {
	r := New(nil)

	for i := 0; i < 500; i++ {
		v := r.IntN(7)
		s.GreaterOrEqual(v, 0)
		s.Less(v, 7)
	}
}

func (s *RandomTestSuite) TestShuffleKeepsElements() {
	r := New(&Config{Seed: 7})
	values := []string{"a", "b", "c", "d", "e"}

	r.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	s.ElementsMatch([]string{"a", "b", "c", "d", "e"}, values)
}
