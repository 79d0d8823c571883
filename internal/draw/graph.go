package draw

import (
	"fmt"
	"slices"
)

// Graph holds the participants of one draw and the directed exclusions
// between them. Self-assignment is always forbidden and never stored.
type Graph struct {
	order    []string
	index    map[string]int
	excluded map[string]map[string]struct{}
}

// Feasibility is the result of a feasibility pre-check
type Feasibility struct {
	// Feasible indicates that at least one valid assignment exists
	Feasible bool

	// Reason describes the blocking constraint when not feasible
	Reason string

	// Participants are the over-constrained participants when not feasible
	Participants []string
}

// NewGraph creates a graph over the given participants. Duplicates are ignored.
func NewGraph(participants []string) (*Graph, error) {
	g := &Graph{
		order:    make([]string, 0, len(participants)),
		index:    make(map[string]int, len(participants)),
		excluded: make(map[string]map[string]struct{}),
	}

	for _, id := range participants {
		if _, err := g.AddParticipant(id); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddParticipant adds a participant and reports whether it was new
func (g *Graph) AddParticipant(id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: participant ID cannot be empty", ErrInvalidParticipant)
	}

	if _, ok := g.index[id]; ok {
		return false, nil
	}

	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	return true, nil
}

// RemoveParticipant removes a participant together with every exclusion
// that names it, as giver or as recipient
func (g *Graph) RemoveParticipant(id string) bool {
	pos, ok := g.index[id]
	if !ok {
		return false
	}

	g.order = slices.Delete(g.order, pos, pos+1)
	delete(g.index, id)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	delete(g.excluded, id)
	for giver, recipients := range g.excluded {
		delete(recipients, id)
		if len(recipients) == 0 {
			delete(g.excluded, giver)
		}
	}

	return true
}

// Has reports whether id is a participant
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Len returns the number of participants
func (g *Graph) Len() int {
	return len(g.order)
}

// Participants returns the participants in insertion order
func (g *Graph) Participants() []string {
	return slices.Clone(g.order)
}

// AddExclusion forbids giver from being assigned recipient. Repeated calls are no-ops.
func (g *Graph) AddExclusion(giver, recipient string) error {
	if err := g.validateExclusion(giver, recipient); err != nil {
		return err
	}

	recipients, ok := g.excluded[giver]
	if !ok {
		recipients = make(map[string]struct{})
		g.excluded[giver] = recipients
	}
	recipients[recipient] = struct{}{}

	return nil
}

// RemoveExclusion lifts an exclusion. Absent exclusions are ignored.
func (g *Graph) RemoveExclusion(giver, recipient string) {
	recipients, ok := g.excluded[giver]
	if !ok {
		return
	}

	delete(recipients, recipient)
	if len(recipients) == 0 {
		delete(g.excluded, giver)
	}
}

// SetExclusions replaces every exclusion owned by giver. Nothing changes when
// any recipient is invalid.
func (g *Graph) SetExclusions(giver string, recipients []string) error {
	if !g.Has(giver) {
		return fmt.Errorf("%w: unknown participant %q", ErrInvalidConstraint, giver)
	}

	for _, recipient := range recipients {
		if err := g.validateExclusion(giver, recipient); err != nil {
			return err
		}
	}

	delete(g.excluded, giver)
	for _, recipient := range recipients {
		if err := g.AddExclusion(giver, recipient); err != nil {
			return err
		}
	}

	return nil
}

// ExclusionsFor returns the recipients forbidden for giver, sorted
func (g *Graph) ExclusionsFor(giver string) []string {
	recipients := make([]string, 0, len(g.excluded[giver]))
	for recipient := range g.excluded[giver] {
		recipients = append(recipients, recipient)
	}
	slices.Sort(recipients)

	return recipients
}

// Allowed reports whether giver may be assigned recipient
func (g *Graph) Allowed(giver, recipient string) bool {
	if giver == recipient || !g.Has(giver) || !g.Has(recipient) {
		return false
	}

	_, excluded := g.excluded[giver][recipient]
	return !excluded
}

// Validate checks that assignment is a derangement of the participants that
// respects every exclusion
func (g *Graph) Validate(assignment Assignment) error {
	if len(assignment) != len(g.order) {
		return fmt.Errorf("%w: covers %d of %d participants", ErrInvalidAssignment, len(assignment), len(g.order))
	}

	received := make(map[string]struct{}, len(assignment))
	for _, giver := range g.order {
		recipient, ok := assignment[giver]
		if !ok {
			return fmt.Errorf("%w: participant %s has no recipient", ErrInvalidAssignment, giver)
		}

		if !g.Allowed(giver, recipient) {
			return fmt.Errorf("%w: participant %s may not give to %s", ErrInvalidAssignment, giver, recipient)
		}

		if _, dup := received[recipient]; dup {
			return fmt.Errorf("%w: participant %s receives more than once", ErrInvalidAssignment, recipient)
		}
		received[recipient] = struct{}{}
	}

	return nil
}

// CheckFeasibility answers whether any valid assignment exists under the
// current exclusions. When none does it names the over-constrained participants.
func (g *Graph) CheckFeasibility() *Feasibility {
	n := len(g.order)
	if n < 2 {
		return &Feasibility{
			Reason: fmt.Sprintf("at least 2 participants are required, have %d", n),
		}
	}

	adj := g.adjacency(g.order)

	for i, giver := range g.order {
		if len(adj[i]) == 0 {
			return &Feasibility{
				Reason:       fmt.Sprintf("participant %s has excluded every other participant", giver),
				Participants: []string{giver},
			}
		}
	}

	receivable := make([]bool, n)
	for _, recipients := range adj {
		for _, r := range recipients {
			receivable[r] = true
		}
	}
	for r, ok := range receivable {
		if !ok {
			return &Feasibility{
				Reason:       fmt.Sprintf("participant %s is excluded by every other participant", g.order[r]),
				Participants: []string{g.order[r]},
			}
		}
	}

	m := newMatcher(adj, n)
	if m.run() == n {
		return &Feasibility{Feasible: true}
	}

	infeasible := g.witness(m, g.order)
	return &Feasibility{
		Reason:       infeasible.Reason,
		Participants: infeasible.Participants,
	}
}

// Exclusions returns every giver's forbidden recipients, sorted
func (g *Graph) Exclusions() map[string][]string {
	out := make(map[string][]string, len(g.excluded))
	for giver := range g.excluded {
		out[giver] = g.ExclusionsFor(giver)
	}
	return out
}

func (g *Graph) validateExclusion(giver, recipient string) error {
	if giver == recipient {
		return fmt.Errorf("%w: participant %s cannot exclude themselves", ErrInvalidConstraint, giver)
	}

	if !g.Has(giver) {
		return fmt.Errorf("%w: unknown participant %q", ErrInvalidConstraint, giver)
	}

	if !g.Has(recipient) {
		return fmt.Errorf("%w: unknown participant %q", ErrInvalidConstraint, recipient)
	}

	return nil
}

// adjacency builds the allowed-recipient lists for givers, in that order.
// Recipients are indices into g.order.
func (g *Graph) adjacency(givers []string) [][]int {
	adj := make([][]int, len(givers))
	for i, giver := range givers {
		for r, recipient := range g.order {
			if g.Allowed(giver, recipient) {
				adj[i] = append(adj[i], r)
			}
		}
	}
	return adj
}

// witness turns a non-perfect maximum matching into a Hall violation
func (g *Graph) witness(m *matcher, givers []string) *InfeasibleError {
	left, right := m.hallViolation()

	names := make([]string, 0, len(left))
	for _, u := range left {
		names = append(names, givers[u])
	}
	slices.Sort(names)

	return newHallViolation(names, right)
}
