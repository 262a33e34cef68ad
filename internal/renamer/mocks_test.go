package renamer

import (
	"context"
	"fmt"
)

type mockApprover struct {
	approved bool
	err      error
	requests [][2]string
}

func (m *mockApprover) RequestApproval(_ context.Context, source, destination string) (bool, error) {
	m.requests = append(m.requests, [2]string{source, destination})
	return m.approved, m.err
}

// sequenceGenerator hands out predictable names.
type sequenceGenerator struct {
	next int
}

func (g *sequenceGenerator) NewName() string {
	g.next++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", g.next)
}
