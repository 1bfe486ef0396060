// goal.go implements the scripted moving goal: a target that relocates
// one step toward a configured end goal on a fixed tick cadence.
package gridmap

// AdvanceGoal ticks the moving goal. Only every fourth call performs a
// relocation; the tick counter increments on every call, and the counter
// starts at zero, so calls 1, 5, 9, … are the ones that move (four
// consecutive calls yield exactly one relocation).
//
// A relocation moves the goal ONE step toward the end goal, trying in
// strict priority order: row+1, row−1, col+1, col−1, each considered
// only when it strictly shrinks the distance along its axis. The step is
// scripted, not searched: it ignores obstacles, so the goal may stand on
// an obstacle cell until a later step carries it off. Searches toward
// such a goal report that no path exists.
//
// The overlay symbol displaced by the goal marker is restored to the
// vacated cell. Without a configured end goal, or once the goal reaches
// it, calls only advance the counter.
//
// Returns the (possibly unchanged) goal position.
func (m *GridMap) AdvanceGoal() Pos {
	if m.tick%4 == 0 {
		if next, ok := m.nextGoalStep(); ok {
			m.moveGoal(next)
		}
	}
	m.tick++
	return m.goal
}

// Tick returns how many times AdvanceGoal has been called.
func (m *GridMap) Tick() int { return m.tick }

// GoalReachedEnd reports whether the moving goal stands on its end goal.
// Always false when no end goal is configured.
func (m *GridMap) GoalReachedEnd() bool {
	return m.hasEndGoal && m.goal == m.endGoal
}

// nextGoalStep picks the single cell the goal relocates to, or ok=false
// when no end goal is set or the goal already stands on it.
func (m *GridMap) nextGoalStep() (Pos, bool) {
	if !m.hasEndGoal {
		return Pos{}, false
	}
	switch {
	case m.goal.Row < m.endGoal.Row:
		return Pos{Row: m.goal.Row + 1, Col: m.goal.Col}, true
	case m.goal.Row > m.endGoal.Row:
		return Pos{Row: m.goal.Row - 1, Col: m.goal.Col}, true
	case m.goal.Col < m.endGoal.Col:
		return Pos{Row: m.goal.Row, Col: m.goal.Col + 1}, true
	case m.goal.Col > m.endGoal.Col:
		return Pos{Row: m.goal.Row, Col: m.goal.Col - 1}, true
	}
	return Pos{}, false
}

// placeGoal drops the goal marker on p, remembering whatever overlay
// symbol it covers so moveGoal can restore it later.
func (m *GridMap) placeGoal(p Pos) {
	m.covered = m.overlay[p] // zero rune when the cell carried no marker
	m.overlay[p] = SymbolGoal
	m.goal = p
}

// moveGoal relocates the goal marker from the current cell to next,
// restoring the displaced symbol on the vacated cell.
func (m *GridMap) moveGoal(next Pos) {
	if m.covered != 0 {
		m.overlay[m.goal] = m.covered
	} else {
		delete(m.overlay, m.goal)
	}
	m.placeGoal(next)
}
