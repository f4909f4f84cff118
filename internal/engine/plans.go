package engine

// --- Turn order -------------------------------------------------------

// turnOrder returns the slot indexes in attack order. The faster fighter
// goes first and a speed tie favors the first input. The order is computed
// once because battle-ready stats never change during a battle.
func (bc *battleContext) turnOrder() [2]int {
	if bc.sides[0].stats.Speed >= bc.sides[1].stats.Speed {
		return [2]int{0, 1}
	}
	return [2]int{1, 0}
}
