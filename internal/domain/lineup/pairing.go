package lineup

import "sort"

// PairSubstitutions reconstructs substitution events from flat per-player
// in/out minutes. For every distinct minute the out-players and in-players
// are collected in row-encounter order and paired positionally: the k-th out
// goes with the k-th in. Identity plays no role, so several simultaneous
// substitutions at one minute pair deterministically by order of entry.
//
// When the two sides of a minute differ in length only min(out, in) pairs are
// emitted and the unmatched remainder is dropped without a warning. That
// mirrors how the admin data has always been interpreted; callers that need
// strict balancing must validate before saving.
func PairSubstitutions(entries []Entry) []Substitution {
	outs := make(map[int][]int64)
	ins := make(map[int][]int64)
	minuteSeen := make(map[int]struct{})

	for _, entry := range entries {
		if entry.SubOut != nil {
			minute := *entry.SubOut
			outs[minute] = append(outs[minute], entry.PlayerID)
			minuteSeen[minute] = struct{}{}
		}
		if entry.SubIn != nil {
			minute := *entry.SubIn
			ins[minute] = append(ins[minute], entry.PlayerID)
			minuteSeen[minute] = struct{}{}
		}
	}

	minutes := make([]int, 0, len(minuteSeen))
	for minute := range minuteSeen {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	var events []Substitution
	for _, minute := range minutes {
		outList := outs[minute]
		inList := ins[minute]
		pairs := len(outList)
		if len(inList) < pairs {
			pairs = len(inList)
		}
		for k := 0; k < pairs; k++ {
			events = append(events, Substitution{
				PlayerOut: outList[k],
				PlayerIn:  inList[k],
				Minute:    minute,
			})
		}
	}

	return events
}

// UnmatchedAt reports how many entries at each minute could not be paired.
// The save flow logs this instead of failing, since dropping the remainder is
// the accepted behavior.
func UnmatchedAt(entries []Entry) map[int]int {
	outCount := make(map[int]int)
	inCount := make(map[int]int)
	for _, entry := range entries {
		if entry.SubOut != nil {
			outCount[*entry.SubOut]++
		}
		if entry.SubIn != nil {
			inCount[*entry.SubIn]++
		}
	}

	unmatched := make(map[int]int)
	for minute, n := range outCount {
		if diff := n - inCount[minute]; diff > 0 {
			unmatched[minute] = diff
		}
	}
	for minute, n := range inCount {
		if diff := n - outCount[minute]; diff > 0 {
			unmatched[minute] = diff
		}
	}
	return unmatched
}
