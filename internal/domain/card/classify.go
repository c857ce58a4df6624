package card

// Classify resolves the stored type for a booking given how many yellows the
// same player already received earlier in the match. A second yellow picked
// as yellow escalates; an explicit red is independent of prior yellows.
func Classify(priorYellows int, picked Kind) Classification {
	if picked == KindRed {
		return ClassRed
	}
	if priorYellows >= 1 {
		return ClassSecondYellow
	}
	return ClassYellow
}

// BuildRecords turns the ordered admin assignments for one match into the
// rows to persist, applying Classify per player in submission order. A
// trailing assignment with PlayerID zero is an empty form placeholder and is
// skipped. Only plain yellows advance a player's caution count; a red does
// not reset it.
func BuildRecords(matchID int64, assignments []Assignment) []Record {
	records := make([]Record, 0, len(assignments))
	yellows := make(map[int64]int)
	for _, a := range assignments {
		if a.PlayerID == 0 {
			continue
		}
		class := Classify(yellows[a.PlayerID], a.Kind)
		if class == ClassYellow {
			yellows[a.PlayerID]++
		}
		records = append(records, Record{
			MatchID:        matchID,
			PlayerID:       a.PlayerID,
			IsRed:          class == ClassRed,
			IsSecondYellow: class == ClassSecondYellow,
			Minute:         a.Minute,
		})
	}
	return records
}
