package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Stats accumulates aggregates across the rounds of one session. It feeds
// the clipboard report and the headless runner's summary.
type Stats struct {
	Rounds     int
	TotalKills int
	ShotsFired int
	BestScore  int
	LastScore  int
}

// RecordRound folds one finished round into the session aggregates.
func (st *Stats) RecordRound(score, shots int) {
	st.Rounds++
	st.TotalKills += score
	st.ShotsFired += shots
	st.LastScore = score
	if score > st.BestScore {
		st.BestScore = score
	}
}

// Accuracy returns kills per shot over the whole session, 0 before the
// first shot.
func (st Stats) Accuracy() float64 {
	if st.ShotsFired == 0 {
		return 0
	}
	return float64(st.TotalKills) / float64(st.ShotsFired)
}

// Report renders the session aggregates as a small text block.
func (st Stats) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rounds played:  %d\n", st.Rounds)
	fmt.Fprintf(&b, "total kills:    %d\n", st.TotalKills)
	fmt.Fprintf(&b, "shots fired:    %d\n", st.ShotsFired)
	fmt.Fprintf(&b, "accuracy:       %.1f%%\n", st.Accuracy()*100)
	fmt.Fprintf(&b, "best score:     %d\n", st.BestScore)
	fmt.Fprintf(&b, "last score:     %d\n", st.LastScore)
	return b.String()
}

// CopyReport puts the report on the OS clipboard.
func (st Stats) CopyReport() error {
	return clipboard.WriteAll(st.Report())
}
