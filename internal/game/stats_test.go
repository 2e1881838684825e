package game

import (
	"strings"
	"testing"
)

func TestStatsRecordRound(t *testing.T) {
	var st Stats
	st.RecordRound(3, 10)
	st.RecordRound(1, 5)
	st.RecordRound(4, 5)

	if st.Rounds != 3 {
		t.Errorf("rounds = %d, want 3", st.Rounds)
	}
	if st.TotalKills != 8 {
		t.Errorf("total kills = %d, want 8", st.TotalKills)
	}
	if st.ShotsFired != 20 {
		t.Errorf("shots fired = %d, want 20", st.ShotsFired)
	}
	if st.BestScore != 4 {
		t.Errorf("best score = %d, want 4", st.BestScore)
	}
	if st.LastScore != 4 {
		t.Errorf("last score = %d, want 4", st.LastScore)
	}
	if got, want := st.Accuracy(), 0.4; got != want {
		t.Errorf("accuracy = %v, want %v", got, want)
	}
}

func TestStatsAccuracyNoShots(t *testing.T) {
	var st Stats
	if st.Accuracy() != 0 {
		t.Errorf("accuracy with no shots = %v, want 0", st.Accuracy())
	}
}

func TestStatsReport(t *testing.T) {
	var st Stats
	st.RecordRound(2, 8)
	r := st.Report()
	for _, want := range []string{"rounds played:  1", "total kills:    2", "accuracy:       25.0%", "best score:     2"} {
		if !strings.Contains(r, want) {
			t.Errorf("report missing %q:\n%s", want, r)
		}
	}
}
