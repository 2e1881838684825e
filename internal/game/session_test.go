package game

import (
	"testing"
)

// endRound plants an enemy on the player and steps until the terminal
// collision fires.
func endRound(t *testing.T, s *Session) {
	t.Helper()
	s.round.enemies = append(s.round.enemies, enemy{x: s.round.player.x, y: s.round.player.y})
	for i := 0; i < 10 && s.mode == modePlaying; i++ {
		s.stepPlaying(frameDt, Input{})
	}
	if s.mode != modeGameOver {
		t.Fatal("planted collision did not end the round")
	}
}

func TestSession_RoundEndEntersGameOver(t *testing.T) {
	s := NewSession(quietConfig(), nil, 1)
	endRound(t, s)

	if s.finalScore != 0 {
		t.Errorf("final score = %d, want 0 for a no-kill round", s.finalScore)
	}
	st := s.Stats()
	if st.Rounds != 1 {
		t.Errorf("rounds recorded = %d, want 1", st.Rounds)
	}
}

func TestSession_RestartStartsFreshRound(t *testing.T) {
	s := NewSession(quietConfig(), nil, 1)

	// Score a kill before dying so the reset is observable.
	s.round.enemies = append(s.round.enemies, enemy{x: 100, y: 90})
	s.round.bullets = append(s.round.bullets, bullet{x: 120, y: 100})
	s.stepPlaying(0.001, Input{})
	if s.round.Score() != 1 {
		t.Fatalf("setup kill not scored: %d", s.round.Score())
	}
	endRound(t, s)
	if s.finalScore != 1 {
		t.Fatalf("final score = %d, want 1", s.finalScore)
	}

	// Without the restart signal the overlay state holds.
	s.stepGameOver(false)
	if s.mode != modeGameOver {
		t.Fatal("left game-over without a restart signal")
	}

	s.stepGameOver(true)
	if s.mode != modePlaying {
		t.Fatal("restart did not resume playing")
	}
	snap := s.round.Snapshot()
	if snap.Score != 0 || len(snap.Bullets) != 0 || len(snap.Enemies) != 0 || snap.Over {
		t.Errorf("restarted round not fresh: %+v", snap)
	}
}

func TestSession_PauseSkipsSimulation(t *testing.T) {
	s := NewSession(quietConfig(), nil, 1)
	s.paused = true

	before := s.round.Snapshot()
	for i := 0; i < 30; i++ {
		s.stepPlaying(frameDt, Input{Right: true, Fire: true})
	}
	after := s.round.Snapshot()
	if after.PlayerX != before.PlayerX || len(after.Bullets) != 0 {
		t.Errorf("paused round advanced: %+v -> %+v", before, after)
	}

	s.paused = false
	s.stepPlaying(frameDt, Input{Right: true})
	if s.round.Snapshot().PlayerX <= before.PlayerX {
		t.Error("unpaused round did not advance")
	}
}

func TestSession_StatsAccumulateAcrossRounds(t *testing.T) {
	s := NewSession(quietConfig(), nil, 1)

	endRound(t, s)
	s.stepGameOver(true)

	// Second round scores once before dying.
	s.round.enemies = append(s.round.enemies, enemy{x: 100, y: 90})
	s.round.bullets = append(s.round.bullets, bullet{x: 120, y: 100})
	s.stepPlaying(0.001, Input{})
	endRound(t, s)

	st := s.Stats()
	if st.Rounds != 2 {
		t.Errorf("rounds = %d, want 2", st.Rounds)
	}
	if st.TotalKills != 1 {
		t.Errorf("total kills = %d, want 1", st.TotalKills)
	}
	if st.BestScore != 1 || st.LastScore != 1 {
		t.Errorf("best/last = %d/%d, want 1/1", st.BestScore, st.LastScore)
	}
}
