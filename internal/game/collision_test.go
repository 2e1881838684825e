package game

import "testing"

func TestScenario_DirectHitKill(t *testing.T) {
	rec := &RecorderSounds{}
	// Enemy descending straight down the player's column; one bullet fired
	// with no horizontal offset.
	tr := NewTestRound(
		WithConfig(quietConfig()),
		WithSounds(rec),
		WithEnemyAt(368, 100),
	)

	tr.Round.Step(frameDt, Input{Fire: true})
	if tr.Round.ShotsFired() != 1 {
		t.Fatalf("shots fired = %d, want 1", tr.Round.ShotsFired())
	}
	tr.RunFrames(60, frameDt, Input{})

	snap := tr.Snapshot()
	if snap.Score != 1 {
		t.Errorf("kill count = %d, want 1", snap.Score)
	}
	if len(snap.Enemies) != 0 {
		t.Errorf("destroyed enemy still in the live set: %+v", snap.Enemies)
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("spent bullet still in the live set: %+v", snap.Bullets)
	}
	if rec.Counts[SoundShoot] != 1 || rec.Counts[SoundExplosion] != 1 {
		t.Errorf("sound counts = %v, want one shot and one explosion", rec.Counts)
	}
}

func TestCollision_OneBulletDestroysOneEnemy(t *testing.T) {
	// Two overlapping enemies in the bullet's path; the scan must stop at
	// the first.
	tr := NewTestRound(
		WithConfig(quietConfig()),
		WithEnemyAt(73, 90),
		WithEnemyAt(73, 92),
		WithBulletAt(100, 100),
	)

	tr.Round.Step(0.001, Input{})
	snap := tr.Snapshot()
	if snap.Score != 1 {
		t.Errorf("kills = %d, want 1", snap.Score)
	}
	if len(snap.Enemies) != 1 {
		t.Errorf("live enemies = %d, want the second one to survive", len(snap.Enemies))
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("colliding bullet survived: %+v", snap.Bullets)
	}
}

func TestCollision_ConsumedEnemyNotMatchedTwice(t *testing.T) {
	// Two bullets overlapping one enemy in the same frame: the tombstoned
	// enemy must not be matched by the second bullet.
	tr := NewTestRound(
		WithConfig(quietConfig()),
		WithEnemyAt(73, 90),
		WithBulletAt(100, 100),
		WithBulletAt(100, 105),
	)

	tr.Round.Step(0.001, Input{})
	snap := tr.Snapshot()
	if snap.Score != 1 {
		t.Errorf("kills = %d, want 1", snap.Score)
	}
	if len(snap.Enemies) != 0 {
		t.Errorf("live enemies = %d, want 0", len(snap.Enemies))
	}
	if len(snap.Bullets) != 1 {
		t.Errorf("surviving bullets = %d, want the non-matching one kept", len(snap.Bullets))
	}
}

func TestCollision_MissingBulletSurvives(t *testing.T) {
	tr := NewTestRound(
		WithConfig(quietConfig()),
		WithEnemyAt(600, 100),
		WithBulletAt(100, 300),
	)

	tr.Round.Step(frameDt, Input{})
	snap := tr.Snapshot()
	if snap.Score != 0 {
		t.Errorf("kills = %d, want 0", snap.Score)
	}
	if len(snap.Bullets) != 1 || len(snap.Enemies) != 1 {
		t.Errorf("entities = %d bullets, %d enemies; want both to survive",
			len(snap.Bullets), len(snap.Enemies))
	}
}
