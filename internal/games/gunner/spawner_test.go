package gunner

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// parkTurrets fills the enemy list with silent turrets far from the player.
func parkTurrets(w *World, n int) {
	for i := 0; i < n; i++ {
		placeEnemy(w, KindTurret, 40+float64(i), -1.3)
	}
}

func TestSpawnerRespectsEnemyCap(t *testing.T) {
	t.Run("below cap", func(t *testing.T) {
		w := newTestWorld(t, withSpawning)
		parkTurrets(w, 5)
		w.enemyTimer = 2.5

		w.Tick(Intent{}, dt)

		require.Len(t, w.enemies, 6)
		spawned := w.enemies[5]
		assert.True(t, slices.Contains(SpawnableKinds, spawned.Kind()))
		assert.Equal(t, 12.0, math.Abs(spawned.Pos.X-w.player.Pos.X))
		assert.Equal(t, spawned.Health, spawned.MaxHealth)
		assert.Zero(t, w.enemyTimer)
	})

	t.Run("at cap", func(t *testing.T) {
		w := newTestWorld(t, withSpawning)
		parkTurrets(w, 6)
		w.enemyTimer = 2.5

		w.Tick(Intent{}, dt)

		assert.Len(t, w.enemies, 6)
		assert.InDelta(t, 2.5+dt, w.enemyTimer, 1e-12)
	})
}

func TestSpawnerPausedDuringBossFight(t *testing.T) {
	w := newTestWorld(t, withSpawning)
	w.spawnBoss()
	w.enemyTimer = 10

	w.Tick(Intent{}, dt)
	assert.Empty(t, w.enemies)
}

func TestSpawnerUsesRealDelta(t *testing.T) {
	w := newTestWorld(t, withSpawning)
	w.enemyTimer = 2.1

	w.Tick(Intent{}, 0.5)
	assert.Len(t, w.enemies, 1)
}

func TestSpawnerProducesEveryArchetype(t *testing.T) {
	w := newTestWorld(t, withSpawning)
	seen := make(map[EnemyKind]bool)

	for i := 0; i < 200; i++ {
		w.spawnEnemy()
		e := w.enemies[len(w.enemies)-1]
		seen[e.Kind()] = true
		require.NoError(t, checkEnemy(e))
	}
	for _, kind := range SpawnableKinds {
		assert.True(t, seen[kind], "never spawned %s", kind)
	}
}

func TestPowerUpSpawn(t *testing.T) {
	t.Run("drops near the player", func(t *testing.T) {
		w := newTestWorld(t, withSpawning)
		w.powerUpTimer = 8

		w.Tick(Intent{}, dt)

		require.Len(t, w.powerUps, 1)
		pu := w.powerUps[0]
		assert.Equal(t, -0.5, pu.Pos.Y)
		assert.LessOrEqual(t, math.Abs(pu.Pos.X-w.player.Pos.X), 8.0)
		assert.True(t, slices.Contains(PowerUpKinds, pu.Kind))
		assert.Zero(t, w.powerUpTimer)
	})

	t.Run("capped", func(t *testing.T) {
		w := newTestWorld(t, withSpawning)
		for i := 0; i < 3; i++ {
			w.powerUps = append(w.powerUps, &PowerUp{ID: w.newID(), Pos: core.V2(40, -0.5), Kind: PowerUpShield})
		}
		w.powerUpTimer = 8

		w.Tick(Intent{}, dt)
		assert.Len(t, w.powerUps, 3)
	})
}

func TestNoSpawnOnTheTickTheLevelEnds(t *testing.T) {
	w := newTestWorld(t, withSpawning)
	w.enemiesKilled = 9
	e := placeEnemy(w, KindSoldier, 3, enemyRestY)
	e.Health = 1
	shootAt(w, e.Pos, 1)
	w.enemyTimer = 2.5
	w.powerUpTimer = 8

	w.Tick(Intent{}, dt)

	assert.Equal(t, StateLevelComplete, w.State())
	assert.Empty(t, w.enemies)
	assert.Empty(t, w.powerUps)
}
