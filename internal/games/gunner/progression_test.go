package gunner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/core"
)

func TestStartGame(t *testing.T) {
	w := NewWorld(config.DefaultGunnerConfig(), 3)
	w.StartGame()

	p := w.Player()
	require.NotNil(t, p)
	assert.Equal(t, StatePlaying, w.State())
	assert.Equal(t, core.V2(0, -1.5), p.Pos)
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 3, p.MaxHealth)
	assert.Equal(t, WeaponBasic, p.Weapon)
	assert.True(t, p.FacingRight)
	assert.Equal(t, 1, w.CurrentLevel())
	assert.Len(t, w.level.Platforms, 4)
	assert.Equal(t, 10, w.RequiredKills())
	require.NoError(t, w.Validate())
}

func TestRestartWipesSession(t *testing.T) {
	w := newTestWorld(t)
	placeEnemy(w, KindTurret, 40, -1.3)
	w.spawnBoss()
	w.score = 700
	w.currentLevel = 4
	w.comboMultiplier = 2
	w.comboTimer = 1
	w.player.Health = 0
	w.setState(StateGameOver)

	w.Restart()

	assert.Equal(t, StatePlaying, w.State())
	assert.Zero(t, w.Score())
	assert.Equal(t, 1, w.CurrentLevel())
	assert.Equal(t, 3, w.player.Health)
	assert.Empty(t, w.enemies)
	assert.Nil(t, w.boss)
	assert.False(t, w.bossActive)
	assert.Equal(t, 1, w.comboMultiplier)
	require.NoError(t, w.Validate())
}

func TestNextLevelOnlyFromLevelComplete(t *testing.T) {
	for _, s := range []SessionState{StateMenu, StatePlaying, StateGameOver, StateVictory} {
		w := newTestWorld(t)
		w.state = s
		assert.False(t, w.NextLevel(), "from %s", s)
		assert.Equal(t, 1, w.CurrentLevel())
	}
}

func TestNextLevel(t *testing.T) {
	w := newTestWorld(t)
	placeEnemy(w, KindTurret, 40, -1.3)
	w.powerUps = append(w.powerUps, &PowerUp{ID: w.newID(), Pos: core.V2(40, 0), Kind: PowerUpLaser})
	w.player.Weapon = WeaponLaser
	w.player.Health = 1
	w.player.Pos.X = 6
	w.score = 1500
	w.enemiesKilled = 10
	w.enemyTimer = 2
	w.setState(StateLevelComplete)

	require.True(t, w.NextLevel())

	p := w.player
	assert.Equal(t, StatePlaying, w.State())
	assert.Equal(t, 2, w.CurrentLevel())
	assert.Equal(t, 2, p.Health)
	assert.Equal(t, WeaponLaser, p.Weapon)
	assert.Equal(t, core.V2(0, -1.5), p.Pos)
	assert.Equal(t, 1500, w.Score())
	assert.Zero(t, w.enemiesKilled)
	assert.Zero(t, w.enemyTimer)
	assert.Empty(t, w.enemies)
	assert.Empty(t, w.powerUps)
	assert.Len(t, w.level.Platforms, 6)
	assert.Equal(t, 15, w.RequiredKills())
}

func TestNextLevelHealIsCapped(t *testing.T) {
	w := newTestWorld(t)
	w.setState(StateLevelComplete)

	require.True(t, w.NextLevel())
	assert.Equal(t, 3, w.player.Health)
}

func TestKillPlaneEndsRun(t *testing.T) {
	w := newTestWorld(t)
	w.player.Pos = core.V2(30, -11.999)
	w.player.Vel = core.V2(0, -1)
	w.player.OnGround = false

	w.Tick(Intent{}, dt)

	assert.Equal(t, StateGameOver, w.State())
	assert.Zero(t, w.player.Health)
}

func TestWalkingOffTheLevelEndsRun(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 600 && w.State() == StatePlaying; i++ {
		w.Tick(Intent{Right: true}, dt)
	}
	assert.Equal(t, StateGameOver, w.State())
	assert.Greater(t, w.player.Pos.X, 10.0)
}

func TestLevelLayouts(t *testing.T) {
	tests := []struct {
		index     int
		platforms int
		layout    string
		width     float64
		reach     float64
	}{
		{1, 4, LayoutTraining, 20, 11},
		{2, 6, LayoutTiers, 25, 12.5},
		{3, 7, LayoutSteps, 30, 15},
		{4, 4, LayoutArena, 35, 17.5},
		{9, 4, LayoutArena, 35, 17.5},
	}

	for _, tt := range tests {
		lvl := GenerateLevel(tt.index)
		assert.Equal(t, tt.index, lvl.Index)
		assert.Len(t, lvl.Platforms, tt.platforms, "level %d", tt.index)
		assert.Equal(t, tt.layout, LayoutName(tt.index))

		ground := lvl.Platforms[0]
		assert.Equal(t, tt.width, ground.W, "level %d ground", tt.index)
		assert.Equal(t, -2.5, ground.Top())

		minX, maxX := lvl.Bounds()
		assert.Equal(t, -tt.reach, minX)
		assert.Equal(t, tt.reach, maxX)
		assert.Equal(t, ground, lvl.Floor(), "level %d floor", tt.index)
	}

	// Fresh copy per call
	a := GenerateLevel(1)
	a.Platforms[0].W = 1
	assert.Equal(t, 20.0, GenerateLevel(1).Platforms[0].W)
}

func TestSummaryCoversTheSession(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 3; i++ {
		e := placeEnemy(w, KindSoldier, 3, enemyRestY)
		e.Health = 1
		shootAt(w, e.Pos, 1)
		w.Tick(Intent{}, dt)
	}

	sum := w.Summary()
	assert.Equal(t, int64(42), sum.Seed)
	assert.Equal(t, StatePlaying, sum.State)
	assert.Equal(t, 3, sum.Kills)
	assert.Equal(t, w.Score(), sum.Score)
	assert.Equal(t, uint64(63), sum.Ticks)

	// Kills survive a level advance, not a restart
	w.setState(StateLevelComplete)
	w.NextLevel()
	assert.Equal(t, 3, w.Summary().Kills)
	assert.Zero(t, w.enemiesKilled)

	w.Restart()
	assert.Zero(t, w.Summary().Kills)
	assert.Zero(t, w.Summary().Ticks)
}
