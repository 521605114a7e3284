package gunner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	HeadChar       = 'o'
	BulletChar     = '-'
	LaserChar      = '='
	EnemyShotChar  = '•'
	ExplosionChar  = '*'
	ParticleChar   = '.'
	GrassChar      = '▓'
	AsphaltChar    = '█'
	BossChar       = '█'
	HeartChar      = '♥'
	EmptyHeartChar = '♡'
	BarChar        = '■'
	EmptyBarChar   = '·'
)

const bossBarWidth = 10

var enemyGlyphs = map[EnemyKind]rune{
	KindSoldier: 'S',
	KindFlying:  'V',
	KindTurret:  'T',
	KindRunner:  'R',
}

var enemyColors = map[EnemyKind]core.Color{
	KindSoldier: core.ColorRed,
	KindFlying:  core.ColorMagenta,
	KindTurret:  core.ColorYellow,
	KindRunner:  core.ColorOrange,
	KindBoss:    core.ColorBrightRed,
}

var powerUpGlyphs = map[PowerUpKind]rune{
	PowerUpMachineGun: 'M',
	PowerUpSpreadGun:  'W',
	PowerUpLaser:      'L',
	PowerUpExtraLife:  '+',
	PowerUpShield:     'O',
}

// camera maps world units to screen cells. The view follows the player
// horizontally without scrolling past the ends of the level, and shows a
// fixed vertical band.
type camera struct {
	centerX float64
	top     float64 // world y at screen row originY
	sx, sy  float64 // cells per world unit
	originY int
	width   int
}

const (
	viewTop    = 5.5
	viewBottom = -4.0
)

func newCamera(snap *Snapshot, w, h int) camera {
	rows := h - 2 // HUD line and a spacer
	sy := float64(rows) / (viewTop - viewBottom)
	c := camera{
		top:     viewTop,
		sx:      sy * 2, // terminal cells are about twice as tall as wide
		sy:      sy,
		originY: 2,
		width:   w,
	}
	if snap.Player != nil {
		c.centerX = snap.Player.Pos.X
	}
	if len(snap.Platforms) > 0 {
		minX, maxX := Level{Platforms: snap.Platforms}.Bounds()
		half := float64(w) / 2 / c.sx
		if maxX-minX <= 2*half {
			c.centerX = (minX + maxX) / 2
		} else {
			c.centerX = core.ClampF(c.centerX, minX+half, maxX-half)
		}
	}
	return c
}

func (c camera) col(x float64) int {
	return int(math.Floor((x-c.centerX)*c.sx)) + c.width/2
}

func (c camera) row(y float64) int {
	return int(math.Floor((c.top-y)*c.sy)) + c.originY
}

// Render draws the current snapshot into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.world.Snapshot()
	RenderSnapshot(dst, &snap)

	if g.paused {
		drawBanner(dst, "PAUSED", "P to resume, R to restart")
	}
}

// RenderSnapshot draws a snapshot with HUD and state overlays. It is
// shared by the local and SSH front ends.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	cam := newCamera(snap, dst.Width(), dst.Height())

	renderPlatforms(dst, cam, snap)
	renderPowerUps(dst, cam, snap)
	renderEnemies(dst, cam, snap)
	renderPlayer(dst, cam, snap)
	renderBullets(dst, cam, snap)
	renderEffects(dst, cam, snap)
	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

func renderPlatforms(dst *core.Screen, cam camera, snap *Snapshot) {
	view := core.NewRect(0, 0, dst.Width(), dst.Height())
	for _, p := range snap.Platforms {
		box := p.Box()
		left, right := cam.col(box.X), cam.col(box.Right())
		top, bottom := cam.row(box.Top()), cam.row(box.Y)
		if bottom == top {
			bottom++
		}
		cells := core.NewRect(left, top, right-left, bottom-top)
		if !cells.Intersects(view) {
			continue
		}
		glyph, color := AsphaltChar, core.ColorGray
		if p.Surface == SurfaceGrass {
			glyph, color = GrassChar, core.ColorGreen
		}
		dst.DrawRect(cells, glyph, color)
	}
}

func renderPowerUps(dst *core.Screen, cam camera, snap *Snapshot) {
	for _, pu := range snap.PowerUps {
		dst.SetColored(cam.col(pu.Pos.X), cam.row(pu.Pos.Y), powerUpGlyphs[pu.Kind], core.ColorBrightCyan)
	}
}

func renderEnemies(dst *core.Screen, cam camera, snap *Snapshot) {
	for _, e := range snap.Enemies {
		kind := e.Kind()
		dst.SetColored(cam.col(e.Pos.X), cam.row(e.Pos.Y), enemyGlyphs[kind], enemyColors[kind])
	}
	if b := snap.Boss; b != nil {
		x, y := cam.col(b.Pos.X), cam.row(b.Pos.Y)
		dst.DrawRect(core.NewRect(x-1, y-2, 3, 3), BossChar, enemyColors[KindBoss])
	}
}

func renderPlayer(dst *core.Screen, cam camera, snap *Snapshot) {
	p := snap.Player
	if p == nil {
		return
	}
	x, y := cam.col(p.Pos.X), cam.row(p.Pos.Y)
	color := core.ColorBrightWhite
	if p.HasShield {
		color = core.ColorBrightCyan
		dst.SetColored(x-1, y, '(', color)
		dst.SetColored(x+1, y, ')', color)
	}
	dst.SetColored(x, y, PlayerChar, color)
	dst.SetColored(x, y-1, HeadChar, color)
	if p.FacingRight {
		dst.SetColored(x+1, y, '>', core.ColorWhite)
	} else {
		dst.SetColored(x-1, y, '<', core.ColorWhite)
	}
}

func renderBullets(dst *core.Screen, cam camera, snap *Snapshot) {
	var playerID EntityID
	if snap.Player != nil {
		playerID = snap.Player.ID
	}
	for _, b := range snap.Bullets {
		glyph, color := EnemyShotChar, core.ColorBrightRed
		if b.Owner == playerID {
			glyph, color = BulletChar, core.ColorBrightYellow
			if b.Weapon == WeaponLaser {
				glyph, color = LaserChar, core.ColorBrightMagenta
			}
		}
		dst.SetColored(cam.col(b.Pos.X), cam.row(b.Pos.Y), glyph, color)
	}
}

func renderEffects(dst *core.Screen, cam camera, snap *Snapshot) {
	for _, x := range snap.Explosions {
		r := x.Size / 2
		for _, dx := range []float64{-r, 0, r} {
			dst.SetColored(cam.col(x.Pos.X+dx), cam.row(x.Pos.Y), ExplosionChar, core.ColorOrange)
		}
	}
	for _, p := range snap.Particles {
		dst.SetColored(cam.col(p.Pos.X), cam.row(p.Pos.Y), ParticleChar, core.ColorYellow)
	}
}

// renderHUD draws score, level, health, weapon and combo on the top line.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	level := fmt.Sprintf("Level %d  Kills %d/%d", snap.Level, snap.EnemiesKilled, snap.RequiredKills)
	dst.DrawTextCentered(0, level)

	if p := snap.Player; p != nil {
		var hearts strings.Builder
		for i := 0; i < p.MaxHealth; i++ {
			if i < p.Health {
				hearts.WriteRune(HeartChar)
			} else {
				hearts.WriteRune(EmptyHeartChar)
			}
		}
		right := hearts.String() + " " + string(p.Weapon)
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightRed)
	}

	if snap.ComboMultiplier > 1 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("COMBO x%d", snap.ComboMultiplier), core.ColorBrightYellow)
	}
	if b := snap.Boss; b != nil {
		label := fmt.Sprintf(" BOSS %d/%d", b.Health, b.MaxHealth)
		x := dst.Width() - len(label) - 1
		filled := core.Clamp(b.Health*bossBarWidth/max(b.MaxHealth, 1), 0, bossBarWidth)
		dst.DrawHLine(x-bossBarWidth, 1, filled, BarChar, core.ColorBrightRed)
		dst.DrawHLine(x-bossBarWidth+filled, 1, bossBarWidth-filled, EmptyBarChar, core.ColorGray)
		dst.DrawTextColored(x, 1, label, core.ColorBrightRed)
	}
}

func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.State {
	case StateMenu:
		drawBanner(dst, "RETRO GUNNER", "Enter to start  |  A/D move  Space jump  J shoot  1-3 weapons")
	case StateLevelComplete:
		drawBanner(dst, fmt.Sprintf("LEVEL %d COMPLETE", snap.Level), "Enter for the next level")
	case StateGameOver:
		drawBanner(dst, "GAME OVER", fmt.Sprintf("Score %d  |  R to restart, Q to quit", snap.Score))
	case StateVictory:
		drawBanner(dst, "VICTORY", fmt.Sprintf("Final score %d  |  R to play again", snap.Score))
	}
}

func drawBanner(dst *core.Screen, title, hint string) {
	mid := dst.Height() / 2
	width := max(len([]rune(title)), len([]rune(hint))) + 4
	left := (dst.Width() - width) / 2
	box := core.NewRect(left, mid-2, width, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(mid-1, title)
	dst.DrawTextCentered(mid+1, hint)
}
