package skyfight

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-fight/internal/combat"
	"github.com/vovakirdan/sky-fight/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = 'A'
	EnemyArt   = "<=W=>"
)

var projectileGlyphs = map[combat.ProjectileKind]rune{
	combat.KindLaser: '|',
	combat.KindOrb:   '*',
	combat.KindPearl: 'o',
	combat.KindOval:  'O',
}

var projectileColors = map[combat.ProjectileKind]core.Color{
	combat.KindLaser: core.ColorYellow,
	combat.KindOrb:   core.ColorMagenta,
	combat.KindPearl: core.ColorBrightWhite,
	combat.KindOval:  core.ColorOrange,
}

// Projection maps world coordinates (y-up) onto the cells inside the field box.
type Projection struct {
	Field combat.Field
	Inner core.Rect
}

// NewProjection builds the projection for a terminal of w x h cells. The
// field box takes the left three quarters of the width.
func NewProjection(field combat.Field, w, h int) Projection {
	boxW := w * 3 / 4
	return Projection{
		Field: field,
		Inner: core.NewRect(1, 1, max(boxW-2, 1), max(h-2, 1)),
	}
}

// Cell returns the terminal cell for a world point and whether it falls
// inside the field.
func (p Projection) Cell(v core.Vec2) (int, int, bool) {
	if !p.Field.Contains(v) {
		return 0, 0, false
	}
	fx := v.X / p.Field.W
	fy := (p.Field.H - v.Y) / p.Field.H
	x := p.Inner.X + int(math.Round(fx*float64(p.Inner.W-1)))
	y := p.Inner.Y + int(math.Round(fy*float64(p.Inner.H-1)))
	return x, y, true
}

// Render draws the field, the ships, every projectile and the HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH))
		return
	}

	s := g.session
	proj := NewProjection(s.Field(), w, h)
	dst.DrawBox(core.NewRect(0, 0, proj.Inner.W+2, h))

	for _, shot := range s.EnemyShots() {
		g.drawProjectile(dst, proj, shot)
	}
	for _, shot := range s.PlayerShots() {
		g.drawProjectile(dst, proj, shot)
	}

	if s.EnemyAlive() {
		if x, y, ok := proj.Cell(s.Enemy().Sprite); ok {
			dst.DrawTextColored(x-len(EnemyArt)/2, y, EnemyArt, core.ColorRed)
		}
	}

	player := s.Player()
	if !player.Defeated() && player.Opacity >= 128 {
		if x, y, ok := proj.Cell(player.Sprite); ok {
			dst.SetColored(x, y, PlayerChar, core.ColorBrightCyan)
		}
	}

	g.renderHUD(dst, proj.Inner.W+3)

	if s.Phase() == combat.PhaseEnded {
		g.renderGameOver(dst, proj)
	}
}

func (g *Game) drawProjectile(dst *core.Screen, proj Projection, p *combat.Projectile) {
	x, y, ok := proj.Cell(p.Sprite)
	if !ok {
		return
	}
	glyph, found := projectileGlyphs[p.Kind]
	if !found {
		glyph = '.'
	}
	dst.SetColored(x, y, glyph, projectileColors[p.Kind])
}

// HUDLines returns the status lines shown next to the field.
func HUDLines(snap combat.Snapshot) []string {
	lives := fmt.Sprintf("PLAYER LIVES: %d", snap.PlayerLives)
	if snap.PlayerLives < 0 {
		lives = "PLAYER: dead"
	}
	return []string{
		fmt.Sprintf("ENEMY HP: %d", snap.EnemyHealth),
		fmt.Sprintf("LEVEL: %d", snap.Tier),
		lives,
		fmt.Sprintf("SCORE: %d", snap.Score),
		fmt.Sprintf("TIME BONUS: %d", snap.TimeBonus),
	}
}

func (g *Game) renderHUD(dst *core.Screen, x int) {
	snap := g.session.Snapshot()
	colors := []core.Color{core.ColorRed, core.ColorYellow, core.ColorBrightCyan, core.ColorBrightWhite, core.ColorGreen}
	for i, line := range HUDLines(snap) {
		dst.DrawTextColored(x, 1+i*2, line, colors[i])
	}

	help := []string{"arrows/WASD move", "shift: focus", "z/space: fire", "x: auto-fire", "p: pause"}
	top := dst.Height() - 1 - len(help)
	for i, line := range help {
		dst.DrawTextColored(x, top+i, line, core.ColorGray)
	}
}

// GameOverLines returns the summary shown when the session has ended.
func GameOverLines(snap combat.Snapshot) []string {
	if !snap.Won {
		return []string{
			"You lost",
			fmt.Sprintf("Your score: %d", snap.Score),
			"",
			"Enter: continue",
		}
	}
	return []string{
		"You win!",
		fmt.Sprintf("Score %d + time bonus %d", snap.Score-snap.TimeBonus, snap.TimeBonus),
		fmt.Sprintf("Final score: %d", snap.Score),
		"Enter: continue",
	}
}

func (g *Game) renderGameOver(dst *core.Screen, proj Projection) {
	lines := GameOverLines(g.session.Snapshot())

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	box := core.NewRect(
		proj.Inner.X+(proj.Inner.W-boxW)/2,
		proj.Inner.Y+(proj.Inner.H-boxH)/2,
		boxW, boxH,
	)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	title := core.ColorGreen
	if !g.session.Won() {
		title = core.ColorBrightRed
	}
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = title
		}
		dst.DrawTextColored(box.X+2, box.Y+1+i, l, c)
	}
}
