package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/pufferdive/internal/application/state"
	"github.com/younwookim/pufferdive/internal/application/system"
	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

// Colors for rendering
var (
	colorWater     = color.RGBA{12, 34, 64, 255}
	colorHitbox    = color.RGBA{255, 255, 255, 90}
	colorInvul     = color.RGBA{255, 255, 255, 200}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorDead      = color.RGBA{100, 0, 0, 180}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = colornames.Limegreen
	colorBossBar   = colornames.Crimson
	colorDialogBox = color.RGBA{0, 0, 0, 170}
)

var materialColors = map[entity.Material]color.Color{
	entity.MaterialGround:    colornames.Sienna,
	entity.MaterialBrick:     colornames.Firebrick,
	entity.MaterialBreakable: colornames.Burlywood,
}

var kindColors = map[entity.Kind]color.Color{
	entity.KindPlayer:    colornames.Gold,
	entity.KindFish:      colornames.Orangered,
	entity.KindJellyfish: colornames.Orchid,
	entity.KindShrimp:    colornames.Salmon,
	entity.KindBubble:    colornames.Lightblue,
	entity.KindBoss:      colornames.Darkred,
	entity.KindKey:       colornames.Yellow,
	entity.KindDoor:      colornames.Saddlebrown,
	entity.KindHeart:     colornames.Hotpink,
	entity.KindGrampa:    colornames.Khaki,
	entity.KindButton:    colornames.Lightgrey,
	entity.KindDecor:     colornames.Seagreen,
}

// view maps world coordinates to screen pixels.
type view struct {
	origin geom.Vec
	scale  float64
}

func (v view) point(p geom.Vec) (float32, float32) {
	return float32((p.X - v.origin.X) / v.scale), float32((p.Y - v.origin.Y) / v.scale)
}

func (v view) rect(r geom.Rect) (x, y, w, h float32) {
	x, y = v.point(geom.V(r.X, r.Y))
	return x, y, float32(r.W / v.scale), float32(r.H / v.scale)
}

// camera returns the visible world rectangle, shaken when needed.
func (p *Playing) camera() view {
	w := float64(p.screenW) * p.scale
	h := float64(p.screenH) * p.scale

	cam := p.sim.Camera()
	origin := geom.V(cam.X+(cam.W-w)/2, cam.Y+(cam.H-h)/2)
	if cam.W <= 0 || cam.H <= 0 {
		if pl := p.sim.Player(); pl != nil {
			c := pl.Center()
			origin = geom.V(c.X-w/2, c.Y-h/2)
		}
	}

	if p.shake > 0 {
		origin.X += p.shake * p.scale * (2*rand.Float64() - 1)
		origin.Y += p.shake * p.scale * (2*rand.Float64() - 1)
	}
	return view{origin: origin, scale: p.scale}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorWater)

	v := p.camera()
	visible := geom.R(v.origin.X, v.origin.Y, float64(p.screenW)*v.scale, float64(p.screenH)*v.scale)

	p.drawSolids(screen, v, visible)
	p.sim.World().Each(func(a *entity.Actor) {
		if !a.Visible || !a.Hitbox().Grow(a.Width+a.Height).Collides(visible) {
			return
		}
		p.drawActor(screen, v, a)
	})

	p.drawDialogue(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorOverlay, "PAUSED\n\nPress ESC to resume")
	case state.StateDead:
		p.drawOverlay(screen, colorDead, "YOU POPPED")
	case state.StateVictory:
		p.drawOverlay(screen, colorOverlay, fmt.Sprintf("STAGE CLEAR\n\n%.1fs\n\nPress Z to play again", p.sim.Time()))
	case state.StateEnding:
		p.drawOverlay(screen, colorOverlay, "THE CRAB IS DEFEATED\n\nPress Z to play again")
	}
}

func (p *Playing) drawSolids(screen *ebiten.Image, v view, visible geom.Rect) {
	p.sim.Level().EachSolid(func(_ entity.SolidID, s *entity.Solid) {
		if !s.Collidable || !s.Rect.Collides(visible) {
			return
		}
		c := materialColors[s.Material]
		if s.Moving {
			c = colornames.Slategray
		}
		x, y, w, h := v.rect(s.Rect)
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	})
}

func (p *Playing) drawActor(screen *ebiten.Image, v view, a *entity.Actor) {
	c, ok := kindColors[a.Kind]
	if !ok {
		c = colornames.White
	}

	switch a.Kind {
	case entity.KindDiagonal:
		x0, y0 := v.point(a.Diagonal.P1)
		x1, y1 := v.point(a.Diagonal.P2)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colornames.Aquamarine, true)
		return
	case entity.KindBubble:
		hb := a.Hitbox()
		cx, cy := v.point(hb.Center())
		vector.StrokeCircle(screen, cx, cy, float32(hb.W/2/v.scale), 1, c, true)
		return
	case entity.KindPlayer:
		if a.Player.InvulTime > 0 && int(a.Player.InvulTime*10)%2 == 0 {
			c = colorInvul
		}
	case entity.KindBoss:
		p.drawBoss(screen, v, a)
	case entity.KindButton:
		if a.Button.Pressed {
			c = colornames.Dimgray
		}
	}

	x, y, w, h := v.rect(a.Hitbox())
	vector.DrawFilledRect(screen, x, y, w, h, c, false)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		x, y, w, h = v.rect(geom.R(a.Pos.X, a.Pos.Y, a.Width, a.Height))
		vector.StrokeRect(screen, x, y, w, h, 1, colorHitbox, false)
	}
}

func (p *Playing) drawBoss(screen *ebiten.Image, v view, a *entity.Actor) {
	claw := colornames.Indianred
	if a.Boss.Tinted {
		claw = colornames.White
	}
	for _, r := range p.sim.ClawHitboxes(a) {
		x, y, w, h := v.rect(r)
		vector.DrawFilledRect(screen, x, y, w, h, claw, false)
	}
	x, y, w, h := v.rect(p.sim.ButtBox(a))
	vector.StrokeRect(screen, x, y, w, h, 2, colornames.Pink, false)
}

func (p *Playing) drawDialogue(screen *ebiten.Image) {
	g := p.sim.World().Get(p.sim.World().GrampaID)
	if g == nil || g.Grampa.Phase != entity.GrampaTalking {
		return
	}
	n := g.Grampa.Revealed(system.CharTime)
	if n == 0 {
		return
	}
	line := []rune(g.Grampa.Lines[g.Grampa.Line])
	if n > len(line) {
		n = len(line)
	}

	boxY := float32(p.screenH) - 70
	vector.DrawFilledRect(screen, 10, boxY, float32(p.screenW)-20, 40, colorDialogBox, false)
	ebitenutil.DebugPrintAt(screen, string(line[:n]), 20, int(boxY)+12)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.sim.Player()
	if pl == nil {
		return
	}

	// Health pips
	for i := 0; i < pl.MaxHealth; i++ {
		c := colorHealthBG
		if i < pl.Health {
			c = colorHealthFG
		}
		vector.DrawFilledRect(screen, float32(10+i*14), float32(p.screenH-20), 10, 10, c, false)
	}

	if b := p.sim.World().Boss(); b != nil && b.Boss.Started {
		barW := float32(p.screenW) / 2
		ratio := float32(b.Health) / float32(b.MaxHealth)
		vector.DrawFilledRect(screen, barW/2, 10, barW, 8, colorHealthBG, false)
		vector.DrawFilledRect(screen, barW/2, 10, barW*ratio, 8, colorBossBar, false)
		ebitenutil.DebugPrintAt(screen, b.Boss.Phase.String(), int(barW/2), 20)
	}

	status := fmt.Sprintf("%s  %.1fs  deaths %d", p.state, p.sim.Time(), p.deaths)
	if p.soundTimer > 0 {
		status += "  ♪ " + p.lastSound.String()
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-38)

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Swim | Space/Z: Puff | Tab: Bounds | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}
