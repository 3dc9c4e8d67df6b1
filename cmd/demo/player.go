package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	playerSize  = 48.0
	moveSpeed   = 420.0
	jumpImpulse = -620.0
	gravity     = 1400.0
	floorY      = baseHeight - 64.0
)

// Player is a physics box driven entirely by the bound controls: move_x sets
// horizontal velocity, jump fires an impulse when the edge is detected.
type Player struct {
	space *cp.Space
	body  *cp.Body
}

func NewPlayer(x, y float64) *Player {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	floor := cp.NewSegment(space.StaticBody, cp.Vector{X: 0, Y: floorY}, cp.Vector{X: baseWidth, Y: floorY}, 2)
	floor.SetFriction(0.9)
	space.AddShape(floor)

	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForBox(mass, playerSize, playerSize))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngularVelocity(0)
	shape := cp.NewBox(body, playerSize, playerSize, 0)
	shape.SetFriction(0.9)
	space.AddBody(body)
	space.AddShape(shape)

	return &Player{space: space, body: body}
}

func (p *Player) Update(g *Game) {
	v := p.body.Velocity()
	p.body.SetVelocity(g.axis("move_x")*moveSpeed, v.Y)

	if g.pressed("jump") && p.grounded() {
		p.body.ApplyImpulseAtLocalPoint(cp.Vector{X: 0, Y: jumpImpulse}, cp.Vector{})
	}

	p.space.Step(1.0 / 60.0)

	// Keep the box on screen; the demo has no walls.
	pos := p.body.Position()
	if pos.X < playerSize/2 {
		p.body.SetPosition(cp.Vector{X: playerSize / 2, Y: pos.Y})
	} else if pos.X > baseWidth-playerSize/2 {
		p.body.SetPosition(cp.Vector{X: baseWidth - playerSize/2, Y: pos.Y})
	}
}

func (p *Player) grounded() bool {
	pos := p.body.Position()
	return math.Abs(p.body.Velocity().Y) < 1 && pos.Y > floorY-playerSize
}

func (p *Player) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(floorY), baseWidth, baseHeight-float32(floorY), colornames.Darkslategray, false)

	pos := p.body.Position()
	vector.DrawFilledRect(screen,
		float32(pos.X-playerSize/2), float32(pos.Y-playerSize/2),
		playerSize, playerSize, colornames.Orangered, false)
}
