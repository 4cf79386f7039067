// Package program implements the Befunge-98 instruction pointer,
// instruction set, and round-robin execution engine.
package program

import (
	"unicode/utf8"

	"mycon/internal/data"
	"mycon/internal/space"
	"mycon/internal/stack"
)

// Ip is a single instruction pointer: its own position, direction,
// storage offset, stack-stack, and string-mode state. A running program
// is a list of these, scheduled round-robin by an Engine.
type Ip struct {
	id       data.Value
	position data.Point
	delta    data.Delta
	storage  data.Point
	stacks   *stack.StackStack
	string   bool
	sawSpace bool
}

// NewIp creates an Ip facing east with a single empty stack — the
// configuration a program's initial Ip has at start. Its position is
// set one cell west of the origin rather than the origin itself,
// since every tick's first phase is a Step: this places the very
// first tick's step exactly on (0, 0), the conventional start cell.
func NewIp() *Ip {
	return &Ip{
		position: data.Point{X: -1, Y: 0},
		delta:    data.East,
		stacks:   stack.New(),
	}
}

// clone copies this Ip's state into a new Ip, for the 't' instruction.
// The id is left zero; the engine assigns the real one on commit.
func (ip *Ip) clone() *Ip {
	c := *ip
	c.stacks = ip.stacks.Clone()
	return &c
}

func (ip *Ip) getCurrent(sp *space.Space) data.Value {
	return sp.Get(ip.position)
}

// step advances the Ip's position by one step of its delta, wrapping
// around the bounding box as needed.
func (ip *Ip) step(sp *space.Space) {
	ip.position = sp.NewPosition(ip.position, ip.delta)
}

func (ip *Ip) reverse() {
	ip.delta = ip.delta.Reverse()
}

// findCommand advances the Ip past any run of spaces and any region
// delimited by a pair of semicolons, stopping on the next cell that is
// neither.
func (ip *Ip) findCommand(sp *space.Space) {
	skip := false

	for {
		switch v := ip.getCurrent(sp); {
		case v == 32:
		case v == 59:
			skip = !skip
		case skip:
		default:
			return
		}

		ip.step(sp)
	}
}

// peekCommand returns the value of the next command in the Ip's path
// without moving it.
func (ip *Ip) peekCommand(sp *space.Space) data.Value {
	orig := ip.position

	ip.step(sp)
	ip.findCommand(sp)
	v := ip.getCurrent(sp)

	ip.position = orig
	return v
}

// skipSpace advances past a run of spaces, used by string mode to
// coalesce a run of spaces into the single one already pushed.
func (ip *Ip) skipSpace(sp *space.Space) {
	for ip.getCurrent(sp) == 32 {
		ip.step(sp)
	}
}

// Tick executes a single instruction and leaves the Ip positioned on
// that instruction's cell; the following tick's own Step is what
// advances past it. In string mode the tick pushes the cell (or leaves
// string mode on '"') instead of executing it.
func (ip *Ip) Tick(ctx *Context) {
	ip.step(ctx.Space)

	if !ip.string {
		ip.findCommand(ctx.Space)
	} else if ip.sawSpace {
		ip.skipSpace(ctx.Space)
	}

	v := ip.getCurrent(ctx.Space)

	if ip.string {
		if v == 34 {
			ip.string = false
		} else {
			ip.stacks.Push(v)
		}
		ip.sawSpace = v == 32
		ctx.Env.DoSleep()
		return
	}

	if r, ok := toRune(v); ok {
		ip.Execute(ctx, r)

		if ctx.onTrace != nil {
			ctx.onTrace(Trace{
				Id:       ip.id,
				Command:  r,
				Position: ip.position,
				Stacks:   ip.stacks.String(),
			})
		}
	} else {
		ip.reverse()
	}

	ctx.Env.DoSleep()
}

func toRune(v data.Value) (rune, bool) {
	if v < 0 || v > utf8.MaxRune {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
