package program

import (
	"mycon/internal/data"
	"mycon/internal/env"
	"mycon/internal/space"
)

// Trace is the payload handed to an optional trace hook after every
// executed command, matching the external trace-formatter contract.
type Trace struct {
	Id       data.Value
	Command  rune
	Position data.Point
	Stacks   string
}

type controlKind int

const (
	ctrlAddIp controlKind = iota
	ctrlDeleteIp
	ctrlTerminate
)

type controlResult struct {
	kind  controlKind
	ip    *Ip
	value data.Value
}

// Context is the state of a running program an Ip's instructions may
// read or queue changes against. Instructions never mutate the engine's
// Ip list directly; they append controlResult entries that the engine
// commits exactly once per tick.
type Context struct {
	Space   *space.Space
	Env     *env.Environment
	control []controlResult
	onTrace func(Trace)
}

func (ctx *Context) addIp(ip *Ip) {
	ctx.control = append(ctx.control, controlResult{kind: ctrlAddIp, ip: ip})
}

func (ctx *Context) deleteIp() {
	ctx.control = append(ctx.control, controlResult{kind: ctrlDeleteIp})
}

func (ctx *Context) terminate(v data.Value) {
	ctx.control = append(ctx.control, controlResult{kind: ctrlTerminate, value: v})
}

// Engine schedules a list of Ips round-robin over a shared Space,
// committing each tick's queued control results exactly once.
type Engine struct {
	ctx     *Context
	ips     []*Ip
	current int
	newId   data.Value
	exit    *data.Value
}

// NewEngine creates an Engine over an already-loaded Space, with a
// single Ip at the origin.
func NewEngine(sp *space.Space, environment *env.Environment) *Engine {
	return &Engine{
		ctx:   &Context{Space: sp, Env: environment},
		ips:   []*Ip{NewIp()},
		newId: 1,
	}
}

// Read creates an Engine from program source text.
func Read(code string, environment *env.Environment) *Engine {
	return NewEngine(space.Read(code), environment)
}

// OnTrace installs a hook invoked with a Trace after every executed
// command, used by the CLI's -t/--trace option.
func (e *Engine) OnTrace(fn func(Trace)) {
	e.ctx.onTrace = fn
}

// ExitStatus reports the program's exit value once it has terminated.
func (e *Engine) ExitStatus() (data.Value, bool) {
	if e.exit == nil {
		return 0, false
	}
	return *e.exit, true
}

// StepSingle executes the current Ip's tick and commits its effects.
func (e *Engine) StepSingle() {
	ip := e.ips[e.current]
	ip.Tick(e.ctx)
	e.commitChanges()
}

// StepAll advances every currently active Ip by one tick.
func (e *Engine) StepAll() {
	if len(e.ips) == 0 {
		return
	}
	now := e.current

	for {
		e.StepSingle()

		if e.exit != nil || len(e.ips) == 0 || e.current == now {
			break
		}
	}
}

// Run executes the program to completion and returns its exit value.
func (e *Engine) Run() data.Value {
	for {
		e.StepAll()

		if e.exit != nil {
			return *e.exit
		}
	}
}

// commitChanges drains the Context's queued control results: new Ips
// are assigned an id and inserted immediately before the current index
// (so each one's first tick comes just before the spawning Ip's next
// one); a delete removes the current Ip; a terminate
// records the exit value. The current index is then advanced exactly
// once, by a signed offset that accounts for every insertion/removal.
func (e *Engine) commitChanges() {
	offset := 1

	for _, cr := range e.ctx.control {
		switch cr.kind {
		case ctrlAddIp:
			cr.ip.id = e.newId
			e.newId++

			e.ips = append(e.ips[:e.current:e.current], append([]*Ip{cr.ip}, e.ips[e.current:]...)...)
			offset++
		case ctrlDeleteIp:
			e.ips = append(e.ips[:e.current], e.ips[e.current+1:]...)
			offset--
		case ctrlTerminate:
			v := cr.value
			e.exit = &v
		}
	}

	e.ctx.control = e.ctx.control[:0]

	if len(e.ips) == 0 {
		if e.exit == nil {
			zero := data.Value(0)
			e.exit = &zero
		}
		return
	}

	n := len(e.ips)
	e.current = ((e.current+n+offset)%n + n) % n
}
