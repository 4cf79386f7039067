package program

import (
	"strings"

	"mycon/internal/data"
)

func (ip *Ip) outputDecimal(ctx *Context) {
	if !ctx.Env.WriteDecimal(ip.stacks.Pop()) {
		ip.reverse()
	}
}

func (ip *Ip) outputChar(ctx *Context) {
	v := ip.stacks.Pop()
	r, ok := toRune(v)
	if !ok || !ctx.Env.WriteChar(r) {
		ip.reverse()
	}
}

func (ip *Ip) inputDecimal(ctx *Context) {
	v, ok := ctx.Env.ReadDecimal()
	if !ok {
		ip.reverse()
		return
	}
	ip.stacks.Push(v)
}

func (ip *Ip) inputChar(ctx *Context) {
	r, ok := ctx.Env.ReadChar()
	if !ok {
		ip.reverse()
		return
	}
	ip.stacks.Push(data.Value(r))
}

func (ip *Ip) execute(ctx *Context) {
	cmd, ok := ip.stacks.PopString()
	if !ok {
		ip.reverse()
		return
	}

	code, ok := ctx.Env.Execute(cmd)
	if !ok {
		ip.reverse()
		return
	}
	ip.stacks.Push(code)
}

// readFile implements 'i': loads a file's contents into Funge-Space at
// storage + (x, y), honoring newlines unless flag bit 0 requests
// linear-byte mode. '\r' and NUL are never stored; a space character is
// not stored either, preserving whatever cell was already there.
func (ip *Ip) readFile(ctx *Context) {
	path, ok := ip.stacks.PopString()
	if !ok {
		ip.reverse()
		return
	}
	flag := ip.stacks.Pop()
	y := ip.stacks.Pop()
	x := ip.stacks.Pop()

	content, ok := ctx.Env.ReadFile(path)
	if !ok {
		ip.reverse()
		return
	}

	linear := flag&1 != 0

	var row, col, maxCol data.Value
	for _, r := range content {
		switch {
		case r == '\r' || r == 0:
			continue
		case !linear && r == '\n':
			if col > maxCol {
				maxCol = col
			}
			row++
			col = 0
			continue
		}

		if r != ' ' {
			target := ip.storage.Add(data.Delta{DX: x + col, DY: y + row})
			ctx.Space.Set(target, data.Value(r))
		}
		col++
		if col > maxCol {
			maxCol = col
		}
	}

	height := row
	if len(content) > 0 {
		height++
	}

	ip.stacks.Push(maxCol)
	ip.stacks.Push(height)
	ip.stacks.Push(x)
	ip.stacks.Push(y)
}

// writeFile implements 'o': the inverse of readFile, serializing a
// w x h rectangle of Funge-Space starting at storage + (x, y).
func (ip *Ip) writeFile(ctx *Context) {
	path, ok := ip.stacks.PopString()
	if !ok {
		ip.reverse()
		return
	}
	flag := ip.stacks.Pop()
	y := ip.stacks.Pop()
	x := ip.stacks.Pop()
	h := ip.stacks.Pop()
	w := ip.stacks.Pop()

	var lines []string
	for row := data.Value(0); row < h; row++ {
		var b strings.Builder
		for col := data.Value(0); col < w; col++ {
			v := ctx.Space.Get(ip.storage.Add(data.Delta{DX: x + col, DY: y + row}))
			b.WriteRune(rune(v))
		}
		lines = append(lines, b.String())
	}

	if flag&1 != 0 {
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " ")
		}
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
	}

	if !ctx.Env.WriteFile(path, strings.Join(lines, "\n")) {
		ip.reverse()
	}
}
