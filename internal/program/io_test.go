package program

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mycon/internal/data"
	"mycon/internal/env"
	"mycon/internal/space"
)

func newIOContext(input string) (*Context, *bytes.Buffer) {
	var out bytes.Buffer
	e := env.New().WithOutput(&out).WithInput(strings.NewReader(input))
	return &Context{Space: space.New(), Env: e}, &out
}

func TestOutputDecimalHasTrailingSpace(t *testing.T) {
	ctx, out := newIOContext("")
	ip := NewIp()
	ip.stacks.Push(7)

	ip.outputDecimal(ctx)

	if out.String() != "7 " {
		t.Fatalf("got %q", out.String())
	}
}

func TestOutputCharRejectsOutOfRangeValue(t *testing.T) {
	ctx, _ := newIOContext("")
	ip := NewIp()
	ip.stacks.Push(-1)

	ip.outputChar(ctx)

	if ip.delta != data.East.Reverse() {
		t.Fatalf("outputChar with an invalid code point must reflect")
	}
}

func TestInputDecimalReadsFromBufferedLine(t *testing.T) {
	ctx, _ := newIOContext("123\n")
	ip := NewIp()

	ip.inputDecimal(ctx)

	if got := ip.stacks.Pop(); got != 123 {
		t.Fatalf("got %d, want 123", got)
	}
}

func TestInputCharReadsOneCodePoint(t *testing.T) {
	ctx, _ := newIOContext("Q")
	ip := NewIp()

	ip.inputChar(ctx)

	if got := ip.stacks.Pop(); got != 'Q' {
		t.Fatalf("got %q, want 'Q'", rune(got))
	}
}

func TestExecuteDeniedReflects(t *testing.T) {
	var out bytes.Buffer
	e := env.New().WithOutput(&out).WithInput(strings.NewReader("")).WithExecAction(env.ExecActionDeny)
	ctx := &Context{Space: space.New(), Env: e}
	ip := NewIp()
	ip.stacks.PushString("true")

	ip.execute(ctx)

	if ip.delta != data.East.Reverse() {
		t.Fatalf("execute with ExecActionDeny must reflect")
	}
}

func TestWriteFileThenReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	ctx, _ := newIOContext("")
	ip := NewIp()

	// Write a 2x2 block of 'A' at storage+(0,0): pushed as w h x y flag path.
	ip.storage = data.Point{}
	ctx.Space.Set(data.Point{X: 0, Y: 0}, 'A')
	ctx.Space.Set(data.Point{X: 1, Y: 0}, 'A')
	ctx.Space.Set(data.Point{X: 0, Y: 1}, 'A')
	ctx.Space.Set(data.Point{X: 1, Y: 1}, 'A')

	ip.stacks.Push(2) // w
	ip.stacks.Push(2) // h
	ip.stacks.Push(0) // x
	ip.stacks.Push(0) // y
	ip.stacks.Push(0) // flag (newline-honoring)
	ip.stacks.PushString(path)

	ip.writeFile(ctx)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("writeFile did not create %s: %v", path, err)
	}
	if string(got) != "AA\nAA" {
		t.Fatalf("got %q", string(got))
	}

	// Now read it back into a fresh region at storage+(5,5), with storage
	// itself at (5,5): the block lands at (10,10).
	ip2 := NewIp()
	ip2.storage = data.Point{X: 5, Y: 5}
	ip2.stacks.Push(5) // x
	ip2.stacks.Push(5) // y
	ip2.stacks.Push(0) // flag
	ip2.stacks.PushString(path)

	ip2.readFile(ctx)

	if v := ctx.Space.Get(data.Point{X: 10, Y: 10}); v != 'A' {
		t.Fatalf("readFile did not populate (10,10), got %q", rune(v))
	}
	if v := ctx.Space.Get(data.Point{X: 11, Y: 11}); v != 'A' {
		t.Fatalf("readFile did not populate (11,11), got %q", rune(v))
	}
}
