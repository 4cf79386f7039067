package program

import (
	"time"

	"mycon/internal/data"
)

// handprint identifies this interpreter in sysinfo output: "JGMY" packed
// big-endian into a 32-bit cell.
const handprint = data.Value(0x4A474D59)

const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

// sysinfo implements 'y'. It captures the pre-push stack-stack shape,
// pushes the full 21-item system information vector, then (if
// the popped n was positive) collapses the whole block down to its
// n-th cell from the top.
func (ip *Ip) sysinfo(ctx *Context) {
	n := ip.stacks.Pop()
	sizes := ip.stacks.Sizes()

	count := 0
	push := func(v data.Value) {
		ip.stacks.Push(v)
		count++
	}
	pushString := func(s string) {
		count += ip.stacks.PushString(s)
	}

	minX, minY := ctx.Space.Min()
	maxX, maxY := ctx.Space.Max()
	now := time.Now()

	push(ctx.Env.Flags())
	push(4)
	push(handprint)
	push(packVersion(versionMajor, versionMinor, versionPatch))
	push(ctx.Env.OperatingParadigm())
	push('/')
	push(2)
	push(0)
	push(ip.id)
	push(ip.position.X)
	push(ip.position.Y)
	push(ip.delta.DX)
	push(ip.delta.DY)
	push(ip.storage.X)
	push(ip.storage.Y)
	push(minX)
	push(minY)
	push(maxX - minX)
	push(maxY - minY)
	push(dateValue(now))
	push(timeValue(now))
	push(data.Value(len(sizes)))
	for _, sz := range sizes {
		push(data.Value(sz))
	}

	args := ctx.Env.CmdArgs()
	for _, a := range args {
		pushString(a)
	}
	push(0)
	push(0)

	for _, kv := range ctx.Env.EnvVars() {
		pushString(kv)
	}
	push(0)

	if n > 0 {
		v := ip.stacks.Nth(int(n))
		ip.stacks.DeleteCells(count)
		ip.stacks.Push(v)
	}
}

func packVersion(major, minor, patch byte) data.Value {
	return data.Value(major)<<16 | data.Value(minor)<<8 | data.Value(patch)
}

func dateValue(t time.Time) data.Value {
	return data.Value(t.Year()-1900)<<16 | data.Value(t.Month())<<8 | data.Value(t.Day())
}

func timeValue(t time.Time) data.Value {
	return data.Value(t.Hour())<<16 | data.Value(t.Minute())<<8 | data.Value(t.Second())
}
