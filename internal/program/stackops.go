package program

import (
	"mycon/internal/data"
	"mycon/internal/space"
)

func (ip *Ip) discard() { ip.stacks.Pop() }

func (ip *Ip) duplicate() {
	v := ip.stacks.Pop()
	ip.stacks.Push(v)
	ip.stacks.Push(v)
}

func (ip *Ip) swap() {
	v := ip.stacks.Pop()
	w := ip.stacks.Pop()
	ip.stacks.Push(v)
	ip.stacks.Push(w)
}

func (ip *Ip) clear() { ip.stacks.Clear() }

func (ip *Ip) stringMode() {
	ip.string = true
	ip.sawSpace = false
}

// beginBlock implements '{'.
func (ip *Ip) beginBlock() {
	n := ip.stacks.Pop()
	ip.stacks.CreateStack(n, ip.storage)
	ip.storage = ip.position.Add(ip.delta)
}

// endBlock implements '}'. Reflects instead of panicking when only one
// stack remains, per the documented error-handling policy.
func (ip *Ip) endBlock() {
	if ip.stacks.Single() {
		ip.reverse()
		return
	}

	n := ip.stacks.Pop()
	ip.storage = ip.stacks.DeleteStack(n)
}

// transferElements implements 'u'. Reflects rather than panicking when
// only one stack remains.
func (ip *Ip) transferElements() {
	if ip.stacks.Single() {
		ip.reverse()
		return
	}

	n := ip.stacks.Pop()
	ip.stacks.TransferElements(n)
}

func (ip *Ip) get(sp *space.Space) {
	y, x := ip.stacks.Pop(), ip.stacks.Pop()
	v := sp.Get(ip.storage.Add(data.Delta{DX: x, DY: y}))
	ip.stacks.Push(v)
}

func (ip *Ip) put(sp *space.Space) {
	y, x := ip.stacks.Pop(), ip.stacks.Pop()
	v := ip.stacks.Pop()
	sp.Set(ip.storage.Add(data.Delta{DX: x, DY: y}), v)
}

// fetchChar implements '\'': reads the literal next cell (bypassing the
// ordinary comment/space-skipping scan) and pushes it, then advances
// onto it so the following tick's Step moves past it untouched.
func (ip *Ip) fetchChar(sp *space.Space) {
	target := ip.position.Add(ip.delta)
	ip.stacks.Push(sp.Get(target))
	ip.position = target
}

// storeChar implements 's': the write-side counterpart of fetchChar.
func (ip *Ip) storeChar(sp *space.Space) {
	target := ip.position.Add(ip.delta)
	sp.Set(target, ip.stacks.Pop())
	ip.position = target
}
