package program

import "mycon/internal/data"

// Arithmetic and logic instructions. All binary operators pop b then a
// and push the result; wrapping is implicit in Go's int32 semantics.
// Division and modulo by zero push 0 rather than erroring.

func (ip *Ip) pushDigit(n data.Value) {
	ip.stacks.Push(n)
}

func (ip *Ip) add() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	ip.stacks.Push(a + b)
}

func (ip *Ip) sub() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	ip.stacks.Push(a - b)
}

func (ip *Ip) mul() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	ip.stacks.Push(a * b)
}

func (ip *Ip) div() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	if b == 0 {
		ip.stacks.Push(0)
		return
	}
	ip.stacks.Push(a / b)
}

func (ip *Ip) rem() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	if b == 0 {
		ip.stacks.Push(0)
		return
	}
	ip.stacks.Push(a % b)
}

func (ip *Ip) not() {
	if ip.stacks.Pop() == 0 {
		ip.stacks.Push(1)
	} else {
		ip.stacks.Push(0)
	}
}

func (ip *Ip) greaterThan() {
	b, a := ip.stacks.Pop(), ip.stacks.Pop()
	if a > b {
		ip.stacks.Push(1)
	} else {
		ip.stacks.Push(0)
	}
}
