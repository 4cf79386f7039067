// Package stack implements the Funge-98 stack-stack: a non-empty
// sequence of value stacks with the {, }, and u block operations.
package stack

import (
	"fmt"
	"strings"

	"mycon/internal/data"
)

// Stack is a single ordered sequence of values, growing at the end.
type Stack []data.Value

// StackStack is a non-empty sequence of Stacks; all operations other
// than the block instructions act on the top stack.
type StackStack struct {
	stacks []Stack
}

// New creates a StackStack containing a single empty stack.
func New() *StackStack {
	return &StackStack{stacks: []Stack{{}}}
}

// Clone returns a deep copy, so that mutations to one (via push, pop,
// or the block instructions) never alias the other's backing arrays.
// Used by the 't' instruction to split off an independent Ip.
func (ss *StackStack) Clone() *StackStack {
	stacks := make([]Stack, len(ss.stacks))
	for i, s := range ss.stacks {
		stacks[i] = append(Stack(nil), s...)
	}
	return &StackStack{stacks: stacks}
}

func (ss *StackStack) top() *Stack {
	return &ss.stacks[len(ss.stacks)-1]
}

// Push pushes v onto the top stack.
func (ss *StackStack) Push(v data.Value) {
	top := ss.top()
	*top = append(*top, v)
}

// Pop removes and returns the top value of the top stack, or 0 if it is
// empty. Popping from an empty stack is never an error in Funge-98.
func (ss *StackStack) Pop() data.Value {
	top := ss.top()
	n := len(*top)
	if n == 0 {
		return 0
	}
	v := (*top)[n-1]
	*top = (*top)[:n-1]
	return v
}

// Clear empties the top stack only.
func (ss *StackStack) Clear() {
	*ss.top() = (*ss.top())[:0]
}

// Nth peeks the k-th value from the top of the top stack (k=1 is the
// top itself); 0 if k is out of range.
func (ss *StackStack) Nth(k int) data.Value {
	top := *ss.top()
	idx := len(top) - k
	if k < 1 || idx < 0 {
		return 0
	}
	return top[idx]
}

// PushString pushes a 0 terminator, then each rune of s in reverse so
// that the first character of s ends up on top. It returns the number
// of cells pushed, len(runes)+1.
func (ss *StackStack) PushString(s string) int {
	runes := []rune(s)
	ss.Push(0)
	for i := len(runes) - 1; i >= 0; i-- {
		ss.Push(data.Value(runes[i]))
	}
	return len(runes) + 1
}

// PopString pops runes until a 0 terminator, returning the assembled
// string and true, or false if any popped value is not a valid code
// point.
func (ss *StackStack) PopString() (string, bool) {
	var runes []rune
	for {
		v := ss.Pop()
		if v == 0 {
			break
		}
		if v < 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
			return "", false
		}
		runes = append(runes, rune(v))
	}
	return string(runes), true
}

// String renders every stack bottom-first, each as its values
// top-to-bottom, for trace output.
func (ss *StackStack) String() string {
	var b strings.Builder
	for i, s := range ss.stacks {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteByte('[')
		for j := len(s) - 1; j >= 0; j-- {
			if j != len(s)-1 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", s[j])
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Sizes returns the length of each stack, bottom-first.
func (ss *StackStack) Sizes() []int {
	sizes := make([]int, len(ss.stacks))
	for i, s := range ss.stacks {
		sizes[i] = len(s)
	}
	return sizes
}

// DeleteCells removes the top n cells from the top stack. The caller
// must ensure n does not exceed the stack's size.
func (ss *StackStack) DeleteCells(n int) {
	top := ss.top()
	if n > len(*top) {
		panic(fmt.Sprintf("stack: DeleteCells(%d) exceeds size %d", n, len(*top)))
	}
	*top = (*top)[:len(*top)-n]
}

// Single reports whether exactly one stack is present.
func (ss *StackStack) Single() bool {
	return len(ss.stacks) == 1
}

// CreateStack implements '{': pushes a new empty stack, transferring n
// elements (or padding/discarding per Funge-98 semantics) from the
// previous top, then stashes the given storage offset on what is now
// the second-from-top stack.
func (ss *StackStack) CreateStack(n int32, storage data.Point) {
	old := ss.top()
	transferred := transferOut(old, n)

	ss.stacks = append(ss.stacks, Stack{})
	ss.top().append(transferred...)

	second := &ss.stacks[len(ss.stacks)-2]
	*second = append(*second, storage.X, storage.Y)
}

// transferOut removes the top elements that are to move to a newly
// created stack, following the same rules '{' and '}' share: a
// positive n moves min(n, len(old)) values (in original order), padding
// the front with zeros if n exceeds the available count; a negative n
// instead pushes |n| zeros onto what remains of old.
func transferOut(old *Stack, n int32) Stack {
	if n == 0 {
		return nil
	}

	if n < 0 {
		pad := make(Stack, -n)
		*old = append(*old, pad...)
		return nil
	}

	count := int(n)
	avail := len(*old)
	take := count
	if take > avail {
		take = avail
	}

	moved := make(Stack, 0, count)
	if pad := count - take; pad > 0 {
		moved = append(moved, make(Stack, pad)...)
	}
	moved = append(moved, (*old)[avail-take:]...)
	*old = (*old)[:avail-take]

	return moved
}

func (s *Stack) append(vs ...data.Value) {
	*s = append(*s, vs...)
}

// DeleteStack implements '}': discards the top stack, restoring the
// storage offset from what is now the top stack and transferring n
// elements back symmetrically to CreateStack. Panics if only one stack
// remains; callers must reflect instead of calling this when Single()
// is true.
func (ss *StackStack) DeleteStack(n int32) data.Point {
	if ss.Single() {
		panic("stack: DeleteStack called with a single stack present")
	}

	discarded := ss.stacks[len(ss.stacks)-1]
	ss.stacks = ss.stacks[:len(ss.stacks)-1]

	below := ss.top()
	y := popTail(below)
	x := popTail(below)

	transferIn(below, discarded, n)

	return data.Point{X: x, Y: y}
}

func popTail(s *Stack) data.Value {
	n := len(*s)
	if n == 0 {
		return 0
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v
}

// transferIn moves values from discarded onto dest, following the
// inverse of transferOut: positive n moves min(n, len(discarded))
// values preserving order (padding with zeros if short); negative n
// drops |n| values from dest instead (or pads with zeros if dest is
// shorter than that).
func transferIn(dest *Stack, discarded Stack, n int32) {
	if n == 0 {
		return
	}

	if n < 0 {
		drop := int(-n)
		if drop > len(*dest) {
			pad := drop - len(*dest)
			*dest = (*dest)[:0]
			*dest = append(*dest, make(Stack, pad)...)
			return
		}
		*dest = (*dest)[:len(*dest)-drop]
		return
	}

	count := int(n)
	avail := len(discarded)
	take := count
	if take > avail {
		take = avail
	}

	if pad := count - take; pad > 0 {
		*dest = append(*dest, make(Stack, pad)...)
	}
	*dest = append(*dest, discarded[avail-take:]...)
}

// TransferElements implements 'u': moves n values between the top and
// second-from-top stacks, reversing direction for negative n. Must not
// be called when Single() is true.
func (ss *StackStack) TransferElements(n int32) {
	if ss.Single() {
		panic("stack: TransferElements called with a single stack present")
	}

	top := ss.top()
	second := &ss.stacks[len(ss.stacks)-2]

	from, to := top, second
	count := n
	if count < 0 {
		from, to = second, top
		count = -count
	}

	for i := int32(0); i < count; i++ {
		v := popTail(from)
		*to = append(*to, v)
	}
}
