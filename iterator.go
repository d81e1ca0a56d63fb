// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// containerIterator walks the members of a container in ascending order.
// It is read-only: containers may not be mutated through an iterator,
// matching the contract a caller gets for free from a value-returning
// cursor rather than a pointer into live storage.
type containerIterator struct {
	c       *container
	runIdx  int // current run, for typeRun
	runOff  int // offset within the current run, for typeRun
	wordIdx int // current word, for typeBitmap
	word    uint64
	pos     int // current index, for typeArray
}

// iterator returns a forward cursor over this container's members.
func (c *container) iterator() *containerIterator {
	it := &containerIterator{c: c}
	if c.Type == typeBitmap {
		words := c.bmpWords()
		if len(words) > 0 {
			it.word = words[0]
		}
	}
	return it
}

// hasNext reports whether a further call to next will succeed.
func (it *containerIterator) hasNext() bool {
	c := it.c
	switch c.Type {
	case typeArray:
		return it.pos < len(c.Data)
	case typeBitmap:
		words := c.bmpWords()
		for it.word == 0 {
			it.wordIdx++
			if it.wordIdx >= len(words) {
				return false
			}
			it.word = words[it.wordIdx]
		}
		return true
	case typeRun:
		return it.runIdx < c.runCount()
	}
	return false
}

// next returns the next member in ascending order. Callers must guard
// with hasNext; next does not itself return an error for exhaustion,
// matching the cursor contract used by limit/equals.
func (it *containerIterator) next() uint16 {
	c := it.c
	switch c.Type {
	case typeArray:
		v := c.Data[it.pos]
		it.pos++
		return v
	case typeBitmap:
		bit := trailingZeros64(it.word)
		it.word &= it.word - 1
		return uint16(it.wordIdx*64 + bit)
	case typeRun:
		v := c.getValue(it.runIdx) + uint16(it.runOff)
		if it.runOff == int(c.getLength(it.runIdx)) {
			it.runOff = 0
			it.runIdx++
		} else {
			it.runOff++
		}
		return v
	}
	return 0
}

// clone returns an independent copy of this cursor at its current
// position, so a caller can fork a traversal without disturbing the
// original (spec: iterators are cloneable).
func (it *containerIterator) clone() *containerIterator {
	cp := *it
	return &cp
}

// remove is the iterator's only mutating operation, and it is
// unsupported: containers may not be mutated through an iterator, so
// this always fails rather than mutating storage or panicking.
func (it *containerIterator) remove() error {
	return ErrIteratorMutation
}

// reverseContainerIterator walks a container's members in descending order.
type reverseContainerIterator struct {
	c       *container
	runIdx  int
	runOff  int
	wordIdx int
	word    uint64
	pos     int
}

func (c *container) reverseIterator() *reverseContainerIterator {
	it := &reverseContainerIterator{c: c, pos: len(c.Data) - 1}
	switch c.Type {
	case typeBitmap:
		words := c.bmpWords()
		it.wordIdx = len(words) - 1
		if it.wordIdx >= 0 {
			it.word = words[it.wordIdx]
		}
	case typeRun:
		it.runIdx = c.runCount() - 1
		if it.runIdx >= 0 {
			it.runOff = int(c.getLength(it.runIdx))
		}
	}
	return it
}

func (it *reverseContainerIterator) hasNext() bool {
	c := it.c
	switch c.Type {
	case typeArray:
		return it.pos >= 0
	case typeBitmap:
		for it.word == 0 {
			it.wordIdx--
			if it.wordIdx < 0 {
				return false
			}
			it.word = c.bmpWords()[it.wordIdx]
		}
		return true
	case typeRun:
		return it.runIdx >= 0
	}
	return false
}

func (it *reverseContainerIterator) next() uint16 {
	c := it.c
	switch c.Type {
	case typeArray:
		v := c.Data[it.pos]
		it.pos--
		return v
	case typeBitmap:
		bit := 63 - leadingZeros64(it.word)
		it.word &^= 1 << uint(bit)
		return uint16(it.wordIdx*64 + bit)
	case typeRun:
		v := c.getValue(it.runIdx) + uint16(it.runOff)
		if it.runOff == 0 {
			it.runIdx--
			if it.runIdx >= 0 {
				it.runOff = int(c.getLength(it.runIdx))
			}
		} else {
			it.runOff--
		}
		return v
	}
	return 0
}

// clone returns an independent copy of this cursor at its current
// position (spec: iterators are cloneable).
func (it *reverseContainerIterator) clone() *reverseContainerIterator {
	cp := *it
	return &cp
}

// remove is unsupported: mutation through a reverse iterator always
// fails rather than mutating storage or panicking.
func (it *reverseContainerIterator) remove() error {
	return ErrIteratorMutation
}
