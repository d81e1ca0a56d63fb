// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// and performs AND with a single bitmap efficiently
func (rb *Bitmap) and(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		rb.Clear()
		return
	case len(rb.containers) == 0:
		return
	}

	var drop []int
	for i := range rb.containers {
		c1 := &rb.containers[i]
		idx, exists := find16(other.index, rb.index[i])
		switch {
		case !exists:
			drop = append(drop, i)
		case !rb.ctrAnd(c1, &other.containers[idx]):
			drop = append(drop, i)
		}
	}

	for i := len(drop) - 1; i >= 0; i-- {
		rb.ctrDel(drop[i])
	}
}

// ctrAnd performs efficient AND between two containers, dispatching on
// the 3x3 matrix of variant pairs rather than through a second layer of
// interface indirection.
func (rb *Bitmap) ctrAnd(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return rb.arrAndArr(c1, c2)
		case typeBitmap:
			return rb.arrAndBmp(c1, c2)
		case typeRun:
			return rb.arrAndRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return rb.bmpAndArr(c1, c2)
		case typeBitmap:
			return rb.bmpAndBmp(c1, c2)
		case typeRun:
			return rb.bmpAndRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return rb.runAndArr(c1, c2)
		case typeBitmap:
			return rb.runAndBmp(c1, c2)
		case typeRun:
			return rb.runAndRun(c1, c2)
		}
	}
	return false
}

// arrAndArr performs AND between two array containers.
func (rb *Bitmap) arrAndArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			a[k] = av
			k++
			i++
			j++
		case av < bv:
			i++
		default:
			j++
		}
	}

	c1.Data = a[:k]
	c1.Size = uint32(len(c1.Data))
	return c1.Size > 0
}

// arrAndBmp performs AND between array and bitmap containers.
func (rb *Bitmap) arrAndBmp(c1, c2 *container) bool {
	a, b := c1.Data, c2.bmp()
	out := a[:0]

	for _, val := range a {
		if b.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// arrAndRun performs AND between array and run containers, scanning the
// sorted array alongside the (value, length) runs in lockstep.
func (rb *Bitmap) arrAndRun(c1, c2 *container) bool {
	a := c1.Data
	out := a[:0]
	i, nRuns := 0, c2.runCount()

	for j := 0; j < nRuns && i < len(a); j++ {
		start, end := uint32(c2.getValue(j)), c2.runEnd(j)
		if useGalloping {
			i = advanceUntil(a, i, uint16(start))
		} else {
			for i < len(a) && uint32(a[i]) < start {
				i++
			}
		}
		for i < len(a) && uint32(a[i]) <= end {
			out = append(out, a[i])
			i++
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// bmpAndArr performs AND between bitmap and array containers.
func (rb *Bitmap) bmpAndArr(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.Data
	out := rb.scratch[:0]

	for _, val := range b {
		if a.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	c1.Type = typeArray
	rb.scratch = out
	return c1.Size > 0
}

// bmpAndBmp performs AND between two bitmap containers.
func (rb *Bitmap) bmpAndBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if a == nil || b == nil {
		return false
	}

	a.And(b)
	c1.Size = uint32(a.Count())
	c1.optimize()
	return c1.Size > 0
}

// bmpAndRun performs AND between bitmap and run containers. When the run
// side's cardinality is small the runs are walked directly and probed
// against the bitmap; otherwise every range of c1's own bitmap outside
// the runs is zeroed in place.
func (rb *Bitmap) bmpAndRun(c1, c2 *container) bool {
	if int(c2.Size) <= arrayMax {
		bmp := c1.bmp()
		out := rb.scratch[:0]
		n := c2.runCount()
		for i := 0; i < n; i++ {
			start, end := uint32(c2.getValue(i)), c2.runEnd(i)
			for x := start; x <= end; x++ {
				if bmp.Contains(x) {
					out = append(out, uint16(x))
				}
			}
		}
		c1.Data = append(c1.Data[:0], out...)
		c1.Size = uint32(len(out))
		c1.Type = typeArray
		rb.scratch = out
		return c1.Size > 0
	}

	words := c1.bmpWords()
	cursor := uint32(0)
	n := c2.runCount()
	for i := 0; i < n; i++ {
		start, end := uint32(c2.getValue(i)), c2.runEnd(i)
		resetBitmapRange(words, cursor, start)
		cursor = end + 1
	}
	resetBitmapRange(words, cursor, 65536)

	c1.Size = uint32(popcountAll(words))
	return c1.Size > 0
}

// runAndArr performs AND between run and array containers.
func (rb *Bitmap) runAndArr(c1, c2 *container) bool {
	b := c2.Data
	out := rb.scratch[:0]
	j, n := 0, c1.runCount()

	for i := 0; i < n && j < len(b); i++ {
		start, end := uint32(c1.getValue(i)), c1.runEnd(i)
		for j < len(b) && uint32(b[j]) < start {
			j++
		}
		for j < len(b) && uint32(b[j]) <= end {
			out = append(out, b[j])
			j++
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(out))
	c1.Type = typeArray
	rb.scratch = out
	return c1.Size > 0
}

// runAndRun performs AND between two run containers via a two-pointer
// interval intersection: the smaller of each pair's end advances.
func (rb *Bitmap) runAndRun(c1, c2 *container) bool {
	out := rb.scratch[:0]
	i, j := 0, 0
	n1, n2 := c1.runCount(), c2.runCount()
	size := uint32(0)

	for i < n1 && j < n2 {
		s1, e1 := uint32(c1.getValue(i)), c1.runEnd(i)
		s2, e2 := uint32(c2.getValue(j)), c2.runEnd(j)

		is, ie := s1, e1
		if s2 > is {
			is = s2
		}
		if e2 < ie {
			ie = e2
		}
		if is <= ie {
			out = appendRun(out, is, ie)
			size += ie - is + 1
		}

		switch {
		case e1 < e2:
			i++
		case e2 < e1:
			j++
		default:
			i++
			j++
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
	c1.optimize()
	return size > 0
}

// runAndBmp performs AND between run and bitmap containers, mirroring
// bmpAndRun's two strategies with the operands swapped.
func (rb *Bitmap) runAndBmp(c1, c2 *container) bool {
	bmp := c2.bmp()
	if int(c1.Size) <= arrayMax {
		out := rb.scratch[:0]
		n := c1.runCount()
		for i := 0; i < n; i++ {
			start, end := uint32(c1.getValue(i)), c1.runEnd(i)
			for x := start; x <= end; x++ {
				if bmp.Contains(x) {
					out = append(out, uint16(x))
				}
			}
		}
		c1.Data = append(c1.Data[:0], out...)
		c1.Size = uint32(len(out))
		c1.Type = typeArray
		rb.scratch = out
		return c1.Size > 0
	}

	dst := c1.runToTemporaryBitmap()
	for w := range dst {
		dst[w] &= bmp[w]
	}
	c1.Data = asUint16s(dst)
	c1.Type = typeBitmap
	c1.Size = uint32(popcountAll(dst))
	return c1.Size > 0
}
