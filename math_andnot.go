// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// andNot performs AND NOT with a single bitmap efficiently
func (rb *Bitmap) andNot(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
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
			continue
		case !rb.ctrAndNot(c1, &other.containers[idx]):
			drop = append(drop, i)
		}
	}

	for i := len(drop) - 1; i >= 0; i-- {
		rb.ctrDel(drop[i])
	}
}

// ctrAndNot performs efficient AND NOT between two containers.
func (rb *Bitmap) ctrAndNot(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return rb.arrAndNotArr(c1, c2)
		case typeBitmap:
			return rb.arrAndNotBmp(c1, c2)
		case typeRun:
			return rb.arrAndNotRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return rb.bmpAndNotArr(c1, c2)
		case typeBitmap:
			return rb.bmpAndNotBmp(c1, c2)
		case typeRun:
			return rb.bmpAndNotRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return rb.runAndNotArr(c1, c2)
		case typeBitmap:
			return rb.runAndNotBmp(c1, c2)
		case typeRun:
			return rb.runAndNotRun(c1, c2)
		}
	}
	return false
}

// arrAndNotArr performs AND NOT between two array containers.
func (rb *Bitmap) arrAndNotArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	out := a[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			i++
			j++
		case av < bv:
			out = append(out, av)
			i++
		default:
			j++
		}
	}
	for i < len(a) {
		out = append(out, a[i])
		i++
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// arrAndNotBmp performs AND NOT between array and bitmap containers.
func (rb *Bitmap) arrAndNotBmp(c1, c2 *container) bool {
	a, b := c1.Data, c2.bmp()
	out := a[:0]

	for _, val := range a {
		if !b.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// arrAndNotRun performs AND NOT between array and run containers.
func (rb *Bitmap) arrAndNotRun(c1, c2 *container) bool {
	a := c1.Data
	out := a[:0]
	nRuns := c2.runCount()

	for _, val := range a {
		inRun := false
		for i := 0; i < nRuns; i++ {
			if uint32(val) >= uint32(c2.getValue(i)) && uint32(val) <= c2.runEnd(i) {
				inRun = true
				break
			}
		}
		if !inRun {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// bmpAndNotArr performs AND NOT between bitmap and array containers.
func (rb *Bitmap) bmpAndNotArr(c1, c2 *container) bool {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		}
	}
	return c1.Size > 0
}

// bmpAndNotBmp performs AND NOT between two bitmap containers.
func (rb *Bitmap) bmpAndNotBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return c1.Size > 0
	}

	a.AndNot(b)
	c1.Size = uint32(a.Count())
	c1.optimize()
	return c1.Size > 0
}

// bmpAndNotRun performs AND NOT between bitmap and run containers.
func (rb *Bitmap) bmpAndNotRun(c1, c2 *container) bool {
	bmp := c1.bmp()
	n := c2.runCount()

	for i := 0; i < n; i++ {
		start, end := uint32(c2.getValue(i)), c2.runEnd(i)
		for v := start; v <= end; v++ {
			if bmp.Contains(v) {
				bmp.Remove(v)
				c1.Size--
			}
		}
	}
	return c1.Size > 0
}

// runAndNotArr performs AND NOT between run and array containers: each
// run has the array's members falling inside it carved out, splitting
// the run into up to two surviving slivers.
func (rb *Bitmap) runAndNotArr(c1, c2 *container) bool {
	arr := c2.Data
	out := rb.scratch[:0]
	size := uint32(0)
	n := c1.runCount()

	for i := 0; i < n; i++ {
		start, end := uint32(c1.getValue(i)), c1.runEnd(i)
		cur := start

		for _, val := range arr {
			v := uint32(val)
			if v < cur || v > end {
				continue
			}
			if cur < v {
				out = appendRun(out, cur, v-1)
				size += v - cur
			}
			cur = v + 1
		}
		if cur <= end {
			out = appendRun(out, cur, end)
			size += end - cur + 1
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
	c1.optimize()
	return size > 0
}

// runAndNotBmp performs AND NOT between run and bitmap containers.
func (rb *Bitmap) runAndNotBmp(c1, c2 *container) bool {
	bmp := c2.bmp()
	out := rb.scratch[:0]
	size := uint32(0)
	n := c1.runCount()

	for i := 0; i < n; i++ {
		start, end := uint32(c1.getValue(i)), c1.runEnd(i)
		cur := start
		for v := start; v <= end; v++ {
			if bmp.Contains(v) {
				if cur < v {
					out = appendRun(out, cur, v-1)
					size += v - cur
				}
				cur = v + 1
			}
		}
		if cur <= end {
			out = appendRun(out, cur, end)
			size += end - cur + 1
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
	c1.optimize()
	return size > 0
}

// runAndNotRun performs AND NOT between two run containers: every run
// in c1 is walked against the overlapping runs in c2 (a persistent
// cursor since both run lists are sorted and non-overlapping), and
// whatever isn't covered by c2 survives as a sliver of the original run.
func (rb *Bitmap) runAndNotRun(c1, c2 *container) bool {
	out := rb.scratch[:0]
	size := uint32(0)
	n1, n2 := c1.runCount(), c2.runCount()
	j := 0

	for i := 0; i < n1; i++ {
		start, end := uint32(c1.getValue(i)), c1.runEnd(i)
		cur := start

		for j < n2 {
			s2, e2 := uint32(c2.getValue(j)), c2.runEnd(j)
			if e2 < cur {
				j++
				continue
			}
			if s2 > end {
				break
			}
			if s2 > cur {
				out = appendRun(out, cur, s2-1)
				size += s2 - cur
			}
			if e2 >= end {
				cur = end + 1
				break
			}
			cur = e2 + 1
			j++
		}
		if cur <= end {
			out = appendRun(out, cur, end)
			size += end - cur + 1
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
	c1.optimize()
	return size > 0
}
