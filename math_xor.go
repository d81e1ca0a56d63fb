// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// xor performs XOR with a single bitmap efficiently
func (rb *Bitmap) xor(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		rb.containers = make([]container, len(other.containers))
		rb.index = make([]uint16, len(other.index))
		for i := range other.containers {
			other.containers[i].Shared = true
		}
		copy(rb.containers, other.containers)
		copy(rb.index, other.index)
		return
	}

	i, j := 0, 0
	var newContainers []container
	var newIndex []uint16

	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			newContainers = append(newContainers, rb.containers[i])
			newIndex = append(newIndex, hi1)
			i++
		case hi1 > hi2:
			other.containers[j].Shared = true
			newContainers = append(newContainers, other.containers[j])
			newIndex = append(newIndex, hi2)
			j++
		default:
			c1 := &rb.containers[i]
			c2 := &other.containers[j]
			if rb.ctrXor(c1, c2) {
				newContainers = append(newContainers, *c1)
				newIndex = append(newIndex, hi1)
			}
			i++
			j++
		}
	}

	for i < len(rb.containers) {
		newContainers = append(newContainers, rb.containers[i])
		newIndex = append(newIndex, rb.index[i])
		i++
	}

	for j < len(other.containers) {
		other.containers[j].Shared = true
		newContainers = append(newContainers, other.containers[j])
		newIndex = append(newIndex, other.index[j])
		j++
	}

	rb.containers = newContainers
	rb.index = newIndex
}

// ctrXor performs efficient XOR between two containers.
func (rb *Bitmap) ctrXor(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return rb.arrXorArr(c1, c2)
		case typeBitmap:
			return rb.arrXorBmp(c1, c2)
		case typeRun:
			return rb.arrXorRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return rb.bmpXorArr(c1, c2)
		case typeBitmap:
			return rb.bmpXorBmp(c1, c2)
		case typeRun:
			return rb.bmpXorRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return rb.runXorArr(c1, c2)
		case typeBitmap:
			return rb.runXorBmp(c1, c2)
		case typeRun:
			return rb.runXorRun(c1, c2)
		}
	}
	return false
}

// arrXorArr performs XOR between two array containers.
func (rb *Bitmap) arrXorArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
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
			out = append(out, bv)
			j++
		}
	}
	for i < len(a) {
		out = append(out, a[i])
		i++
	}
	for j < len(b) {
		out = append(out, b[j])
		j++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	rb.scratch = out
	return c1.Size > 0
}

// arrXorBmp performs XOR between array and bitmap containers.
func (rb *Bitmap) arrXorBmp(c1, c2 *container) bool {
	c1.arrToBmp()
	return rb.bmpXorBmp(c1, c2)
}

// arrXorRun performs XOR between array and run containers.
func (rb *Bitmap) arrXorRun(c1, c2 *container) bool {
	out := rb.scratch[:0]
	nRuns := c2.runCount()

	runIdx := 0
	for _, val := range c1.Data {
		for runIdx < nRuns && c2.runEnd(runIdx) < uint32(val) {
			start, end := uint32(c2.getValue(runIdx)), c2.runEnd(runIdx)
			for v := start; v <= end; v++ {
				out = append(out, uint16(v))
			}
			runIdx++
		}
		if runIdx < nRuns && uint32(val) >= uint32(c2.getValue(runIdx)) && uint32(val) <= c2.runEnd(runIdx) {
			continue
		}
		out = append(out, val)
	}
	for runIdx < nRuns {
		start, end := uint32(c2.getValue(runIdx)), c2.runEnd(runIdx)
		for v := start; v <= end; v++ {
			out = append(out, uint16(v))
		}
		runIdx++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	c1.Type = typeArray
	rb.scratch = out
	return c1.Size > 0
}

// bmpXorArr performs XOR between bitmap and array containers.
func (rb *Bitmap) bmpXorArr(c1, c2 *container) bool {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		} else {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
	return c1.Size > 0
}

// bmpXorBmp performs XOR between two bitmap containers.
func (rb *Bitmap) bmpXorBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return c1.Size > 0
	}

	a.Xor(b)
	c1.Size = uint32(a.Count())
	c1.optimize()
	return c1.Size > 0
}

// bmpXorRun performs XOR between bitmap and run containers.
func (rb *Bitmap) bmpXorRun(c1, c2 *container) bool {
	bmp := c1.bmp()
	n := c2.runCount()
	for i := 0; i < n; i++ {
		start, end := uint32(c2.getValue(i)), c2.runEnd(i)
		for v := start; v <= end; v++ {
			if bmp.Contains(v) {
				bmp.Remove(v)
				c1.Size--
			} else {
				bmp.Set(v)
				c1.Size++
			}
		}
	}
	return c1.Size > 0
}

// runXorArr performs XOR between run and array containers.
func (rb *Bitmap) runXorArr(c1, c2 *container) bool {
	c1.runToArray()
	result := rb.arrXorArr(c1, c2)
	c1.optimize()
	return result
}

// runXorBmp performs XOR between run and bitmap containers.
func (rb *Bitmap) runXorBmp(c1, c2 *container) bool {
	c1.runToBmp()
	return rb.bmpXorBmp(c1, c2)
}

// runXorRun performs XOR between two run containers via a sweep over
// both run lists: non-overlapping runs pass through untouched, and
// overlapping runs are split so the shared sub-range is dropped while
// the two non-shared slivers survive.
func (rb *Bitmap) runXorRun(c1, c2 *container) bool {
	out := rb.scratch[:0]
	n1, n2 := c1.runCount(), c2.runCount()
	i, j := 0, 0
	var size uint32
	var cs1, ce1, cs2, ce2 uint32
	has1, has2 := false, false

loop:
	for {
		if !has1 && i < n1 {
			cs1, ce1 = uint32(c1.getValue(i)), c1.runEnd(i)
			has1 = true
			i++
		}
		if !has2 && j < n2 {
			cs2, ce2 = uint32(c2.getValue(j)), c2.runEnd(j)
			has2 = true
			j++
		}

		switch {
		case !has1 && !has2:
			break loop
		case !has2 || (has1 && ce1 < cs2):
			out = appendRun(out, cs1, ce1)
			size += ce1 - cs1 + 1
			has1 = false
		case !has1 || (has2 && ce2 < cs1):
			out = appendRun(out, cs2, ce2)
			size += ce2 - cs2 + 1
			has2 = false
		default:
			lo, hi := cs1, cs2
			if cs2 < cs1 {
				lo, hi = cs2, cs1
			}
			if lo < hi {
				out = appendRun(out, lo, hi-1)
				size += hi - lo
			}

			commonEnd := ce1
			if ce2 < commonEnd {
				commonEnd = ce2
			}
			if ce1 == commonEnd {
				has1 = false
			} else {
				cs1 = commonEnd + 1
			}
			if ce2 == commonEnd {
				has2 = false
			} else {
				cs2 = commonEnd + 1
			}
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	c1.Type = typeRun
	rb.scratch = out
	c1.optimize()
	return size > 0
}
