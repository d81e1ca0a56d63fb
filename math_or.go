// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// or performs OR with a single bitmap efficiently
func (rb *Bitmap) or(other *Bitmap) {
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
			rb.ctrOr(c1, c2)
			newContainers = append(newContainers, *c1)
			newIndex = append(newIndex, hi1)
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

// ctrOr performs efficient OR between two containers.
func (rb *Bitmap) ctrOr(c1, c2 *container) {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			rb.arrOrArr(c1, c2)
		case typeBitmap:
			rb.arrOrBmp(c1, c2)
		case typeRun:
			rb.arrOrRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			rb.bmpOrArr(c1, c2)
		case typeBitmap:
			rb.bmpOrBmp(c1, c2)
		case typeRun:
			rb.bmpOrRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			rb.runOrArr(c1, c2)
		case typeBitmap:
			rb.runOrBmp(c1, c2)
		case typeRun:
			rb.runOrRun(c1, c2)
		}
	}
}

// arrOrArr performs OR between two array containers.
func (rb *Bitmap) arrOrArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			out = append(out, av)
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
}

// arrOrBmp performs OR between array and bitmap containers.
func (rb *Bitmap) arrOrBmp(c1, c2 *container) {
	c1.arrToBmp()
	rb.bmpOrBmp(c1, c2)
}

// arrOrRun performs OR between array and run containers: every run is
// painted onto a fresh bitmap, then the array's values are layered on
// top, since the result may exceed ARRAY_MAX once the runs are expanded.
func (rb *Bitmap) arrOrRun(c1, c2 *container) {
	dst := borrowBitmap()
	words := asWords(asUint16s(dst))
	n := c2.runCount()
	for i := 0; i < n; i++ {
		start, end := uint32(c2.getValue(i)), c2.runEnd(i)
		setBitmapRange(words, start, end+1)
	}
	for _, v := range c1.Data {
		words[v>>6] |= 1 << (v & 63)
	}

	c1.Data = asUint16s(dst)
	c1.Type = typeBitmap
	c1.Size = uint32(popcountAll(words))
}

// bmpOrArr performs OR between bitmap and array containers.
func (rb *Bitmap) bmpOrArr(c1, c2 *container) {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if !bmp.Contains(uint32(val)) {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
}

// bmpOrBmp performs OR between two bitmap containers.
func (rb *Bitmap) bmpOrBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return
	}

	a.Or(b)
	c1.Size = uint32(a.Count())
	c1.optimize()
}

// bmpOrRun performs OR between bitmap and run containers.
func (rb *Bitmap) bmpOrRun(c1, c2 *container) {
	words := c1.bmpWords()
	added := 0
	n := c2.runCount()
	for i := 0; i < n; i++ {
		start, end := uint32(c2.getValue(i)), c2.runEnd(i)
		added += int(end-start+1) - popcountRange(words, start, end+1)
		setBitmapRange(words, start, end+1)
	}
	c1.Size += uint32(added)
}

// runOrArr performs OR between run and array containers: converted to
// array and merged, then optimize picks the best final representation.
func (rb *Bitmap) runOrArr(c1, c2 *container) {
	c1.runToArray()
	rb.arrOrArr(c1, c2)
	c1.optimize()
}

// runOrBmp performs OR between run and bitmap containers.
func (rb *Bitmap) runOrBmp(c1, c2 *container) {
	c1.runToBmp()
	rb.bmpOrBmp(c1, c2)
}

// runOrRun performs OR between two run containers via a standard sorted
// interval union merge; appendRun fuses the result whenever consecutive
// emitted runs turn out to abut.
func (rb *Bitmap) runOrRun(c1, c2 *container) {
	out := rb.scratch[:0]
	i, j := 0, 0
	n1, n2 := c1.runCount(), c2.runCount()
	size := uint32(0)

	for i < n1 && j < n2 {
		s1, e1 := uint32(c1.getValue(i)), c1.runEnd(i)
		s2, e2 := uint32(c2.getValue(j)), c2.runEnd(j)

		switch {
		case e1+1 < s2:
			out = appendRun(out, s1, e1)
			size += e1 - s1 + 1
			i++
		case e2+1 < s1:
			out = appendRun(out, s2, e2)
			size += e2 - s2 + 1
			j++
		default:
			us, ue := s1, e1
			if s2 < us {
				us = s2
			}
			if e2 > ue {
				ue = e2
			}
			i++
			j++
			for i < n1 && uint32(c1.getValue(i)) <= ue+1 {
				if e := c1.runEnd(i); e > ue {
					ue = e
				}
				i++
			}
			for j < n2 && uint32(c2.getValue(j)) <= ue+1 {
				if e := c2.runEnd(j); e > ue {
					ue = e
				}
				j++
			}
			out = appendRun(out, us, ue)
			size += ue - us + 1
		}
	}
	for i < n1 {
		s, e := uint32(c1.getValue(i)), c1.runEnd(i)
		out = appendRun(out, s, e)
		size += e - s + 1
		i++
	}
	for j < n2 {
		s, e := uint32(c2.getValue(j)), c2.runEnd(j)
		out = appendRun(out, s, e)
		size += e - s + 1
		j++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
	c1.optimize()
}
