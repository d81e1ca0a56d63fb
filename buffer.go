// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/bits"
	"sync"
	"unsafe"

	"github.com/kelindar/bitmap"
)

var pool = sync.Pool{
	New: func() any {
		return make([]uint16, 0, bitmapU16s)
	},
}

func borrowArray() []uint16 {
	return pool.Get().([]uint16)
}

// borrowBitmap returns a zeroed bitmap-sized []uint16 buffer from the pool,
// reinterpreted as a bitmap.Bitmap. Avoids a fresh allocation every time a
// container flips shape to Bitmap.
func borrowBitmap() bitmap.Bitmap {
	arr := borrowArray()
	if cap(arr) < bitmapU16s {
		arr = make([]uint16, bitmapU16s)
	}
	arr = arr[:bitmapU16s]
	for i := range arr {
		arr[i] = 0
	}
	return asBitmap(arr)
}

func release(v any) {
	switch v := v.(type) {
	case []uint16:
		pool.Put(v[:0])
	case bitmap.Bitmap:
		pool.Put(asUint16s(v)[:0])
	}
}

// asBitmap reinterprets a []uint16 backing array (length a multiple of 4)
// as a kelindar/bitmap.Bitmap ([]uint64), with no copy.
func asBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}
	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

// asWords reinterprets a []uint16 backing array as []uint64, the shape the
// range-mutation helpers in util.go operate on.
func asWords(data []uint16) []uint64 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4)
}

// asUint16s reinterprets a bitmap.Bitmap back to its []uint16 backing array.
func asUint16s(data bitmap.Bitmap) []uint16 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), len(data)*4)
}

func popcountWord(w uint64) int   { return bits.OnesCount64(w) }
func trailingZeros64(w uint64) int { return bits.TrailingZeros64(w) }
func leadingZeros64(w uint64) int  { return bits.LeadingZeros64(w) }

func popcountAll(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}
