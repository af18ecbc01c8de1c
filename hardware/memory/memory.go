// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the flat address space of the Space Invaders
// class machine: the program (ROM) image at the bottom of memory, followed
// by 8k of RAM. The video bitmap is the portion of RAM beginning at address
// 0x2400.
package memory

import (
	"github.com/pixelclad/gopher8080/curated"
)

// error patterns returned by the memory package.
const (
	AddressError = "memory: address out of range (%#04x)"
	BitmapError  = "memory: memory too small for a video bitmap"
)

// amount of RAM that follows the program image.
const ramSize = 0x2000

// the video bitmap occupies RAM from this address. one bit per pixel, one
// column of the rotated display per 32 bytes.
const (
	BitmapOrigin = 0x2400
	BitmapCols   = 224
	BitmapStride = 32
)

// Memory implements the cpubus.Memory interface.
type Memory struct {
	internal []uint8
}

// NewMemory is the preferred method of initialisation for the Memory
// structure. The program image is copied to the bottom of the address space
// and is followed by zeroed RAM.
func NewMemory(program []uint8) *Memory {
	mem := &Memory{
		internal: make([]uint8, len(program)+ramSize),
	}
	copy(mem.internal, program)
	return mem
}

// Read is an implementation of the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= len(mem.internal) {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.internal[address], nil
}

// Write is an implementation of the cpubus.Memory interface.
//
// Note that the program image is not write protected. The original hardware
// can't write to its ROM chips of course, but the programs we run are well
// behaved and the transparency is useful for test programs that patch
// themselves.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= len(mem.internal) {
		return curated.Errorf(AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

// VideoBitmap returns the slice of memory occupied by the video bitmap. The
// slice aliases the live memory, it is not a copy. Returns an error if the
// address space is too small to contain a bitmap.
func (mem *Memory) VideoBitmap() ([]uint8, error) {
	if len(mem.internal) < BitmapOrigin+BitmapCols*BitmapStride {
		return nil, curated.Errorf(BitmapError)
	}
	return mem.internal[BitmapOrigin : BitmapOrigin+BitmapCols*BitmapStride], nil
}

// Pixel returns the state of the pixel at display coordinates (x, y), where
// x runs along the 224 pixel axis and y along the 256 pixel axis. The bitmap
// stores each column of the rotated display top to bottom, high bit first.
func Pixel(bitmap []uint8, x int, y int) uint8 {
	b := bitmap[x*BitmapStride+(BitmapStride-1)-(y>>3)]
	return (b >> (7 - (y & 0x07))) & 0x01
}
