// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// the origin of a sprite is wrapped to these dimensions unless the
// WrapOrigin preference is set
const (
	originWidth  = display.LoResWidth
	originHeight = display.LoResHeight
)

func (mc *CPU) execute(op Opcode) error {
	x := op.X()
	y := op.Y()

	switch op.Family() {
	case 0x0:
		return mc.system(op)

	case 0x1:
		mc.PC.Load(op.NNN())

	case 0x2:
		if err := mc.Stack.push(mc.PC.Address()); err != nil {
			return fmt.Errorf("cpu: call %#04x from %#04x: %w", op.NNN(), mc.LastAddress, err)
		}
		mc.PC.Load(op.NNN())

	case 0x3:
		if mc.V[x].Value() == op.NN() {
			mc.skip()
		}

	case 0x4:
		if mc.V[x].Value() != op.NN() {
			mc.skip()
		}

	case 0x5:
		if mc.V[x].Value() == mc.V[y].Value() {
			mc.skip()
		}

	case 0x6:
		mc.V[x].Load(op.NN())

	case 0x7:
		_ = mc.V[x].Add(op.NN())

	case 0x8:
		mc.arithmetic(op)

	case 0x9:
		if mc.V[x].Value() != mc.V[y].Value() {
			mc.skip()
		}

	case 0xa:
		mc.I.Load(op.NNN())

	case 0xb:
		mc.PC.Load(op.NNN() + uint16(mc.V[x].Value()))

	case 0xc:
		mc.V[x].Load(mc.rnd.Byte() & op.NN())

	case 0xd:
		return mc.draw(op)

	case 0xe:
		key, ok := mc.Key()
		switch op.NN() {
		case 0x9e:
			if ok && key == mc.V[x].Value() {
				mc.skip()
			}
		case 0xa1:
			if !ok || key != mc.V[x].Value() {
				mc.skip()
			}
		default:
			mc.unknown(op)
		}

	case 0xf:
		return mc.misc(op)
	}

	return nil
}

// system instructions. screen control and subroutine return.
func (mc *CPU) system(op Opcode) error {
	switch {
	case op == 0x00e0:
		mc.fb.Clear()
	case op == 0x00ee:
		address, err := mc.Stack.pop()
		if err != nil {
			return fmt.Errorf("cpu: return from %#04x: %w", mc.LastAddress, err)
		}
		mc.PC.Load(address)
	case op&0xfff0 == 0x00c0:
		mc.fb.ScrollDown(int(op.N()))
	case op == 0x00fb:
		mc.fb.ScrollRight()
	case op == 0x00fc:
		mc.fb.ScrollLeft()
	case op == 0x00fe:
		mc.fb.SetMode(display.LoRes)
	case op == 0x00ff:
		mc.fb.SetMode(display.HiRes)
	default:
		// includes 0nnn machine code routines
		mc.unknown(op)
	}
	return nil
}

// register to register instructions.
func (mc *CPU) arithmetic(op Opcode) {
	x := op.X()
	y := op.Y()
	vy := mc.V[y].Value()

	switch op.N() {
	case 0x0:
		mc.V[x].Load(vy)
	case 0x1:
		mc.V[x].OR(vy)
	case 0x2:
		mc.V[x].AND(vy)
	case 0x3:
		mc.V[x].XOR(vy)
	case 0x4:
		carry := mc.V[x].Add(vy)
		mc.setFlag(carry)
	case 0x5:
		noBorrow := mc.V[x].Subtract(vy)
		mc.setFlag(noBorrow)
	case 0x6:
		out := mc.V[x].ShiftRight()
		mc.setFlag(out)
	case 0x7:
		r := mc.V[y]
		noBorrow := r.Subtract(mc.V[x].Value())
		mc.V[x].Load(r.Value())
		mc.setFlag(noBorrow)
	case 0xe:
		out := mc.V[x].ShiftLeft()
		mc.setFlag(out)
	default:
		mc.unknown(op)
	}
}

// draw the sprite at I. the number of rows in the sprite is in the lowest
// nibble of the opcode.
func (mc *CPU) draw(op Opcode) error {
	mc.setFlag(false)

	w, h := originWidth, originHeight
	if mc.prefs.Live.WrapOrigin.Load() {
		w, h = mc.fb.Width(), mc.fb.Height()
	}
	x := int(mc.V[op.X()].Value()) % w
	y := int(mc.V[op.Y()].Value()) % h

	sprite := mc.sprite[:op.N()]
	for i := range sprite {
		b, err := mc.mem.Read(mc.I.Address() + uint16(i))
		if err != nil {
			return fmt.Errorf("cpu: draw: %w", err)
		}
		sprite[i] = b
	}

	if mc.fb.Draw(x, y, sprite) {
		mc.setFlag(true)
	}

	return nil
}

// timer, key wait and memory instructions.
func (mc *CPU) misc(op Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07:
		mc.V[x].Load(mc.Timers.Delay.Value())

	case 0x0a:
		if key, ok := mc.Key(); ok {
			mc.V[x].Load(key)
		} else {
			// the instruction will be executed again on the next call to
			// ExecuteInstruction()
			mc.PC.Add(-2)
			mc.Waiting = true
		}

	case 0x15:
		mc.Timers.Delay.Set(mc.V[x].Value())

	case 0x18:
		mc.Timers.Sound.Set(mc.V[x].Value())

	case 0x1e:
		// VF is only ever set. it is not cleared when there is no overflow
		if mc.I.Add(mc.V[x].Value()) && mc.prefs.Live.IndexOverflow.Load() {
			mc.setFlag(true)
		}

	case 0x29:
		mc.I.Load(memory.GlyphAddress(mc.V[x].Value()))

	case 0x33:
		v := mc.V[x].Value()
		bcd := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range bcd {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), d); err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
		}

	case 0x55:
		for i := 0; i <= x; i++ {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), mc.V[i].Value()); err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
		}

	case 0x65:
		for i := 0; i <= x; i++ {
			v, err := mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
			mc.V[i].Load(v)
		}

	default:
		mc.unknown(op)
	}

	return nil
}

// unknown opcodes are logged and otherwise ignored.
func (mc *CPU) unknown(op Opcode) {
	logger.Logf(logger.Allow, "cpu", "unknown opcode %s at %#04x", op, mc.LastAddress)
}
