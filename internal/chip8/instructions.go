package chip8

// execute decodes op into (op, x, y, n) and dispatches to the matching
// handler, mutating registers/RAM/VRAM/PC-transition/wait-latch per
// Cowgod's reference with the original_load/original_shift quirks applied
// where they diverge. Any opcode not matched by the table is a no-op; PC
// still advances by 2 for it.
func (in *Interpreter) execute(op Opcode) {
	nibble, x, y, n := op.Quad()

	switch nibble {
	case 0x0:
		switch op.NNN() {
		case 0x0E0:
			in.cls()
		case 0x0EE:
			in.ret()
		default:
			in.sys(op) // 0nnn SYS: treated as JP nnn
		}
	case 0x1:
		in.jp(op.NNN())
	case 0x2:
		in.call(op.NNN())
	case 0x3:
		in.seVxByte(x, op.KK())
	case 0x4:
		in.sneVxByte(x, op.KK())
	case 0x5:
		in.seVxVy(x, y)
	case 0x6:
		in.ldVxByte(x, op.KK())
	case 0x7:
		in.addVxByte(x, op.KK())
	case 0x8:
		switch n {
		case 0x0:
			in.ldVxVy(x, y)
		case 0x1:
			in.orVxVy(x, y)
		case 0x2:
			in.andVxVy(x, y)
		case 0x3:
			in.xorVxVy(x, y)
		case 0x4:
			in.addVxVy(x, y)
		case 0x5:
			in.subVxVy(x, y)
		case 0x6:
			in.shrVx(x, y)
		case 0x7:
			in.subnVxVy(x, y)
		case 0xE:
			in.shlVx(x, y)
		}
	case 0x9:
		in.sneVxVy(x, y)
	case 0xA:
		in.ldI(op.NNN())
	case 0xB:
		in.jpV0(op.NNN())
	case 0xC:
		in.rndVxByte(x, op.KK())
	case 0xD:
		in.drwVxVyN(x, y, n)
	case 0xE:
		switch op.KK() {
		case 0x9E:
			in.skpVx(x)
		case 0xA1:
			in.sknpVx(x)
		}
	case 0xF:
		switch op.KK() {
		case 0x07:
			in.ldVxDt(x)
		case 0x0A:
			in.ldVxK(x)
		case 0x15:
			in.ldDtVx(x)
		case 0x18:
			in.ldStVx(x)
		case 0x1E:
			in.addIVx(x)
		case 0x29:
			in.ldFVx(x)
		case 0x33:
			in.ldBVx(x)
		case 0x55:
			in.ldIVx(x)
		case 0x65:
			in.ldVxI(x)
		}
	}
}

// 0nnn/1nnn SYS/JP — historical machine routines are not emulated; treated
// as a plain jump to nnn.
func (in *Interpreter) sys(op Opcode) {
	in.jp(op.NNN())
}

// 00E0 CLS
func (in *Interpreter) cls() {
	in.vram.Clear()
	in.dirty = true
	in.pc.SetNext()
}

// 00EE RET
func (in *Interpreter) ret() {
	in.sp = (in.sp - 1) % stackDepth
	in.pc.SetJump(in.stack[in.sp])
}

// 1nnn JP addr
func (in *Interpreter) jp(nnn uint16) {
	in.pc.SetJump(nnn)
}

// 2nnn CALL addr
func (in *Interpreter) call(nnn uint16) {
	in.stack[in.sp] = (in.pc.Value() + 2) & 0x0FFF
	in.sp = (in.sp + 1) % stackDepth
	in.pc.SetJump(nnn)
}

// 3xkk SE Vx, byte
func (in *Interpreter) seVxByte(x, kk uint8) {
	if in.v[x] == kk {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// 4xkk SNE Vx, byte
func (in *Interpreter) sneVxByte(x, kk uint8) {
	if in.v[x] != kk {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// 5xy0 SE Vx, Vy
func (in *Interpreter) seVxVy(x, y uint8) {
	if in.v[x] == in.v[y] {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// 6xkk LD Vx, byte
func (in *Interpreter) ldVxByte(x, kk uint8) {
	in.v[x] = kk
	in.pc.SetNext()
}

// 7xkk ADD Vx, byte — wraps; VF unchanged.
func (in *Interpreter) addVxByte(x, kk uint8) {
	in.v[x] += kk
	in.pc.SetNext()
}

// 8xy0 LD Vx, Vy
func (in *Interpreter) ldVxVy(x, y uint8) {
	in.v[x] = in.v[y]
	in.pc.SetNext()
}

// 8xy1 OR Vx, Vy
func (in *Interpreter) orVxVy(x, y uint8) {
	in.v[x] |= in.v[y]
	in.pc.SetNext()
}

// 8xy2 AND Vx, Vy
func (in *Interpreter) andVxVy(x, y uint8) {
	in.v[x] &= in.v[y]
	in.pc.SetNext()
}

// 8xy3 XOR Vx, Vy
func (in *Interpreter) xorVxVy(x, y uint8) {
	in.v[x] ^= in.v[y]
	in.pc.SetNext()
}

// 8xy4 ADD Vx, Vy — VF = carry, written after the result per spec.
func (in *Interpreter) addVxVy(x, y uint8) {
	sum := uint16(in.v[x]) + uint16(in.v[y])
	in.v[x] = byte(sum & 0xFF)
	in.v[vfIndex] = boolToByte(sum > 0xFF)
	in.pc.SetNext()
}

// 8xy5 SUB Vx, Vy — VF = (Vx>Vy), per spec (not Cowgod's Vx>=Vy).
func (in *Interpreter) subVxVy(x, y uint8) {
	vx, vy := in.v[x], in.v[y]
	in.v[x] = vx - vy
	in.v[vfIndex] = boolToByte(vx > vy)
	in.pc.SetNext()
}

// 8xy6 SHR Vx {, Vy} — modern: shift Vx in place; original: shift Vy into
// Vx. VF = the bit shifted out.
func (in *Interpreter) shrVx(x, y uint8) {
	src := in.v[x]
	if in.originalShift {
		src = in.v[y]
	}
	in.v[x] = src >> 1
	in.v[vfIndex] = src & 0x1
	in.pc.SetNext()
}

// 8xy7 SUBN Vx, Vy — VF = (Vy>Vx).
func (in *Interpreter) subnVxVy(x, y uint8) {
	vx, vy := in.v[x], in.v[y]
	in.v[x] = vy - vx
	in.v[vfIndex] = boolToByte(vy > vx)
	in.pc.SetNext()
}

// 8xyE SHL Vx {, Vy} — modern: shift Vx in place; original: shift Vy into
// Vx. VF = the bit shifted out.
func (in *Interpreter) shlVx(x, y uint8) {
	src := in.v[x]
	if in.originalShift {
		src = in.v[y]
	}
	in.v[x] = src << 1
	in.v[vfIndex] = (src >> 7) & 0x1
	in.pc.SetNext()
}

// 9xy0 SNE Vx, Vy
func (in *Interpreter) sneVxVy(x, y uint8) {
	if in.v[x] != in.v[y] {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// Annn LD I, addr
func (in *Interpreter) ldI(nnn uint16) {
	in.i = nnn
	in.pc.SetNext()
}

// Bnnn JP V0, addr
func (in *Interpreter) jpV0(nnn uint16) {
	in.pc.SetJump((nnn + uint16(in.v[0])) & 0x0FFF)
}

// Cxkk RND Vx, byte
func (in *Interpreter) rndVxByte(x, kk uint8) {
	in.v[x] = randByte() & kk
	in.pc.SetNext()
}

// Dxyn DRW Vx, Vy, nibble — see drawSprite for the XOR/collision semantics.
func (in *Interpreter) drwVxVyN(x, y, n uint8) {
	in.drawSprite(in.v[x], in.v[y], n)
	in.dirty = true
	in.pc.SetNext()
}

// Ex9E SKP Vx
func (in *Interpreter) skpVx(x uint8) {
	if in.keys.Down(in.v[x]) {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// ExA1 SKNP Vx
func (in *Interpreter) sknpVx(x uint8) {
	if !in.keys.Down(in.v[x]) {
		in.pc.SetSkip()
	} else {
		in.pc.SetNext()
	}
}

// Fx07 LD Vx, DT
func (in *Interpreter) ldVxDt(x uint8) {
	in.v[x] = in.dt
	in.pc.SetNext()
}

// Fx0A LD Vx, K — arms the wait-for-key latch; PC still advances past this
// instruction, since the latch itself (not another fetch) resumes the
// program once a key is observed (spec §4.7, §4.9).
func (in *Interpreter) ldVxK(x uint8) {
	in.state = waitingForKey
	in.waitReg = x
	in.pc.SetNext()
}

// Fx15 LD DT, Vx
func (in *Interpreter) ldDtVx(x uint8) {
	in.dt = in.v[x]
	in.pc.SetNext()
}

// Fx18 LD ST, Vx
func (in *Interpreter) ldStVx(x uint8) {
	in.st = in.v[x]
	in.pc.SetNext()
}

// Fx1E ADD I, Vx
func (in *Interpreter) addIVx(x uint8) {
	in.i = (in.i + uint16(in.v[x])) & 0xFFFF
	in.pc.SetNext()
}

// Fx29 LD F, Vx — point I at the built-in digit sprite for Vx (I = Vx*5).
// The full byte is used; values above 0xF point past the 80-byte font.
func (in *Interpreter) ldFVx(x uint8) {
	in.i = uint16(in.v[x]) * 5
	in.pc.SetNext()
}

// Fx33 LD B, Vx — BCD of Vx into RAM[I], RAM[I+1], RAM[I+2].
func (in *Interpreter) ldBVx(x uint8) {
	vx := in.v[x]
	addr := in.i & 0x0FFF
	in.memory[addr] = vx / 100
	in.memory[(addr+1)&0x0FFF] = (vx / 10) % 10
	in.memory[(addr+2)&0x0FFF] = vx % 10
	in.pc.SetNext()
}

// Fx55 LD [I], Vx — dump V0..Vx to RAM starting at I. With original_load,
// I is also advanced by x+1.
func (in *Interpreter) ldIVx(x uint8) {
	addr := in.i & 0x0FFF
	for reg := uint8(0); reg <= x; reg++ {
		in.memory[(addr+uint16(reg))&0x0FFF] = in.v[reg]
	}
	if in.originalLoad {
		in.i = (in.i + uint16(x) + 1) & 0xFFFF
	}
	in.pc.SetNext()
}

// Fx65 LD Vx, [I] — load V0..Vx from RAM starting at I. With
// original_load, I is also advanced by x+1.
func (in *Interpreter) ldVxI(x uint8) {
	addr := in.i & 0x0FFF
	for reg := uint8(0); reg <= x; reg++ {
		in.v[reg] = in.memory[(addr+uint16(reg))&0x0FFF]
	}
	if in.originalLoad {
		in.i = (in.i + uint16(x) + 1) & 0xFFFF
	}
	in.pc.SetNext()
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
