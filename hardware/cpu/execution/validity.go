// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"github.com/jetsetilly/gopherdmg/curated"
)

// cycle counts for results that are not instructions.
const (
	DispatchCycles = 5
	IdleCycles     = 1
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	switch r.Kind {
	case Dispatch:
		if r.Cycles != DispatchCycles {
			return curated.Errorf("cpu: interrupt dispatch took %d cycles instead of %d", r.Cycles, DispatchCycles)
		}
		return nil
	case Idle:
		if r.Cycles != IdleCycles {
			return curated.Errorf("cpu: idle step took %d cycles instead of %d", r.Cycles, IdleCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a definition")
	}

	// byte count. the halt bug causes one byte to be read twice so the
	// number of bytes consumed is one fewer than the definition
	expectedBytes := r.Defn.Bytes
	if r.CPUBug == HaltBug {
		expectedBytes--
	}
	if r.ByteCount != expectedBytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, expectedBytes)
	}

	if r.Defn.IsConditional() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.BranchCycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d or %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				r.Defn.Cycles,
				r.Defn.BranchCycles)
		}
	} else if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
