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

package instructions

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed instructions.csv
var primaryCSV string

//go:embed extended.csv
var extendedCSV string

// Table is a complete opcode table. Opcodes that do not exist are nil.
type Table [256]*Definition

// Definitions is the complete instruction set.
type Definitions struct {
	Primary  Table
	Extended Table
}

// GetDefinitions returns the instruction set. A new instance is returned on
// every call.
func GetDefinitions() (*Definitions, error) {
	var err error

	defs := &Definitions{}

	err = parseCSV(primaryCSV, false, &defs.Primary)
	if err != nil {
		return nil, fmt.Errorf("instructions: primary table: %w", err)
	}

	err = parseCSV(extendedCSV, true, &defs.Extended)
	if err != nil {
		return nil, fmt.Errorf("instructions: extended table: %w", err)
	}

	return defs, nil
}

var effects = map[string]EffectCategory{
	"READ":       Read,
	"WRITE":      Write,
	"RMW":        RMW,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"INTERRUPT":  Interrupt,
}

func parseCSV(data string, prefixed bool, table *Table) error {
	csvr := csv.NewReader(strings.NewReader(data))
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 5

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line, _ := csvr.FieldPos(0)

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := Definition{
			Prefixed: prefixed,
			Mnemonic: rec[1],
		}

		// field: opcode
		opcode, err := strconv.ParseUint(rec[0], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(opcode)

		if table[defn.OpCode] != nil {
			return fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: number of bytes
		defn.Bytes, err = strconv.Atoi(rec[2])
		if err != nil || defn.Bytes < 1 || defn.Bytes > 3 {
			return fmt.Errorf("invalid byte count (%s) [line %d]", rec[2], line)
		}

		// field: cycles. optionally in the form failed/succeeded
		notTaken, taken, conditional := strings.Cut(rec[3], "/")
		defn.Cycles, err = strconv.Atoi(notTaken)
		if err != nil || defn.Cycles < 1 {
			return fmt.Errorf("invalid cycle count (%s) [line %d]", rec[3], line)
		}
		if conditional {
			defn.BranchCycles, err = strconv.Atoi(taken)
			if err != nil || defn.BranchCycles <= defn.Cycles {
				return fmt.Errorf("invalid branch cycle count (%s) [line %d]", rec[3], line)
			}
		}

		// field: effect
		var ok bool
		defn.Effect, ok = effects[strings.ToUpper(rec[4])]
		if !ok {
			return fmt.Errorf("unknown effect category (%s) [line %d]", rec[4], line)
		}

		table[defn.OpCode] = &defn
	}

	return nil
}
