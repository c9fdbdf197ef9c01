package emulator

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/regvm/cpu"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("emulator: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is the machine state at the end of a run, for post-mortem
// inspection. It is never loaded back into a machine.
type Snapshot struct {
	RunID     string               `cbor:"run_id"`
	Pc        uint32               `cbor:"pc"`
	Cmp       bool                 `cbor:"cmp"`
	Registers [cpu.REG_COUNT]int32 `cbor:"registers"`
	Ticks     int                  `cbor:"ticks"`
	Fault     string               `cbor:"fault,omitempty"`
	Memory    []byte               `cbor:"memory"`
}

// Snapshot captures the current state. fault, if not nil, is recorded as
// the reason the run stopped.
func (emu *Emulator) Snapshot(fault error) (snap *Snapshot) {
	snap = &Snapshot{
		RunID:     emu.RunID.String(),
		Pc:        emu.Cpu.Pc,
		Cmp:       emu.Cpu.Cmp,
		Registers: emu.Cpu.Register,
		Ticks:     emu.Cpu.Ticks,
		Memory:    append([]byte(nil), emu.Cpu.Memory.Data...),
	}

	if fault != nil {
		snap.Fault = fault.Error()
	}

	return
}

// MarshalSnapshot serializes a Snapshot to canonical CBOR bytes.
func MarshalSnapshot(snap *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(snap)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, &ErrSnapshot{Err: err}
	}
	return &snap, nil
}
