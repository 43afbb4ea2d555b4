package intcode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// snapshot is the serialized process image of a machine.
type snapshot struct {
	Ip           int64   `cbor:"1,keyasint"`
	RelativeBase int64   `cbor:"2,keyasint"`
	State        State   `cbor:"3,keyasint"`
	Memory       []int64 `cbor:"4,keyasint"`
	Limit        int     `cbor:"5,keyasint,omitempty"`
	Image        []int64 `cbor:"6,keyasint"`
	Input        []int64 `cbor:"7,keyasint,omitempty"`
	Output       []int64 `cbor:"8,keyasint,omitempty"`
	Ticks        int     `cbor:"9,keyasint,omitempty"`
}

// MarshalBinary encodes the complete process image of the machine.
func (m *Machine) MarshalBinary() (data []byte, err error) {
	snap := snapshot{
		Ip:           m.Ip,
		RelativeBase: m.RelativeBase,
		State:        m.State,
		Memory:       m.Memory.Cells,
		Limit:        m.Memory.Limit,
		Image:        m.image,
		Input:        m.Input,
		Output:       m.Output,
		Ticks:        m.Ticks,
	}

	return snapshotEncMode.Marshal(&snap)
}

// UnmarshalBinary replaces the machine's process image with one encoded
// by MarshalBinary. The Verbose setting is preserved.
func (m *Machine) UnmarshalBinary(data []byte) (err error) {
	var snap snapshot
	err = cbor.Unmarshal(data, &snap)
	if err != nil {
		err = fmt.Errorf("intcode: unmarshal snapshot: %w", err)
		return
	}

	if snap.State < STATE_INITIAL || snap.State > STATE_HALTED {
		err = ErrSnapshotState
		return
	}

	m.Ip = snap.Ip
	m.RelativeBase = snap.RelativeBase
	m.State = snap.State
	m.Memory = Memory{Limit: snap.Limit, Cells: snap.Memory}
	m.image = snap.Image
	m.Input = snap.Input
	m.Output = snap.Output
	m.Ticks = snap.Ticks

	return
}
