package controls

import "strconv"

// Handles pack a 32-bit slot id and a 32-bit generation, so a handle held
// after removal never resolves to a recycled slot.

type handleID uint32
type generation uint32

const handleIDBits = 32

func makeHandle(id handleID, gen generation) uint64 {
	return uint64(gen)<<handleIDBits | uint64(id)
}

func handleParts(h uint64) (handleID, generation) {
	return handleID(uint32(h)), generation(uint32(h >> handleIDBits))
}

// DetectorHandle identifies a registered button detector.
type DetectorHandle uint64

// AxisDetectorHandle identifies a registered axis detector.
type AxisDetectorHandle uint64

// ButtonHandle identifies a registered button.
type ButtonHandle uint64

// AxisHandle identifies a registered axis.
type AxisHandle uint64

func (h DetectorHandle) Valid() bool     { return h > 0 }
func (h AxisDetectorHandle) Valid() bool { return h > 0 }
func (h ButtonHandle) Valid() bool       { return h > 0 }
func (h AxisHandle) Valid() bool         { return h > 0 }

func (h DetectorHandle) String() string     { return strconv.FormatUint(uint64(h), 10) }
func (h AxisDetectorHandle) String() string { return strconv.FormatUint(uint64(h), 10) }
func (h ButtonHandle) String() string       { return strconv.FormatUint(uint64(h), 10) }
func (h AxisHandle) String() string         { return strconv.FormatUint(uint64(h), 10) }

func (DetectorHandle) binarySource() {}
func (ButtonHandle) binarySource()   {}
