package rpz

// MaxZones is Z_max: the compile-time limit on the number of policy zones
// a single index can track. Zone ordinal 0 is the highest priority.
const MaxZones = 64

// ZBits is a fixed-width bitmap over zone ordinals: bit z set means zone z
// is a member of the set. Zone 0 (highest priority) is the lowest bit.
type ZBits uint64

// AllZones is the zbits with every representable zone ordinal set.
const AllZones ZBits = ^ZBits(0)

// Zone returns the singleton zbits for ordinal z.
func Zone(z uint8) ZBits {
	return ZBits(1) << uint(z)
}

// Test reports whether zone z is a member of zb.
func (zb ZBits) Test(z uint8) bool {
	return zb&Zone(z) != 0
}

// Set returns zb with zone z added.
func (zb ZBits) Set(z uint8) ZBits {
	return zb | Zone(z)
}

// Clear returns zb with zone z removed.
func (zb ZBits) Clear(z uint8) ZBits {
	return zb &^ Zone(z)
}

// Union returns the bitwise union of zb and other.
func (zb ZBits) Union(other ZBits) ZBits {
	return zb | other
}

// Intersect returns the bitwise intersection of zb and other.
func (zb ZBits) Intersect(other ZBits) ZBits {
	return zb & other
}

// Complement returns the bitwise complement of zb.
func (zb ZBits) Complement() ZBits {
	return ^zb
}

// IsZero reports whether zb has no zone set.
func (zb ZBits) IsZero() bool {
	return zb == 0
}

// Lowest returns the lowest-ordinal (highest priority) zone set in zb.
// ok is false when zb is empty.
func Lowest(zb ZBits) (z uint8, ok bool) {
	if zb == 0 {
		return 0, false
	}

	// isolate the lowest set bit and find its index
	lsb := zb & (^zb + 1)

	var idx uint8
	for lsb > 1 {
		lsb >>= 1
		idx++
	}

	return idx, true
}

// MaskBelow returns the zbits with bits 0..z-1 set: every zone of strictly
// higher priority (lower ordinal) than z.
func MaskBelow(z uint8) ZBits {
	if z == 0 {
		return 0
	}

	if z >= MaxZones {
		return AllZones
	}

	return ZBits(1)<<uint(z) - 1
}

// forEachZone calls fn once for every zone ordinal set in zb, lowest
// ordinal first.
func forEachZone(zb ZBits, fn func(z uint8)) {
	for zb != 0 {
		z, ok := Lowest(zb)
		if !ok {
			return
		}

		fn(z)
		zb = zb.Clear(z)
	}
}

// maskBelowOrEqualLowest implements the priority trimming formula: given
// the zbits h of zones that matched at this node, return the mask that keeps
// every zone from 0 up to and including the lowest-ordinal matching zone.
// Zones with strictly lower priority than the winner are cut off.
func maskBelowOrEqualLowest(h ZBits) ZBits {
	if h == 0 {
		return AllZones
	}

	lsb := h & (^h + 1)

	return (lsb << 1) - 1
}
