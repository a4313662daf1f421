package isap

import (
	"github.com/isap-lwc/isap-go/internal/permute/api"
	"github.com/isap-lwc/isap-go/internal/permute/asconp"
	"github.com/isap-lwc/isap-go/internal/permute/keccakp"
)

// ivType distinguishes the three initialization vectors of section 2.3
// of the ISAP specification: IV_A (used by Mac), IV_KA and IV_KE (used
// by Rk in MAC and ENC mode respectively).
type ivType byte

const (
	ivTypeA  ivType = 0x01
	ivTypeKA ivType = 0x02
	ivTypeKE ivType = 0x03
)

// Instance is an immutable bundle of the five parameters — permutation,
// plus the four round counts s_b, s_k, s_e, s_h — that fully determine
// one of the four concrete ISAP schemes. There is no constructor: the
// four package-level values below are the only instances that exist,
// in the spirit of gitlab.com/yawning/aegis.git's Factory values, which
// are likewise fixed at init() rather than built per call.
type Instance struct {
	name      string
	newState  func() api.State
	stateSize int
	rateH     int
	sb, sk, se, sh int

	ivA, ivKA, ivKE [8]byte
}

// String returns the instance's name, e.g. "ISAP-A-128A".
func (inst Instance) String() string { return inst.name }

// encZ is the session-key length Rk produces in ENC mode: the state
// size minus the 16-byte nonce it will be paired with.
func (inst Instance) encZ() int { return inst.stateSize - 16 }

// macZ is the session-key length Rk produces in MAC mode: always 16
// bytes.
func (inst Instance) macZ() int { return 16 }

func makeIV(typ ivType, rateH, sh, sb, se, sk int) [8]byte {
	return [8]byte{
		byte(typ),
		128,
		byte(rateH * 8),
		1,
		byte(sh),
		byte(sb),
		byte(se),
		byte(sk),
	}
}

func newInstance(name string, newState func() api.State, stateSize, sb, sk, se, sh int) Instance {
	rateH := stateSize - 2*16
	return Instance{
		name:      name,
		newState:  newState,
		stateSize: stateSize,
		rateH:     rateH,
		sb:        sb,
		sk:        sk,
		se:        se,
		sh:        sh,
		ivA:       makeIV(ivTypeA, rateH, sh, sb, se, sk),
		ivKA:      makeIV(ivTypeKA, rateH, sh, sb, se, sk),
		ivKE:      makeIV(ivTypeKE, rateH, sh, sb, se, sk),
	}
}

// The four concrete ISAP instances, parameterized per table 2.2 of the
// ISAP specification. ISAP-K-128 here uses s_k=20: one copy of the
// reference C++ source binds ISAP-K-128 to (s_b,s_k,s_e,s_h)=
// (12,12,12,20), but the published specification table — the KAT
// oracle — gives (12,20,12,20); see DESIGN.md.
var (
	InstanceA128A = newInstance("ISAP-A-128A", func() api.State { return new(asconp.State) }, asconp.Size, 1, 12, 6, 12)
	InstanceA128  = newInstance("ISAP-A-128", func() api.State { return new(asconp.State) }, asconp.Size, 12, 12, 12, 12)
	InstanceK128A = newInstance("ISAP-K-128A", func() api.State { return new(keccakp.State) }, keccakp.Size, 8, 16, 8, 16)
	InstanceK128  = newInstance("ISAP-K-128", func() api.State { return new(keccakp.State) }, keccakp.Size, 12, 20, 12, 20)
)
