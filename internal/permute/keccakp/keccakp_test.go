package keccakp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadExtractRoundTrip(t *testing.T) {
	buf := make([]byte, Size)
	for i := range buf {
		buf[i] = byte(i)
	}

	var s State
	s.Load(buf)
	require.Equal(t, buf, s.Extract(0, Size))
}

func TestLoadZeroPads(t *testing.T) {
	var s State
	s.Load([]byte{0x01, 0x02, 0x03})

	got := s.Extract(0, Size)
	want := make([]byte, Size)
	want[0], want[1], want[2] = 0x01, 0x02, 0x03
	require.Equal(t, want, got)
}

func TestXORBytesIsSelfInverse(t *testing.T) {
	var s State
	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	s.XORBytes(8, buf)
	require.Equal(t, buf, s.Extract(8, len(buf)))

	s.XORBytes(8, buf)
	require.Equal(t, make([]byte, len(buf)), s.Extract(8, len(buf)))
}

func TestStoreBytesOverwritesOnlyGivenRange(t *testing.T) {
	buf := make([]byte, Size)
	for i := range buf {
		buf[i] = 0xff
	}
	var s State
	s.Load(buf)

	s.StoreBytes(4, []byte{0x00, 0x00})

	got := s.Extract(0, Size)
	for i, b := range got {
		if i == 4 || i == 5 {
			require.Equal(t, byte(0x00), b, "byte %d", i)
		} else {
			require.Equal(t, byte(0xff), b, "byte %d", i)
		}
	}
}

func TestXORBit0SetsBit7OfFirstByte(t *testing.T) {
	var s State
	s.XORBit0(1)
	require.Equal(t, []byte{0x80}, s.Extract(0, 1))
}

func TestFlipLastBitTogglesByte49(t *testing.T) {
	var s State
	s.FlipLastBit()
	require.Equal(t, byte(0x01), s.Extract(Size-1, 1)[0])

	s.FlipLastBit()
	require.Equal(t, byte(0x00), s.Extract(Size-1, 1)[0])
}

func TestPermuteZeroRoundsIsIdentity(t *testing.T) {
	var s State
	s.Load([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	before := s.Extract(0, Size)

	s.Permute(0)
	require.Equal(t, before, s.Extract(0, Size))
}

func TestPermuteIsDeterministic(t *testing.T) {
	seed := make([]byte, Size)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	var s1, s2 State
	s1.Load(seed)
	s2.Load(seed)

	s1.Permute(20)
	s2.Permute(20)

	require.Equal(t, s1.Extract(0, Size), s2.Extract(0, Size))
}

func TestPermuteChangesNonTrivialState(t *testing.T) {
	var s State
	s.Load([]byte{1, 2, 3, 4})
	before := s.Extract(0, Size)

	s.Permute(20)
	require.NotEqual(t, before, s.Extract(0, Size))
}

func TestPermuteOnAllZeroAndAllOneStates(t *testing.T) {
	var zero State
	zero.Permute(20)
	require.NotEqual(t, make([]byte, Size), zero.Extract(0, Size), "full permutation of the all-zero state must not be the identity")

	var ones State
	buf := make([]byte, Size)
	for i := range buf {
		buf[i] = 0xff
	}
	ones.Load(buf)
	ones.Permute(20)
	require.NotEqual(t, buf, ones.Extract(0, Size), "full permutation of the all-one state must not be the identity")
}

func TestPermutePartialRoundsDifferFromFull(t *testing.T) {
	seed := make([]byte, Size)
	for i := range seed {
		seed[i] = byte(i * 3)
	}

	var partial, full State
	partial.Load(seed)
	full.Load(seed)

	partial.Permute(8)
	full.Permute(20)

	require.NotEqual(t, partial.Extract(0, Size), full.Extract(0, Size))
}

func TestThetaIsLinearOverXOR(t *testing.T) {
	// theta is a linear map: theta(a XOR b) == theta(a) XOR theta(b).
	// This is a structural sanity check independent of any reference
	// vector, since Keccak's theta step is defined purely in terms of
	// XOR and rotation.
	a := State{}
	b := State{}
	for i := range a {
		a[i] = uint16(i * 101)
		b[i] = uint16(i*37 + 5)
	}

	ab := State{}
	for i := range ab {
		ab[i] = a[i] ^ b[i]
	}

	ta, tb, tab := a, b, ab
	theta(&ta)
	theta(&tb)
	theta(&tab)

	for i := range tab {
		require.Equal(t, ta[i]^tb[i], tab[i], "lane %d", i)
	}
}
