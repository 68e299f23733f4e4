package byteutil

import "testing"

func TestU16RoundTrip(t *testing.T) {
	for _, w := range []uint16{0, 1, 0x00FF, 0xFF00, 0xFFFF, 0x1234, 0xABCD} {
		hi, lo := U16ToBE(w)
		got := U16FromBE(hi, lo)
		if got != w {
			t.Errorf("U16FromBE(U16ToBE(%#04x)) = %#04x, want %#04x", w, got, w)
		}
	}
}

func TestU32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF, 0x12345678} {
		got := U32FromBE(U32ToBE(v))
		if got != v {
			t.Errorf("U32FromBE(U32ToBE(%#08x)) = %#08x, want %#08x", v, got, v)
		}
	}
}

func TestIsAligned(t *testing.T) {
	cases := []struct {
		addr, k int
		want    bool
	}{
		{0, 4, true},
		{4, 4, true},
		{3, 4, false},
		{1024, 4, true},
		{1023, 4, false},
	}
	for _, c := range cases {
		if got := IsAligned(c.addr, c.k); got != c.want {
			t.Errorf("IsAligned(%d, %d) = %v, want %v", c.addr, c.k, got, c.want)
		}
	}
}

func TestGetSlice(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	if _, err := GetSlice(buf, 0, 5); err != nil {
		t.Errorf("GetSlice(0,5) unexpected error: %v", err)
	}
	if _, err := GetSlice(buf, 0, 6); err != ErrAccess {
		t.Errorf("GetSlice(0,6) = %v, want ErrAccess", err)
	}
	if _, err := GetSlice(buf, 3, 2); err != ErrAccess {
		t.Errorf("GetSlice(3,2) = %v, want ErrAccess", err)
	}
}

func TestGetSetU16At(t *testing.T) {
	buf := make([]byte, 4)
	if err := SetU16At(buf, 0, 0x0041); err != nil {
		t.Fatalf("SetU16At: %v", err)
	}
	if buf[0] != 0x00 || buf[1] != 0x41 {
		t.Errorf("buf = % x, want 00 41 .. ..", buf)
	}
	got, err := GetU16At(buf, 0)
	if err != nil {
		t.Fatalf("GetU16At: %v", err)
	}
	if got != 0x0041 {
		t.Errorf("GetU16At = %#04x, want 0x0041", got)
	}

	// addr+1 must be < len(buf): last valid word address in a 4-byte
	// buffer is 2 (bytes 2,3); address 3 must fault.
	if _, err := GetU16At(buf, 3); err != ErrAccess {
		t.Errorf("GetU16At(buf, 3) = %v, want ErrAccess", err)
	}
	if err := SetU16At(buf, 3, 1); err != ErrAccess {
		t.Errorf("SetU16At(buf, 3, 1) = %v, want ErrAccess", err)
	}
}
