package tradevault

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/tradetest/assert"
)

func TestAddressEncodings(t *testing.T) {
	addr := NewAddress([]byte("escrow"))
	assert.Nil(t, addr.Validate())

	b32, err := addr.Bech32("tv")
	assert.Nil(t, err)
	assert.Equal(t, true, strings.HasPrefix(b32, "tv1"))
	// flip the last checksum character
	last := "q"
	if strings.HasSuffix(b32, last) {
		last = "p"
	}
	badChecksum := b32[:len(b32)-1] + last

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr *errors.Error
	}{
		"hex": {
			enc:  addr.String(),
			want: addr,
		},
		"lower case hex": {
			enc:  strings.ToLower(addr.String()),
			want: addr,
		},
		"base58": {
			enc:  "base58:" + addr.Base58(),
			want: addr,
		},
		"bech32": {
			enc:  "bech32:" + b32,
			want: addr,
		},
		"bech32 bad checksum": {
			enc:     "bech32:" + badChecksum,
			wantErr: errors.ErrInvalidInput,
		},
		"bech32 short payload": {
			enc:     "bech32:tiov1w3jhxapdwpshjmr0v9jqymqq4y",
			wantErr: errors.ErrInvalidInput,
		},
		"empty": {
			enc:  "",
			want: nil,
		},
		"invalid hex": {
			enc:     "zz",
			wantErr: errors.ErrInvalidInput,
		},
		"wrong length": {
			enc:     "CAFE",
			wantErr: errors.ErrInvalidInput,
		},
		"invalid base58": {
			enc:     "base58:0OIl",
			wantErr: errors.ErrInvalidInput,
		},
		"unknown format": {
			enc:     "base64:AAAA",
			wantErr: errors.ErrInvalidType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.enc)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewAddress([]byte("mint"))

	raw, err := json.Marshal(addr)
	assert.Nil(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got Address
	assert.Nil(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)

	var b58 Address
	assert.Nil(t, json.Unmarshal([]byte(`"base58:`+addr.Base58()+`"`), &b58))
	assert.Equal(t, addr, b58)

	var bad Address
	if err := json.Unmarshal([]byte(`"0102"`), &bad); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %+v", err)
	}
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr *errors.Error
	}{
		"valid":     {addr: NewAddress([]byte("a")), wantErr: nil},
		"nil":       {addr: nil, wantErr: errors.ErrEmpty},
		"too short": {addr: Address{1, 2, 3}, wantErr: errors.ErrInvalidInput},
		"too long":  {addr: make(Address, 33), wantErr: errors.ErrInvalidInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.addr.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAddressClone(t *testing.T) {
	addr := NewAddress([]byte("x"))
	cpy := addr.Clone()
	assert.Equal(t, addr, cpy)
	cpy[0]++
	if addr.Equals(cpy) {
		t.Fatal("clone shares memory with the original")
	}
	assert.Nil(t, Address(nil).Clone())
	assert.Equal(t, "(nil)", Address(nil).String())
}
