package dns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpj/dnswire"
)

func TestNameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "root", in: "."},
		{name: "single-label", in: "com."},
		{name: "multi-label", in: "www.example.com."},
		{name: "escaped-dot", in: `a\.b.example.com.`},
		{name: "escaped-backslash", in: `a\\b.example.com.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := dns.ParseName(tt.in)
			require.NoError(t, err)

			buf := make([]byte, 512)
			off, err := dns.EncodeName(buf, 0, n, map[string]int{}, false)
			require.NoError(t, err)

			got, next, err := dns.DecodeName(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, off, next)
			assert.True(t, n.EqualFold(got))
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestEncodeNameCompression(t *testing.T) {
	a, err := dns.ParseName("www.example.com.")
	require.NoError(t, err)
	b, err := dns.ParseName("mail.example.com.")
	require.NoError(t, err)

	buf := make([]byte, 512)
	comp := map[string]int{}
	off, err := dns.EncodeName(buf, 0, a, comp, true)
	require.NoError(t, err)

	firstLen := off
	off2, err := dns.EncodeName(buf, off, b, comp, true)
	require.NoError(t, err)

	// "example.com." is shared, so b's encoding must be shorter than a
	// standalone copy of it would be (it emits only "mail" plus a
	// 2-octet pointer).
	assert.Less(t, off2-off, firstLen)

	gotA, nextA, err := dns.DecodeName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, firstLen, nextA)
	assert.True(t, a.EqualFold(gotA))

	gotB, nextB, err := dns.DecodeName(buf, off)
	require.NoError(t, err)
	assert.Equal(t, off2, nextB)
	assert.True(t, b.EqualFold(gotB))
}

func TestEncodeNameCompressionIsCaseInsensitive(t *testing.T) {
	lower, err := dns.ParseName("example.com.")
	require.NoError(t, err)
	upper, err := dns.ParseName("EXAMPLE.COM.")
	require.NoError(t, err)

	buf := make([]byte, 512)
	comp := map[string]int{}
	off, err := dns.EncodeName(buf, 0, lower, comp, true)
	require.NoError(t, err)

	off2, err := dns.EncodeName(buf, off, upper, comp, true)
	require.NoError(t, err)
	assert.Equal(t, 2, off2-off, "differently-cased suffix should still compress to a bare pointer")
}

func TestDecodeNameRejectsPointerCycle(t *testing.T) {
	// Two pointers that point at each other: 0xC0,0x02 at offset 0
	// pointing to offset 2, which points back to offset 0.
	buf := []byte{0xC0, 0x02, 0xC0, 0x00}
	_, _, err := dns.DecodeName(buf, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrLoop)
}

func TestDecodeNameTruncated(t *testing.T) {
	buf := []byte{3, 'w', 'w'} // label claims 3 octets, only 2 present
	_, _, err := dns.DecodeName(buf, 0)
	require.Error(t, err)
}

func TestParseNameTooLong(t *testing.T) {
	label := make([]byte, 63)
	for i := range label {
		label[i] = 'a'
	}
	s := ""
	for i := 0; i < 5; i++ {
		s += string(label) + "."
	}
	_, err := dns.ParseName(s)
	require.Error(t, err)
}

func TestNameFromUnicode(t *testing.T) {
	n, err := dns.NameFromUnicode("bücher.example.")
	require.NoError(t, err)
	assert.False(t, n.IsRoot())
}
