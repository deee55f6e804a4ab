package dns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpj/dnswire"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := dns.Header{
		Id:                 0xBEEF,
		Response:           true,
		Opcode:             dns.OpcodeQuery,
		Authoritative:      true,
		RecursionDesired:   true,
		RecursionAvailable: true,
		Rcode:              dns.RcodeNameError,
		Qdcount:            1,
		Ancount:            2,
		Nscount:            3,
		Arcount:            4,
	}

	buf := make([]byte, 12)
	off, err := dns.EncodeHeader(buf, 0, h)
	require.NoError(t, err)
	assert.Equal(t, 12, off)

	got, next, err := dns.DecodeHeader(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, next)
	assert.Equal(t, h, got)
}

func TestDecodeHeaderTruncated(t *testing.T) {
	_, _, err := dns.DecodeHeader(make([]byte, 11), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrTruncatedHeader)
}
