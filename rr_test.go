package dns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpj/dnswire"
)

func TestRRRoundTripPTR(t *testing.T) {
	owner, err := dns.ParseName("1.0.0.127.in-addr.arpa.")
	require.NoError(t, err)
	target, err := dns.ParseName("localhost.")
	require.NoError(t, err)

	rr := dns.RR{
		Hdr:   dns.RR_Header{Name: owner, Rrtype: dns.TypePTR, Class: dns.ClassINET, Ttl: 3600},
		Rdata: &dns.PTRData{Ptr: target},
	}

	buf := make([]byte, 512)
	off, err := dns.EncodeRR(buf, 0, rr, map[string]int{}, true)
	require.NoError(t, err)

	got, next, err := dns.DecodeRR(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, off, next)
	assert.Equal(t, dns.TypePTR, got.Hdr.Rrtype)

	ptr, ok := got.Rdata.(*dns.PTRData)
	require.True(t, ok)
	assert.True(t, target.EqualFold(ptr.Ptr))
}

func TestRROpaqueRoundTrip(t *testing.T) {
	owner, err := dns.ParseName("example.com.")
	require.NoError(t, err)

	rr := dns.RR{
		Hdr:   dns.RR_Header{Name: owner, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
		Rdata: &dns.OpaqueData{Rrtype: dns.TypeA, Raw: []byte{192, 0, 2, 1}},
	}

	buf := make([]byte, 512)
	_, err = dns.EncodeRR(buf, 0, rr, map[string]int{}, true)
	require.NoError(t, err)

	got, _, err := dns.DecodeRR(buf, 0)
	require.NoError(t, err)
	op, ok := got.Rdata.(*dns.OpaqueData)
	require.True(t, ok)
	assert.Equal(t, []byte{192, 0, 2, 1}, op.Raw)
}

func TestEncodeRRRejectsShortBuffer(t *testing.T) {
	owner, err := dns.ParseName("example.com.")
	require.NoError(t, err)
	rr := dns.RR{
		Hdr:   dns.RR_Header{Name: owner, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
		Rdata: &dns.OpaqueData{Rrtype: dns.TypeA, Raw: []byte{1, 2, 3, 4}},
	}
	_, err = dns.EncodeRR(make([]byte, 4), 0, rr, map[string]int{}, true)
	require.Error(t, err)
}

func TestOPTRoundTrip(t *testing.T) {
	opt := dns.NewOPT(4096, 0, 0, true, dns.EDNSOption{Code: 3, Data: []byte("nsid")})

	buf := make([]byte, 512)
	_, err := dns.EncodeRR(buf, 0, opt, map[string]int{}, true)
	require.NoError(t, err)

	got, _, err := dns.DecodeRR(buf, 0)
	require.NoError(t, err)
	assert.True(t, got.IsOPT())
	assert.Equal(t, uint16(4096), got.EDNS0UDPSize())
	assert.True(t, got.EDNS0DO())

	data, ok := got.Rdata.(*dns.OPTData)
	require.True(t, ok)
	require.Len(t, data.Options, 1)
	assert.Equal(t, uint16(3), data.Options[0].Code)
	assert.Equal(t, []byte("nsid"), data.Options[0].Data)
}
