package dns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpj/dnswire"
)

func TestTSIGSignAndVerify(t *testing.T) {
	key := mustName(t, "key.example.com.")
	secret := []byte("01234567890123456789012345678901")

	q := dns.NewQuery(mustName(t, "example.com."), dns.TypeA, dns.ClassINET)
	err := dns.SignTSIG(q, dns.DefaultMAC, key, dns.HmacSHA256, secret, nil, 1700000000, 300)
	require.NoError(t, err)

	wire, err := q.Encode()
	require.NoError(t, err)

	decoded, err := dns.Decode(wire)
	require.NoError(t, err)

	err = dns.VerifyTSIG(decoded, wire, dns.DefaultMAC, secret, nil)
	assert.NoError(t, err)
}

func TestTSIGVerifyFailsOnTamperedBody(t *testing.T) {
	key := mustName(t, "key.example.com.")
	secret := []byte("01234567890123456789012345678901")

	q := dns.NewQuery(mustName(t, "example.com."), dns.TypeA, dns.ClassINET)
	err := dns.SignTSIG(q, dns.DefaultMAC, key, dns.HmacSHA256, secret, nil, 1700000000, 300)
	require.NoError(t, err)

	wire, err := q.Encode()
	require.NoError(t, err)

	decoded, err := dns.Decode(wire)
	require.NoError(t, err)

	tampered := append([]byte(nil), wire...)
	tampered[12] ^= 0xFF // invert every bit of the question name's first length octet

	err = dns.VerifyTSIG(decoded, tampered, dns.DefaultMAC, secret, nil)
	assert.ErrorIs(t, err, dns.ErrBadSig)
}

func TestTSIGVerifyFailsWithWrongSecret(t *testing.T) {
	key := mustName(t, "key.example.com.")

	q := dns.NewQuery(mustName(t, "example.com."), dns.TypeA, dns.ClassINET)
	err := dns.SignTSIG(q, dns.DefaultMAC, key, dns.HmacSHA256, []byte("correct-secret-correct-secret-32"), nil, 1700000000, 300)
	require.NoError(t, err)

	wire, err := q.Encode()
	require.NoError(t, err)

	decoded, err := dns.Decode(wire)
	require.NoError(t, err)

	err = dns.VerifyTSIG(decoded, wire, dns.DefaultMAC, []byte("wrong-secret-wrong-secret-wrong!"), nil)
	assert.ErrorIs(t, err, dns.ErrBadSig)
}

func TestTSIGReplyChainsRequestMAC(t *testing.T) {
	key := mustName(t, "key.example.com.")
	secret := []byte("01234567890123456789012345678901")

	q := dns.NewQuery(mustName(t, "example.com."), dns.TypeA, dns.ClassINET)
	require.NoError(t, dns.SignTSIG(q, dns.DefaultMAC, key, dns.HmacSHA256, secret, nil, 1700000000, 300))
	qWire, err := q.Encode()
	require.NoError(t, err)
	decodedQ, err := dns.Decode(qWire)
	require.NoError(t, err)
	requestMAC := decodedQ.Extra[len(decodedQ.Extra)-1].Rdata.(*dns.TSIGData).MAC

	r, err := q.Reply(4096)
	require.NoError(t, err)
	r.Rcode = dns.RcodeSuccess
	require.NoError(t, dns.SignTSIG(r, dns.DefaultMAC, key, dns.HmacSHA256, secret, requestMAC, 1700000000, 300))

	rWire, err := r.Encode()
	require.NoError(t, err)
	decodedR, err := dns.Decode(rWire)
	require.NoError(t, err)

	assert.NoError(t, dns.VerifyTSIG(decodedR, rWire, dns.DefaultMAC, secret, requestMAC))
	assert.Error(t, dns.VerifyTSIG(decodedR, rWire, dns.DefaultMAC, secret, nil), "verifying without the chained request MAC must fail")
}
