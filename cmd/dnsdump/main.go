// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dnsdump sends a single UDP query and dumps the reply the way
// dig does, via Packet.String. Modeled on the cmd/dnsquery flag/UDP
// dialing shape from the pack.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/zpj/dnswire"
)

func main() {
	var (
		server  = flag.String("server", "127.0.0.1:53", "DNS server HOST:PORT")
		name    = flag.String("name", "example.com.", "query name")
		qtype   = flag.Uint("qtype", uint(dns.TypeA), "query type (numeric)")
		qclass  = flag.Uint("qclass", uint(dns.ClassINET), "query class (numeric)")
		timeout = flag.Duration("timeout", 2*time.Second, "UDP read/write timeout")
		bufSize = flag.Int("recv-size", 4096, "UDP receive buffer size")
	)
	flag.Parse()

	qname, err := dns.ParseName(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsdump: bad name %q: %v\n", *name, err)
		os.Exit(1)
	}

	reply, err := query(*server, qname, uint16(*qtype), uint16(*qclass), *timeout, *bufSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsdump: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(reply.String())
}

func query(server string, qname dns.Name, qtype, qclass uint16, timeout time.Duration, bufSize int) (*dns.Packet, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	req := dns.NewQuery(qname, qtype, qclass)
	req.SetEDNS0(uint16(bufSize), false)
	wire, err := req.Encode()
	if err != nil {
		return nil, err
	}

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}
	if _, err := conn.Write(wire); err != nil {
		return nil, err
	}

	buf := make([]byte, bufSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, err
	}

	resp, err := dns.Decode(buf[:n])
	if err != nil {
		return resp, err
	}
	resp.AnswerFrom = addr
	return resp, nil
}
