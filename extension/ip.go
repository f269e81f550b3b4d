// SPDX-License-Identifier: Apache-2.0

package extension

import (
	"fmt"
	"net/netip"

	"github.com/policycore/engine/value"
)

// ipValue wraps a parsed address or prefix. Cedar's `ipaddr` type accepts
// both single addresses ("1.2.3.4") and CIDR ranges ("1.2.3.0/24"); a
// bare address is modeled as a /32 or /128 prefix so every ipValue can
// answer isInRange and isLoopback/isMulticast uniformly.
type ipValue struct {
	prefix netip.Prefix
}

func parseIP(s string) (ipValue, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return ipValue{prefix: p}, nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ipValue{}, fmt.Errorf("invalid ip address or range %q", s)
	}
	return ipValue{prefix: netip.PrefixFrom(addr, addr.BitLen())}, nil
}

func (v ipValue) String() string {
	if v.prefix.Bits() == v.prefix.Addr().BitLen() {
		return v.prefix.Addr().String()
	}
	return v.prefix.String()
}

func (v ipValue) Equal(other value.ExtensionPayload) bool {
	o, ok := other.(ipValue)
	if !ok {
		return false
	}
	return v.prefix == o.prefix
}

func asIPValue(v value.Value) (ipValue, bool) {
	ext, ok := v.(value.Extension)
	if !ok || ext.Name != "ip" {
		return ipValue{}, false
	}
	p, ok := ext.Payload.(ipValue)
	return p, ok
}

// IPExtension registers Cedar's ip() constructor and the isIpv4,
// isIpv6, isLoopback, isMulticast, and isInRange methods, each
// desugared from method-call syntax into ExtensionCallExpr with the
// receiver as args[0].
func IPExtension() Extension {
	return Extension{
		Name: "ip",
		Functions: map[string]Signature{
			"ip": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				s, ok := args[0].(string)
				if !ok {
					return nil, fmt.Errorf("ip() requires a string argument")
				}
				v, err := parseIP(s)
				if err != nil {
					return nil, err
				}
				return value.Extension{Name: "ip", Payload: v}, nil
			}},
			"isIpv4": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				v, ok := asIPValue(args[0])
				if !ok {
					return nil, fmt.Errorf("isIpv4() requires an ip receiver")
				}
				return v.prefix.Addr().Is4(), nil
			}},
			"isIpv6": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				v, ok := asIPValue(args[0])
				if !ok {
					return nil, fmt.Errorf("isIpv6() requires an ip receiver")
				}
				return v.prefix.Addr().Is6() && !v.prefix.Addr().Is4In6(), nil
			}},
			"isLoopback": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				v, ok := asIPValue(args[0])
				if !ok {
					return nil, fmt.Errorf("isLoopback() requires an ip receiver")
				}
				return v.prefix.Addr().IsLoopback(), nil
			}},
			"isMulticast": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				v, ok := asIPValue(args[0])
				if !ok {
					return nil, fmt.Errorf("isMulticast() requires an ip receiver")
				}
				return v.prefix.Addr().IsMulticast(), nil
			}},
			"isInRange": {Arity: 2, Call: func(args []value.Value) (value.Value, error) {
				recv, ok := asIPValue(args[0])
				if !ok {
					return nil, fmt.Errorf("isInRange() requires an ip receiver")
				}
				rng, ok := asIPValue(args[1])
				if !ok {
					return nil, fmt.Errorf("isInRange() requires an ip argument")
				}
				return rng.prefix.Contains(recv.prefix.Addr()) && recv.prefix.Bits() >= rng.prefix.Bits(), nil
			}},
		},
	}
}
