// SPDX-License-Identifier: Apache-2.0

package value

// ExtensionPayload is the opaque content of an extension value (an
// ipaddr, a decimal, ...). Implementations must have total equality and
// a stable Display form; the core never inspects the payload beyond
// these two operations.
type ExtensionPayload interface {
	String() string
	Equal(other ExtensionPayload) bool
}

// Extension is a named extension-function value, e.g. Extension{Name:
// "ip", Payload: someIPAddr}.
type Extension struct {
	Name    string
	Payload ExtensionPayload
}

func (e Extension) String() string {
	return e.Payload.String()
}
