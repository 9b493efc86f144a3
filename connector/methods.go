package connector

import "sort"

// DefaultPushMethods lists methods requiring out-of-band event delivery
var DefaultPushMethods = []string{"eth_subscribe"}

// MethodSet is a set of method names
type MethodSet map[string]struct{}

// Has returns true if method is in the set
func (s MethodSet) Has(method string) bool {
	_, ok := s[method]
	return ok
}

// Add adds methods
func (s MethodSet) Add(methods ...string) {
	for _, method := range methods {
		if method != "" {
			s[method] = struct{}{}
		}
	}
}

// Methods returns sorted method names
func (s MethodSet) Methods() []string {
	ret := make([]string, 0, len(s))
	for method := range s {
		ret = append(ret, method)
	}
	sort.Strings(ret)
	return ret
}

// NewMethodSet creates a method set
func NewMethodSet(methods ...string) MethodSet {
	ret := MethodSet{}
	ret.Add(methods...)
	return ret
}
