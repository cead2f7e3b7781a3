// Package ecmaregex converts between delimited ECMA-262 regex literals
// ("/pattern/flags") and native pattern/flag pairs.
//
// The translation covers pattern strings and flag semantics only; it does not
// interpret or rewrite the regular expression itself.
package ecmaregex

import (
	"fmt"
	"strings"
)

// Flags is the set of named regex options recognized by the converter.
type Flags uint8

const (
	// IgnoreCase corresponds to the ECMA "i" flag and the native "(?i)" group.
	IgnoreCase Flags = 1 << iota
	// Multiline corresponds to the ECMA "m" flag and the native "(?m)" group.
	Multiline
)

// flagCodes lists the recognized single-character ECMA flag codes in canonical
// output order. Rendering iterates this table so output is reproducible
// regardless of how the flag set was assembled.
var flagCodes = []struct {
	code byte
	flag Flags
}{
	{'i', IgnoreCase},
	{'m', Multiline},
}

// Has reports whether all flags in other are active in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String renders the ECMA flag suffix ("", "i", "m" or "im").
func (f Flags) String() string {
	var b strings.Builder
	for _, fc := range flagCodes {
		if f.Has(fc.flag) {
			b.WriteByte(fc.code)
		}
	}
	return b.String()
}

// InlinePrefix renders the native inline group enabling the flags, for example
// "(?im)". It returns the empty string when no recognized flag is active, so
// the result can be prepended to a pattern unconditionally.
func (f Flags) InlinePrefix() string {
	s := f.String()
	if s == "" {
		return ""
	}
	return "(?" + s + ")"
}

// IsECMARegex reports whether s is a delimited ECMA regex literal: a leading
// "/", a closing "/" delimiter, and a (possibly empty) trailing flag-code run.
// A pattern that merely starts with "/" without a closing delimiter does not
// qualify. Unrecognized letters in the flag run are tolerated here and ignored
// by ToNative.
func IsECMARegex(s string) bool {
	if len(s) < 2 || s[0] != '/' {
		return false
	}
	end := strings.LastIndexByte(s, '/')
	if end == 0 {
		// The leading slash is the only one; no closing delimiter.
		return false
	}
	for i := end + 1; i < len(s); i++ {
		if !isFlagCode(s[i]) {
			return false
		}
	}
	return true
}

func isFlagCode(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ToNative converts a delimited ECMA literal into a native pattern and flag
// set. Recognized flag codes are "i" and "m"; other codes in the suffix are
// ignored. Calling ToNative on input that is not an ECMA literal is a caller
// contract violation and fails loudly; check IsECMARegex first.
func ToNative(s string) (string, Flags, error) {
	if !IsECMARegex(s) {
		return "", 0, fmt.Errorf("ecmaregex: %q is not a delimited ECMA regex literal", s)
	}
	end := strings.LastIndexByte(s, '/')
	pattern := s[1:end]
	var flags Flags
	for i := end + 1; i < len(s); i++ {
		for _, fc := range flagCodes {
			if fc.code == s[i] {
				flags |= fc.flag
			}
		}
	}
	return pattern, flags, nil
}

// ToECMA renders a native pattern and flag set as a delimited ECMA literal.
// Flags render in a fixed order so the output is deterministic; only
// recognized flags are ever emitted.
func ToECMA(pattern string, flags Flags) string {
	return "/" + pattern + "/" + flags.String()
}
