package validators

import (
	"fmt"
	"regexp"

	"github.com/AntonioAngelino/jsonmodels"
	"github.com/AntonioAngelino/jsonmodels/ecmaregex"
)

// Recognized flag names for Regex. Names outside this set are silently
// dropped; the laxity is intentional so dynamically assembled declarations
// (config files, generated code) need no pre-filtering.
const (
	FlagIgnoreCase = "ignorecase"
	FlagMultiline  = "multiline"
)

var namedFlags = map[string]ecmaregex.Flags{
	FlagIgnoreCase: ecmaregex.IgnoreCase,
	FlagMultiline:  ecmaregex.Multiline,
}

// RegexValidator checks string values against a regular expression.
type RegexValidator struct {
	pattern    string
	flags      ecmaregex.Flags
	re         *regexp.Regexp
	compileErr error
}

// Regex builds a regex validator. The pattern may be a native pattern string
// or a delimited ECMA literal ("/pattern/flags"); either way the validator
// stores the native form. Flags embedded in an ECMA literal are merged over
// the names supplied here and win on overlap.
func Regex(pattern string, flagNames ...string) *RegexValidator {
	var flags ecmaregex.Flags
	for _, name := range flagNames {
		if f, ok := namedFlags[name]; ok {
			flags |= f
		}
	}
	if ecmaregex.IsECMARegex(pattern) {
		p, embedded, _ := ecmaregex.ToNative(pattern)
		pattern = p
		flags |= embedded
	}
	v := &RegexValidator{pattern: pattern, flags: flags}
	v.re, v.compileErr = regexp.Compile(flags.InlinePrefix() + pattern)
	return v
}

// Validate implements jsonmodels.Validator. The match is a search: the
// pattern may match anywhere in the value. Non-string values fail with a
// ValidationError carrying the offending type; an uncompilable pattern
// surfaces its compile error unwrapped.
func (v *RegexValidator) Validate(value any) error {
	if v.compileErr != nil {
		return v.compileErr
	}
	s, ok := value.(string)
	if !ok {
		return jsonmodels.NewValidationError(
			jsonmodels.CodeInvalidType,
			fmt.Sprintf("expected string to match against pattern %q, got %T", v.pattern, value),
			map[string]any{"pattern": v.pattern, "type": fmt.Sprintf("%T", value)},
		)
	}
	if !v.re.MatchString(s) {
		return jsonmodels.NewValidationError(
			jsonmodels.CodePattern,
			fmt.Sprintf("value %q did not match pattern %q", s, v.pattern),
			map[string]any{"pattern": v.pattern, "value": s},
		)
	}
	return nil
}

// ModifySchema implements jsonmodels.SchemaModifier. The pattern key always
// carries the ECMA-delimited rendering, per the JSON Schema convention that
// pattern values are ECMA regular expressions.
func (v *RegexValidator) ModifySchema(f *jsonmodels.Fragment) {
	f.Set("pattern", ecmaregex.ToECMA(v.pattern, v.flags))
}
