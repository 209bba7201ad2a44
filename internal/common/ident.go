package common

import "regexp"

// identRE matches names that start with a letter or underscore and continue
// with word characters only.
var identRE = regexp.MustCompile(`^[^\d\W]\w*$`)

// reservedWords are names that can never appear as keyword parameters in the
// emitted constructor source.
var reservedWords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true, "nonlocal": true,
	"not": true, "or": true, "pass": true, "raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// IsValidIdentifier reports whether name can be used verbatim as a keyword
// parameter name in generated source.
func IsValidIdentifier(name string) bool {
	return identRE.MatchString(name) && !reservedWords[name]
}
