package gen

import (
	"fmt"
	"strings"

	"schema-classgen/internal/common"
	"schema-classgen/internal/schema"
	"schema-classgen/internal/shape"
)

// Sentinel is the distinguished "unset" default in emitted constructors. It
// is distinct from every legitimate schema value, including null.
const Sentinel = "Undefined"

// InitCode renders the delegating constructor for a schema node.
//
// Parameter order: nodefault names first as plain required parameters (for
// subclasses that intercept arguments before delegating); else a leading
// *args when the shape is positional-variadic; then required and optional
// keyword parameters, each block sorted, defaulted to the sentinel; then
// **kwds when additional properties are forwarded. The declared names and
// the forwarded names are always the same set.
func InitCode(classname string, node schema.Node, indent int, nodefault []string) (string, error) {
	sh, err := shape.Resolve(schema.NewInfo(node))
	if err != nil {
		return "", fmt.Errorf("resolving constructor shape for %s: %w", classname, err)
	}

	nd := common.NewSet(nodefault...)
	required := sh.Required.Diff(nd)
	optional := sh.Optional.Diff(nd)

	args := []string{"self"}

	var superArgs []string

	switch {
	case len(nd) > 0:
		args = append(args, nd.Sorted()...)
	case sh.Positional:
		args = append(args, "*args")
		superArgs = append(superArgs, "*args")
	}

	keywords := append(required.Sorted(), optional.Sorted()...)
	for _, name := range keywords {
		args = append(args, name+"="+Sentinel)
	}

	for _, name := range append(nd.Sorted(), keywords...) {
		superArgs = append(superArgs, name+"="+name)
	}

	if sh.Additional {
		args = append(args, "**kwds")
		superArgs = append(superArgs, "**kwds")
	}

	arglist := wrapArgs(args, "def __init__(")
	superList := wrapArgs(superArgs, fmt.Sprintf("    super(%s, self).__init__(", classname))

	code := fmt.Sprintf("def __init__(%s):\n    super(%s, self).__init__(%s)\n",
		arglist, classname, superList)

	if indent > 0 {
		code = strings.ReplaceAll(code, "\n", "\n"+strings.Repeat(" ", indent))
	}

	return code, nil
}

// wrapArgs joins the arguments and wraps them with a hanging indent aligned
// to the opening parenthesis of the surrounding call or definition.
func wrapArgs(args []string, opener string) string {
	hang := strings.Repeat(" ", len(opener))

	lines := common.Wrap(strings.Join(args, ", "), common.WrapOptions{
		InitialIndent:    hang,
		SubsequentIndent: hang,
	})

	return strings.TrimLeft(strings.Join(lines, "\n"), " ")
}
