package gen

import (
	"strings"

	"schema-classgen/internal/common"
	"schema-classgen/internal/schema"
)

// Docstring renders the documentation block for a generated class: the
// wrapped schema description (or a "<classname> schema wrapper" fallback),
// followed by an attributes section when the schema declares properties.
// Output is deterministic for identical input.
func Docstring(classname string, in schema.Info, indent int) string {
	doc := []string{classname + " schema wrapper"}

	if desc := in.Description(); desc != "" {
		doc = []string{""}

		for _, line := range strings.Split(desc, "\n") {
			doc = append(doc, common.Wrap(line, common.WrapOptions{})...)
		}
	}

	if props := in.Properties(); len(props) > 0 {
		doc = append(doc, "", "Attributes", "----------")

		for _, p := range props {
			doc = append(doc, p.Name+" : "+p.Info.ShortDescription())
			doc = append(doc, common.Wrap(p.Info.Description(), common.WrapOptions{
				InitialIndent:    "    ",
				SubsequentIndent: "    ",
			})...)
		}
	}

	if len(doc) > 1 {
		doc = append(doc, "")
	}

	return strings.Join(doc, "\n"+strings.Repeat(" ", indent))
}
