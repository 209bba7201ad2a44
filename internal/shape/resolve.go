package shape

import (
	"fmt"

	"schema-classgen/internal/common"
	"schema-classgen/internal/schema"
)

// Shape describes the constructor argument surface resolved from a schema.
type Shape struct {
	// Positional reports whether the constructor accepts a leading
	// positional-variadic argument.
	Positional bool
	// Required and Optional are disjoint named-argument sets. Only
	// identifier-valid property names ever enter them.
	Required common.Set
	Optional common.Set
	// Additional reports whether unknown keys are forwarded through a
	// trailing keyword-variadic channel.
	Additional bool
}

// Names returns the union of the named-argument sets.
func (s Shape) Names() common.Set {
	return s.Required.Union(s.Optional)
}

// Resolve reduces a classified schema to its constructor argument shape.
// Resolution fails only on an unclassifiable schema; it never yields a
// partially resolved shape.
func Resolve(in schema.Info) (Shape, error) {
	kind, err := in.Kind()
	if err != nil {
		return Shape{}, err
	}

	switch kind {
	case schema.KindAllOf:
		return resolveAllOf(in)

	case schema.KindEmpty, schema.KindCompound:
		// Static shape cannot be determined; accept anything.
		return Shape{
			Positional: true,
			Required:   common.NewSet(),
			Optional:   common.NewSet(),
			Additional: true,
		}, nil

	case schema.KindValue:
		// One positional value, no named properties, no additional channel.
		return Shape{
			Positional: true,
			Required:   common.NewSet(),
			Optional:   common.NewSet(),
		}, nil

	case schema.KindObject:
		return resolveObject(in), nil
	}

	return Shape{}, fmt.Errorf("unhandled schema kind %v", kind)
}

// resolveAllOf resolves every branch and combines them: a value satisfying
// every branch may use any branch's named properties, but keeps the variadic
// channels only when every branch grants them.
func resolveAllOf(in schema.Info) (Shape, error) {
	out := Shape{
		Positional: true,
		Required:   common.NewSet(),
		Optional:   common.NewSet(),
		Additional: true,
	}

	for _, branch := range in.AllOf() {
		bs, err := Resolve(branch)
		if err != nil {
			return Shape{}, err
		}

		out.Positional = out.Positional && bs.Positional
		out.Additional = out.Additional && bs.Additional
		out.Required = out.Required.Union(bs.Required)
		out.Optional = out.Optional.Union(bs.Optional)
	}

	// A name required by one branch and optional in another is required.
	out.Optional = out.Optional.Diff(out.Required)

	return out, nil
}

func resolveObject(in schema.Info) Shape {
	required := common.NewSet()

	for _, name := range in.Required() {
		if common.IsValidIdentifier(name) {
			required.Add(name)
		}
	}

	optional := common.NewSet()

	for _, p := range in.Properties() {
		if common.IsValidIdentifier(p.Name) && !required.Has(p.Name) {
			optional.Add(p.Name)
		}
	}

	return Shape{
		Required:   required,
		Optional:   optional,
		Additional: in.AdditionalAllowed(),
	}
}
