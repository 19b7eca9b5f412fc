package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunProps executes a prop script and returns the boxes it declared.
// Scripts call box(name, size, position, color, emissive) once per box.
func RunProps(name string) ([]BoxSpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	boxes, err := runPropsSource(src)
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}
	return boxes, nil
}

func runPropsSource(src []byte) ([]BoxSpec, error) {
	var boxes []BoxSpec

	script := tengo.NewScript(src)
	_ = script.Add("box", &tengo.UserFunction{Name: "box", Value: func(args ...tengo.Object) (tengo.Object, error) {
		b, err := boxFromArgs(args)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
		return tengo.TrueValue, nil
	}})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	return boxes, nil
}

func boxFromArgs(args []tengo.Object) (BoxSpec, error) {
	if len(args) < 4 {
		return BoxSpec{}, tengo.ErrWrongNumArguments
	}
	name, ok := tengo.ToString(args[0])
	if !ok {
		return BoxSpec{}, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
	}
	size, err := vecArg("size", args[1])
	if err != nil {
		return BoxSpec{}, err
	}
	pos, err := vecArg("position", args[2])
	if err != nil {
		return BoxSpec{}, err
	}
	hex, ok := tengo.ToString(args[3])
	if !ok {
		return BoxSpec{}, tengo.ErrInvalidArgumentType{Name: "color", Expected: "string", Found: args[3].TypeName()}
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return BoxSpec{}, err
	}

	b := BoxSpec{Name: name, Size: size, Position: pos, Color: YAMLColor{Color: c}}
	if len(args) > 4 {
		e, ok := tengo.ToFloat64(args[4])
		if !ok {
			return BoxSpec{}, tengo.ErrInvalidArgumentType{Name: "emissive", Expected: "float", Found: args[4].TypeName()}
		}
		b.Emissive = e
	}
	return b, nil
}

func vecArg(name string, o tengo.Object) (Vec3, error) {
	var arr []tengo.Object
	switch v := o.(type) {
	case *tengo.Array:
		arr = v.Value
	case *tengo.ImmutableArray:
		arr = v.Value
	default:
		return Vec3{}, tengo.ErrInvalidArgumentType{Name: name, Expected: "array", Found: o.TypeName()}
	}
	if len(arr) != 3 {
		return Vec3{}, fmt.Errorf("%s: want 3 components, got %d", name, len(arr))
	}
	var out Vec3
	for i, el := range arr {
		f, ok := tengo.ToFloat64(el)
		if !ok {
			return Vec3{}, tengo.ErrInvalidArgumentType{Name: name, Expected: "number", Found: el.TypeName()}
		}
		out[i] = f
	}
	return out, nil
}
