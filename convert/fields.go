package convert

import (
	"reflect"
	"strings"
)

type field struct {
	name      string
	index     []int
	omitEmpty bool
}

// structFields lists the exported fields of t in declaration order.
// Untagged embedded structs contribute their own fields.
func structFields(t reflect.Type) []field {
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		tag, tagged := sf.Tag.Lookup("value")
		if !tagged {
			tag, tagged = sf.Tag.Lookup("json")
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" && opts == "" {
			continue
		}

		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			for _, inner := range structFields(sf.Type) {
				inner.index = append([]int{i}, inner.index...)
				fields = append(fields, inner)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{
			name:      name,
			index:     sf.Index,
			omitEmpty: strings.Contains(","+opts+",", ",omitempty,"),
		})
	}
	return fields
}
