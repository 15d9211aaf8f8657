// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshal populates the fields of a flat struct from the resolver's
// sources. Each exported field is looked up by its name, or by its
// "setting" tag when one is present; fields tagged "-" are skipped.
// String values are coerced to the field's type, so integer and boolean
// fields work as expected. Fields no source has a value for are left
// untouched.
//
//	var cfg struct {
//	    Port    int    `setting:"Port"`
//	    Debug   bool
//	    ApiKey  string
//	}
//	err := r.Unmarshal(&cfg)
func (r *Resolver) Unmarshal(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("settings: Unmarshal target must be a pointer to a struct, got %T", v)
	}

	rt := rv.Elem().Type()
	values := make(map[string]string)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		tag, ok := field.Tag.Lookup("setting")
		if ok {
			if tag == "-" {
				continue
			}
			name = tag
		}

		raw, ok := r.src.Lookup(name)
		if !ok {
			continue
		}
		values[name] = raw
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "setting",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}
