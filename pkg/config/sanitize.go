/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"reflect"
	"strings"
)

const redacted = "[redacted]"

// Sanitize returns a map view of cfg suitable for logging. Fields tagged
// `sensitive:"true"` are replaced by a placeholder when set.
func Sanitize(cfg interface{}) interface{} {
	return sanitizeValue(reflect.ValueOf(cfg))
}

func sanitizeValue(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		return sanitizeValue(v.Elem())
	}

	if v.Kind() != reflect.Struct {
		return v.Interface()
	}

	t := v.Type()
	out := make(map[string]interface{}, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}

		if name == "" {
			name = field.Name
		}

		fv := v.Field(i)

		if field.Tag.Get("sensitive") == "true" {
			if !fv.IsZero() {
				out[name] = redacted
			}

			continue
		}

		out[name] = sanitizeValue(fv)
	}

	return out
}
