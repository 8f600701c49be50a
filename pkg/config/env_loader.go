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
	"context"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/carverauto/tailscale-inventory/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")

	errUnsupportedEnvField = errors.New("field cannot be set from the environment")
)

// EnvConfigLoader overlays environment variables onto a config struct.
// Each json-tagged field maps to PREFIX + upper-cased tag, nested sections
// add their own tag and an underscore: logging.level is read from
// TAILSCALE_INVENTORY_LOGGING_LEVEL.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader. PREFIX + CONFIG_JSON, when set, replaces
// the whole document; otherwise individual variables override fields.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if jsonConfig := os.Getenv(e.prefix + "CONFIG_JSON"); jsonConfig != "" {
		if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %sCONFIG_JSON: %w", e.prefix, err)
		}

		e.debug().Msg("Loaded configuration from CONFIG_JSON environment variable")

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	return e.loadStruct(v, e.prefix)
}

func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		envName := prefix + strings.ToUpper(name)

		if err := e.setField(field, envName); err != nil {
			return err
		}
	}

	return nil
}

func (e *EnvConfigLoader) setField(field reflect.Value, envName string) error {
	if isSection(field) {
		return e.loadSection(field, envName+"_")
	}

	value := os.Getenv(envName)
	if value == "" {
		return nil
	}

	switch target := field.Addr().Interface().(type) {
	case encoding.TextUnmarshaler:
		if err := target.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", envName, err)
		}
	case *string:
		*target = value
	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
		}

		*target = b
	default:
		return fmt.Errorf("%w: %s (%s)", errUnsupportedEnvField, envName, field.Type())
	}

	e.debug().Str("env", envName).Msg("Applied environment override")

	return nil
}

// loadSection fills a nested struct. A nil section pointer stays nil unless
// a variable under its prefix is set, so callers can tell "not configured"
// apart from "configured with zero values".
func (e *EnvConfigLoader) loadSection(field reflect.Value, prefix string) error {
	if field.Kind() == reflect.Struct {
		return e.loadStruct(field, prefix)
	}

	if field.IsNil() {
		if !hasEnvWithPrefix(prefix) {
			return nil
		}

		field.Set(reflect.New(field.Type().Elem()))
	}

	return e.loadStruct(field.Elem(), prefix)
}

// debug returns a debug event, or nil when no logger is set; zerolog
// treats a nil event as disabled.
func (e *EnvConfigLoader) debug() *zerolog.Event {
	if e.logger == nil {
		return nil
	}

	return e.logger.Debug()
}

func isSection(field reflect.Value) bool {
	if _, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return false
	}

	switch field.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return field.Type().Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

func hasEnvWithPrefix(prefix string) bool {
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, prefix) && value != "" {
			return true
		}
	}

	return false
}
