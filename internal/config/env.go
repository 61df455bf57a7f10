package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnvOverrides replaces every setting whose `env` tag names a variable that is set,
// so DB_DRIVER=memory or SEED_ON_STARTUP=true win over configs/config.yaml. Nested
// sections (server, database, logging, seed) are walked recursively.
func applyEnvOverrides(section reflect.Value, prefix string) error {
	if section.Kind() == reflect.Ptr {
		section = section.Elem()
	}
	if section.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < section.NumField(); i++ {
		field, meta := section.Field(i), section.Type().Field(i)
		path := prefix + meta.Name

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field, path+"."); err != nil {
				return err
			}
			continue
		}

		name := meta.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := setSetting(field, raw); err != nil {
			return fmt.Errorf("invalid %s for %s: %w", name, path, err)
		}
	}
	return nil
}

// setSetting parses raw into one of the kinds Config uses: strings, ints, bools and
// comma separated string lists such as SERVER_ALLOWED_ORIGINS.
func setSetting(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("not a boolean: %w", err)
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported list type %s", field.Type())
		}
		items := make([]string, 0)
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		field.Set(reflect.ValueOf(items))
	default:
		return fmt.Errorf("unsupported setting type %s", field.Kind())
	}
	return nil
}
