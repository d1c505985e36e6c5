package reader

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const listSeparator = ";"

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// SetField parses value as fieldType and stores it in the exported field path of obj.
// Pointer fields are allocated on demand; an empty value leaves the field untouched.
func SetField(obj reflect.Value, path string, value string, fieldType string, dateFormat string) error {
	field := obj.FieldByName(path)
	if !field.IsValid() {
		return fmt.Errorf("invalid field path: %s", path)
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field %s", path)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if field.Kind() == reflect.Pointer {
		target := reflect.New(field.Type().Elem())
		if err := setValue(target.Elem(), path, value, fieldType, dateFormat); err != nil {
			return err
		}
		field.Set(target)
		return nil
	}
	return setValue(field, path, value, fieldType, dateFormat)
}

func setValue(field reflect.Value, path, value, fieldType, dateFormat string) error {
	switch fieldType {
	case "", "string":
		if field.Kind() != reflect.String {
			return fmt.Errorf("field %s is not a string", path)
		}
		field.SetString(value)

	case "int":
		switch field.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
		default:
			return fmt.Errorf("field %s is not an integer type", path)
		}
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int value '%s': %w", value, err)
		}
		field.SetInt(intVal)

	case "float":
		if field.Kind() != reflect.Float64 && field.Kind() != reflect.Float32 {
			return fmt.Errorf("field %s is not a float type", path)
		}
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float value '%s': %w", value, err)
		}
		field.SetFloat(floatVal)

	case "bool":
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("field %s is not a bool", path)
		}
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("failed to parse bool value '%s': %w", value, err)
		}
		field.SetBool(boolVal)

	case "date", "datetime":
		if field.Type() != timeType {
			return fmt.Errorf("field %s is not time.Time", path)
		}
		layout := "2006-01-02"
		if fieldType == "datetime" {
			layout = dateFormat
		}
		t, err := time.Parse(layout, value)
		if err != nil {
			return fmt.Errorf("failed to parse %s value '%s': %w", fieldType, value, err)
		}
		field.Set(reflect.ValueOf(t))

	case "uuid":
		if field.Type() != uuidType {
			return fmt.Errorf("field %s is not uuid.UUID", path)
		}
		id, err := uuid.Parse(value)
		if err != nil {
			return fmt.Errorf("failed to parse uuid value '%s': %w", value, err)
		}
		field.Set(reflect.ValueOf(id))

	case "list":
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("field %s is not a string list", path)
		}
		var items []string
		for _, item := range strings.Split(value, listSeparator) {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		field.Set(reflect.ValueOf(items))

	default:
		return fmt.Errorf("unsupported field type: %s", fieldType)
	}
	return nil
}
