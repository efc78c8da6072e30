package utils

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/coinmetro-go/cmapi/support/logger"
)

// LogConfig logs out the config file
func LogConfig(l logger.Logger, cfg fmt.Stringer) {
	l.Info("configs:")
	for _, line := range strings.Split(strings.TrimSuffix(cfg.String(), "\n"), "\n") {
		l.Infof("     %s", line)
	}
}

// StructString is a helper method that serizlies configs; the transform keys are always flattened,
// i.e specify the key meant to be on an inner object at a top level key on the transform map
func StructString(s interface{}, indentLevel uint8, transforms map[string]func(interface{}) interface{}) string {
	var buf bytes.Buffer
	numFields := reflect.TypeOf(s).NumField()
	for i := 0; i < numFields; i++ {
		field := reflect.TypeOf(s).Field(i)
		fieldName := field.Name
		fieldDisplayName := field.Tag.Get("toml")
		if fieldDisplayName == "" {
			fieldDisplayName = fieldName
		}

		// set the transformation function
		transformFn := passthrough
		if fn, ok := transforms[fieldDisplayName]; ok {
			transformFn = fn
		}

		if !reflect.ValueOf(s).Field(i).CanInterface() {
			continue
		}

		currentField := reflect.ValueOf(s).Field(i)
		value := currentField.Interface()
		kind := currentField.Kind()
		if kind == reflect.Ptr && !currentField.IsNil() {
			derefField := reflect.Indirect(currentField)
			value = derefField.Interface()
			kind = derefField.Kind()
		}

		for indentIdx := 0; indentIdx < int(indentLevel); indentIdx++ {
			buf.WriteString("    ")
		}
		if kind == reflect.Struct {
			subString := StructString(value, indentLevel+1, transforms)
			buf.WriteString(fmt.Sprintf("%s:\n%s", fieldDisplayName, subString))
		} else {
			transformedValue := transformFn(value)
			buf.WriteString(fmt.Sprintf("%s: %+v\n", fieldDisplayName, transformedValue))
		}
	}
	return buf.String()
}

// Passthrough returns the input
func passthrough(i interface{}) interface{} {
	return i
}

// Hide returns an empty string
func Hide(i interface{}) interface{} {
	return ""
}

// HideNonEmpty masks a set value so that logs show whether a secret was provided without showing it
func HideNonEmpty(i interface{}) interface{} {
	if s, ok := i.(string); ok && s == "" {
		return ""
	}
	return "[hidden]"
}
