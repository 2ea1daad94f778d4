package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")
	ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"strip_html":  StripHTML,
		"no_control":  RemoveControlChars,
		"object_key":  ObjectKey,
		"text":        func(s string) string { return RemoveExtraWhitespace(Trim(s)) },
	}
)

// RegisterSanitizer makes fn available to sanitize tags under name.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct rewrites the tagged string fields of the struct v points to.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return walk(rv.Elem())
}

func walk(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rv.Field(i)
		tag := rt.Field(i).Tag.Get("sanitize")
		if !f.CanSet() || tag == "-" {
			continue
		}
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}

		switch {
		case f.Kind() == reflect.Struct:
			if err := walk(f); err != nil {
				return err
			}
		case tag == "":
		case f.Kind() == reflect.String:
			s, err := apply(f.String(), tag)
			if err != nil {
				return fmt.Errorf("%s: %w", rt.Field(i).Name, err)
			}
			f.SetString(s)
		case f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String:
			for j := range f.Len() {
				s, err := apply(f.Index(j).String(), tag)
				if err != nil {
					return fmt.Errorf("%s[%d]: %w", rt.Field(i).Name, j, err)
				}
				f.Index(j).SetString(s)
			}
		}
	}
	return nil
}

// apply runs the comma-separated sanitizers of tag over value, left to right.
func apply(value, tag string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			n, err := strconv.Atoi(limit)
			if err != nil || n <= 0 {
				return "", fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
			}
			value = MaxLength(value, n)
			continue
		}
		fn, ok := registry[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		value = fn(value)
	}
	return value, nil
}
