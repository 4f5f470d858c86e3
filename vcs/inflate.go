package vcs

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigKeyError is returned by Inflate when a key names both a value and a
// section, such as "section" alongside "section.key".
type ConfigKeyError struct {
	Key string
}

func (e ConfigKeyError) Error() string {
	return fmt.Sprintf("vcs: config key %q is both a value and a section", e.Key)
}

// Inflate turns a flat mapping with dotted keys into a nested one:
// {"a.x": "3", "a.y": "2"} becomes {"a": {"x": "3", "y": "2"}}. Keys are
// processed in sorted order so a value/section collision always assigns the
// value first and fails deterministically on the nested key.
func Inflate(flat map[string]string, sep string) (map[string]interface{}, error) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make(map[string]interface{})
	for _, k := range keys {
		if err := inflateSet(res, k, flat[k], sep); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func inflateSet(dst map[string]interface{}, key, val, sep string) error {
	i := strings.Index(key, sep)
	if i < 0 {
		if _, isMap := dst[key].(map[string]interface{}); isMap {
			return ConfigKeyError{Key: key}
		}
		dst[key] = val
		return nil
	}

	head, tail := key[:i], key[i+len(sep):]
	sub, ok := dst[head]
	if !ok {
		m := make(map[string]interface{})
		dst[head] = m
		return inflateSet(m, tail, val, sep)
	}
	m, ok := sub.(map[string]interface{})
	if !ok {
		return ConfigKeyError{Key: head}
	}
	return inflateSet(m, tail, val, sep)
}
