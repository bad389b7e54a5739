package tagalog

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\$[DTM]`)

// resolveTagging turns the tagging argument of Log into a candidate list.
func resolveTagging(tagging any) ([]Tag, error) {
	switch t := tagging.(type) {
	case nil:
		return []Tag{Untagged}, nil
	case Tag:
		return []Tag{t}, nil
	case string:
		return []Tag{Tag(t)}, nil
	case []Tag:
		return t, nil
	case []string:
		tags := make([]Tag, len(t))
		for i, s := range t {
			tags[i] = Tag(s)
		}
		return tags, nil
	case map[Tag]struct{}:
		tags := make([]Tag, 0, len(t))
		for tag := range t {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
		return tags, nil
	}

	// Caller defined string types and loosely typed collections.
	v := reflect.ValueOf(tagging)
	switch v.Kind() {
	case reflect.String:
		return []Tag{Tag(v.String())}, nil
	case reflect.Slice, reflect.Array:
		tags := make([]Tag, v.Len())
		for i := range tags {
			tag, ok := tagValue(v.Index(i))
			if !ok {
				return nil, fmt.Errorf("%w, got %T with a %s item", ErrTaggingType, tagging, v.Index(i).Kind())
			}
			tags[i] = tag
		}
		return tags, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w, got %T", ErrTaggingType, tagging)
		}
		tags := make([]Tag, 0, v.Len())
		for _, key := range v.MapKeys() {
			tags = append(tags, Tag(key.String()))
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
		return tags, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrTaggingType, tagging)
	}
}

// tagValue unwraps interface items and accepts string kinds only.
func tagValue(v reflect.Value) (Tag, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String {
		return "", false
	}
	return Tag(v.String()), true
}

// formatMessage renders the accepted message shapes as text.
func formatMessage(message any) (string, error) {
	switch m := message.(type) {
	case string:
		return m, nil
	case Tag:
		return string(m), nil
	case []byte:
		return string(m), nil
	case nil:
		return "", fmt.Errorf("%w, got nil", ErrMessageType)
	}

	v := reflect.ValueOf(message)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Slice, reflect.Array:
		return formatSequence(v), nil
	case reflect.Map:
		return formatMapping(v), nil
	default:
		return "", fmt.Errorf("%w, got %T", ErrMessageType, message)
	}
}

func formatSequence(v reflect.Value) string {
	items := make([]string, v.Len())
	for i := range items {
		items[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func formatMapping(v reflect.Value) string {
	type pair struct{ key, value string }
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			key:   fmt.Sprint(iter.Key().Interface()),
			value: fmt.Sprint(iter.Value().Interface()),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.key)
		b.WriteString(": ")
		b.WriteString(p.value)
	}
	b.WriteByte('}')
	return b.String()
}

// renderLine fills the message template. Substituted text is not rescanned,
// so a message containing "$T" is written as is.
func renderLine(format, date string, tag Tag, message string) string {
	return placeholderRe.ReplaceAllStringFunc(format, func(p string) string {
		switch p {
		case "$D":
			return date
		case "$T":
			return string(tag)
		default:
			return message
		}
	})
}
