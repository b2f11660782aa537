// Package keyvalue converts a go-simpler/env tagged configuration struct into a
// sortable slice of key/values, and renders them as a bash script that sets
// the variables.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"btoi.lol/ints"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct with `env` tags into a key/value list. cfg must be a
// struct value, not a pointer. Fields without an env tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val []byte
		switch f := v.Field(i); f.Kind() {
		case reflect.String:
			val = []byte(f.String())
		case reflect.Bool:
			val = strconv.AppendBool(val, f.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if d, ok := f.Interface().(time.Duration); ok {
				val = []byte(d.String())
			} else {
				val = ints.AppendInt(val, f.Int())
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			val = ints.AppendUint(val, f.Uint())
		case reflect.Slice:
			if arr, ok := f.Interface().([]string); ok {
				val = []byte(strings.Join(arr, ","))
			}
		}
		m = append(m, KV{k, string(val)})
	}
	return
}

// PrintEnv renders the key/values of a config struct to a provided io.Writer.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, quote(v.Value))
	}
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'$`\\") {
		return strconv.Quote(s)
	}
	return s
}
