// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the given .env files and returns a lookup that prefers the
// process environment, then the files. Later files override earlier ones.
func Load(files ...string) (LookupFunc, error) {
	vars := make(map[string]string)
	for _, name := range files {
		m, err := godotenv.Read(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", name, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	return Layer(os.LookupEnv, MapLookup(vars)), nil
}

// MapLookup returns a lookup over a fixed map.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Layer returns a lookup that tries each lookup in order. A variable that
// is set but empty does not hide later lookups.
func Layer(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}
