package config

import "reflect"

// ResetCache drops the cached value for T so a test can reload it.
func ResetCache[T any]() {
	cache.Delete(reflect.TypeFor[T]())
}
