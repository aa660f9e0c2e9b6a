package services

import "reflect"

// IDOf reads the uint ID field every model and response declares.
func IDOf(entity any) (uint, bool) {
	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0, false
	}
	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.Uint {
		return 0, false
	}
	return uint(f.Uint()), true
}
