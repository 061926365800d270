package utils

import "time"

func BoolPtr(b bool) *bool {
	return &b
}

func IntPtr(i int) *int {
	return &i
}

func StringPtr(s string) *string {
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func GetBoolValue(ptr *bool, defaultValue bool) bool {
	if ptr == nil {
		return defaultValue
	}

	return *ptr
}

func GetIntValue(ptr *int, defaultValue int) int {
	if ptr == nil {
		return defaultValue
	}

	return *ptr
}
