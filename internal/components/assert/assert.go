// Package assert panics on programmer errors, never use it to check input
// that comes from a user or a remote site.
package assert

import "fmt"

// NotNil panics if value is nil, what names the value in the panic message.
func NotNil(value any, what string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", what))
	}
}

// NotEmptyStr panics if str is empty, what names the value in the panic message.
func NotEmptyStr(str string, what string) {
	if str == "" {
		panic(fmt.Sprintf("expected %s to be non-empty", what))
	}
}
