package util

import (
	"fmt"
	"runtime/debug"
	"testing"

	"github.com/golang/mock/gomock"
)

func AssertPanic(t *testing.T) {
	if r := recover(); r != nil {
		t.Errorf("PANIC %+v\n%s", r, string(debug.Stack()))
	}
}

type errEqMatcher struct {
	err error
}

//ErrEq matches errors by their message
func ErrEq(err error) gomock.Matcher {
	return &errEqMatcher{err: err}
}

func (m *errEqMatcher) Matches(x interface{}) bool {
	err, ok := x.(error)

	if !ok || IsNil(err) {
		return m.err == nil
	}

	return m.err != nil && err.Error() == m.err.Error()
}

func (m *errEqMatcher) String() string {
	return fmt.Sprintf("has error message %q", m.err)
}
