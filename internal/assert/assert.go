package assert

// Copyright (c) 2017 Blake Williams <code@shabbyrobe.org>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/shabbyrobe/go-apint"
)

// TB is the subset of testing.TB the assertions need. It is satisfied by
// *testing.T and *testing.B, and by the selftest case runner, so the same
// checks work in unit tests and in the apint binary.
type TB interface {
	Helper()
	Fatal(args ...interface{})
	Error(args ...interface{})
}

func WrapTB(tb TB) T { tb.Helper(); return T{TB: tb} }

// T wraps a TB with a simple set of custom assertions.
//
// Assertions prefixed with 'Must' will terminate the execution of the case
// immediately.
//
// Assertions that are not prefixed with 'Must' will fail the case but allow
// it to continue.
type T struct{ TB }

// frameDepth is the number of frames to strip off the callstack when reporting the line
// where an error occurred.
const frameDepth = 2

func CompareMsg(exp, act interface{}) string {
	return fmt.Sprintf("\nexp: %+v\ngot: %+v", exp, act)
}

func CompareMsgf(exp, act interface{}, msg string, args ...interface{}) string {
	msg = fmt.Sprintf(msg, args...)
	return fmt.Sprintf("%v%v", msg, CompareMsg(exp, act))
}

// MustAssert immediately fails the case if the condition is false.
func (tb T) MustAssert(condition bool, v ...interface{}) {
	tb.Helper()
	_ = tb.assert(true, condition, v...)
}

// Assert fails the case if the condition is false.
func (tb T) Assert(condition bool, v ...interface{}) bool {
	tb.Helper()
	return tb.assert(false, condition, v...)
}

func (tb T) assert(fatal bool, condition bool, v ...interface{}) bool {
	tb.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(frameDepth)
		msg := ""
		if len(v) > 0 {
			msgx := v[0]
			v = v[1:]
			if msgx == nil {
				msg = "<nil>"
			} else if err, ok := msgx.(error); ok {
				msg = err.Error()
			} else {
				msg = msgx.(string)
			}
		}
		v = append([]interface{}{filepath.Base(file), line}, v...)
		tb.fail(fatal, fmt.Sprintf("\nassertion failed at %s:%d\n"+msg, v...))
	}
	return condition
}

func (tb T) MustOK(err error) {
	tb.Helper()
	_ = tb.ok(true, err)
}

func (tb T) OK(err error) bool {
	tb.Helper()
	return tb.ok(false, err)
}

func (tb T) ok(fatal bool, err error) bool {
	tb.Helper()
	if err == nil {
		return true
	}
	_, file, line, _ := runtime.Caller(frameDepth)
	tb.fail(fatal, fmt.Sprintf("\nunexpected error at %s:%d\n%s",
		filepath.Base(file), line, err.Error()))
	return false
}

// MustExact immediately fails the case if the Go language equality rules for
// '==' do not apply to the arguments. This is distinct from MustEqual, which
// performs a reflect.DeepEqual().
func (tb T) MustExact(exp, act interface{}, v ...interface{}) {
	tb.Helper()
	_ = tb.exact(true, exp, act, v...)
}

// Exact fails the case but continues executing if the Go language equality
// rules for '==' do not apply to the arguments.
func (tb T) Exact(exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	return tb.exact(false, exp, act, v...)
}

func (tb T) exact(fatal bool, exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	if exp != act {
		tb.failCompare("exact", exp, act, fatal, frameDepth+1, v...)
		return false
	}
	return true
}

// MustEqual immediately fails the case if exp is not equal to act based on
// reflect.DeepEqual(). See Exact for equality comparisons using '=='.
func (tb T) MustEqual(exp, act interface{}, v ...interface{}) {
	tb.Helper()
	_ = tb.equals(true, exp, act, v...)
}

// Equals fails the case but continues executing if exp is not equal to act
// using reflect.DeepEqual() and returns whether the assertion succeded.
func (tb T) Equals(exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	return tb.equals(false, exp, act, v...)
}

func (tb T) equals(fatal bool, exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		tb.failCompare("equal", exp, act, fatal, frameDepth+1, v...)
		return false
	}
	return true
}

// MustHex immediately fails the case unless act formats to the hex string
// exp. Comparing through Hex() keeps failure messages readable for values
// that span many words.
func (tb T) MustHex(exp string, act apint.Int, v ...interface{}) {
	tb.Helper()
	_ = tb.hex(true, exp, act, v...)
}

// Hex fails the case but continues executing unless act formats to exp.
func (tb T) Hex(exp string, act apint.Int, v ...interface{}) bool {
	tb.Helper()
	return tb.hex(false, exp, act, v...)
}

func (tb T) hex(fatal bool, exp string, act apint.Int, v ...interface{}) bool {
	tb.Helper()
	if got := act.Hex(); got != exp {
		tb.failCompare("hex", exp, got, fatal, frameDepth+1, v...)
		return false
	}
	return true
}

func (tb T) failCompare(kind string, exp, act interface{}, fatal bool, frameOffset int, v ...interface{}) {
	tb.Helper()
	extra := ""
	if len(v) > 0 {
		extra = fmt.Sprintf(" - "+v[0].(string), v[1:]...)
	}

	_, file, line, _ := runtime.Caller(frameOffset)
	msg := CompareMsgf(exp, act, "\n%s failed at %s:%d%s", kind, filepath.Base(file), line, extra)
	tb.fail(fatal, msg)
}

func (tb T) fail(fatal bool, msg string) {
	tb.Helper()
	if fatal {
		tb.Fatal(msg)
	} else {
		tb.Error(msg)
	}
}
