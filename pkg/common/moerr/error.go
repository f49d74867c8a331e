// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"fmt"
)

const (
	// 0 - 99 is OK.  They do not contain info and are handled with
	// static instances, no alloc.
	Ok uint16 = 0

	OkMax uint16 = 99

	// Group 1: internal errors
	ErrStart              uint16 = 20100
	ErrInternal           uint16 = 20101
	ErrUnsupportedTypeTag uint16 = 20102

	// Group 2: invalid configuration and input
	ErrBadSortConfig uint16 = 20200
	ErrInvalidInput  uint16 = 20201

	// Group 3: schema mismatches surfaced per page
	ErrUnknownSortKey   uint16 = 20300
	ErrUnsupportedType  uint16 = 20301
	ErrUnsupportedWidth uint16 = 20302

	ErrEnd uint16 = 65535
)

type item struct {
	format string
}

var errorMsgRefer = map[uint16]item{
	ErrInternal:           {"internal error: %s"},
	ErrUnsupportedTypeTag: {"unsupported scalar type tag %d reached the comparator"},
	ErrBadSortConfig:      {"invalid sort configuration: %s"},
	ErrInvalidInput:       {"invalid input: %s"},
	ErrUnknownSortKey:     {"sort key '%s' does not exist in the page schema"},
	ErrUnsupportedType:    {"unsupported column type: %s"},
	ErrUnsupportedWidth:   {"column '%s' element width %d exceeds the %d byte row swap limit"},
}

// Error is the error type of the engine.  Every error carries a
// stable numeric code so callers can branch on the failure class
// without string matching.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Succeeded() bool {
	return e.code <= OkMax
}

// Is implements errors.Is matching on the error code.
func (e *Error) Is(err error) bool {
	me, ok := err.(*Error)
	if !ok {
		return false
	}
	return me.code == e.code
}

// IsMoErrCode reports whether err is an engine error with the given code.
func IsMoErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	me, ok := err.(*Error)
	if !ok {
		return false
	}
	return me.code == code
}

// newError constructs an error from the code's message template.  The
// ctx argument follows the constructor convention of the wider system;
// the engine itself never cancels, so only the value is threaded through.
func newError(ctx context.Context, code uint16, args ...any) *Error {
	_ = ctx
	it, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Errorf("missing error message for code %d", code))
	}
	var msg string
	if len(args) == 0 {
		msg = it.format
	} else {
		msg = fmt.Sprintf(it.format, args...)
	}
	return &Error{code: code, message: msg}
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInternal, fmt.Sprintf(msg, args...))
}

func NewUnsupportedTypeTag(ctx context.Context, tag int) *Error {
	return newError(ctx, ErrUnsupportedTypeTag, tag)
}

func NewBadSortConfig(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrBadSortConfig, fmt.Sprintf(msg, args...))
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInvalidInput, fmt.Sprintf(msg, args...))
}

func NewUnknownSortKey(ctx context.Context, name string) *Error {
	return newError(ctx, ErrUnknownSortKey, name)
}

func NewUnsupportedType(ctx context.Context, typ string) *Error {
	return newError(ctx, ErrUnsupportedType, typ)
}

func NewUnsupportedWidth(ctx context.Context, col string, width, limit int) *Error {
	return newError(ctx, ErrUnsupportedWidth, col, width, limit)
}
