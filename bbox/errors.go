// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bbox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBox is returned when a box's upper corner is less than
	// its lower corner along either axis.
	ErrInvalidBox = textErr("invalid box")
	// ErrEmptyInput is returned when attempting to take the union of
	// zero boxes.
	ErrEmptyInput = textErr("empty input")
)

const packageName = "bbox: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
