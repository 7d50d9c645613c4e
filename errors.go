// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when attempting to build a Tree from a
// nil or empty block slice, or from a slice containing a nil Block.
var ErrInvalidInput = textErr("invalid input")

const packageName = "blocktree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
