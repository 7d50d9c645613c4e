// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when a stream does not start with
	// the scene file magic number.
	ErrInvalidMagic = textErr("invalid magic number")
	// ErrUnsupportedVersion is returned when a scene file's major
	// version is outside the range this package can read.
	ErrUnsupportedVersion = textErr("unsupported version")
)

const packageName = "scene: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
