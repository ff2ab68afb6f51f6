/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fsactions provides installation steps working on a filesystem abstraction.
package fsactions

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/transaction"
)

// ConvertFileSystemError converts file system errors into common errors.
func ConvertFileSystemError(err error) error {
	switch {
	case err == nil:
		return nil
	case commonerrors.Any(err, os.ErrNotExist):
		return commonerrors.WrapError(commonerrors.ErrNotFound, err, "")
	case commonerrors.Any(err, os.ErrExist):
		return commonerrors.WrapError(commonerrors.ErrConflict, err, "")
	default:
		return err
	}
}

// Parents records the directories created on the way to a target so that a rollback can remove them again.
// The zero value is ready to use. A nil Parents still creates missing directories but forgets about them.
type Parents struct {
	// created lists directories deepest first.
	created []string
}

// Created returns the directories created so far, deepest first.
func (p *Parents) Created() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.created)
}

func (p *Parents) mkdirAll(fs afero.Fs, dir string) error {
	var missing []string
	for current := filepath.Clean(dir); ; current = filepath.Dir(current) {
		exists, err := afero.Exists(fs, current)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if exists {
			break
		}
		missing = append(missing, current)
		if filepath.Dir(current) == current {
			break
		}
	}
	err := fs.MkdirAll(dir, 0755)
	if err != nil {
		return ConvertFileSystemError(err)
	}
	if p != nil {
		p.created = append(missing, p.created...)
	}
	return nil
}

// removeEmpty removes the recorded directories, deepest first, and stops at the first one still holding something.
func (p *Parents) removeEmpty(fs afero.Fs) error {
	if p == nil {
		return nil
	}
	for len(p.created) > 0 {
		dir := p.created[0]
		exists, err := afero.DirExists(fs, dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if !exists {
			p.created = p.created[1:]
			continue
		}
		empty, err := afero.IsEmpty(fs, dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if !empty {
			return nil
		}
		err = fs.Remove(dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		p.created = p.created[1:]
	}
	return nil
}

// CopyFile returns an action copying src to dst. Missing parent directories of dst are created and recorded in parents.
// An existing dst is never overwritten so that removing it afterwards cannot lose data.
func CopyFile(fs afero.Fs, src, dst string, parents *Parents) transaction.Action {
	return func() (err error) {
		if fs == nil {
			return commonerrors.UndefinedParameter("filesystem")
		}
		exists, err := afero.Exists(fs, dst)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if exists {
			return commonerrors.Newf(commonerrors.ErrConflict, "path [%v] already exists", dst)
		}
		content, err := afero.ReadFile(fs, src)
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrNotFound, ConvertFileSystemError(err), "could not read [%v]", src)
		}
		info, err := fs.Stat(src)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		err = parents.mkdirAll(fs, filepath.Dir(dst))
		if err != nil {
			return err
		}
		return ConvertFileSystemError(afero.WriteFile(fs, dst, content, info.Mode().Perm()))
	}
}

// RemoveFile returns an action deleting the file at path, then the directories recorded in parents which are left empty.
func RemoveFile(fs afero.Fs, path string, parents *Parents) transaction.Action {
	return func() error {
		if fs == nil {
			return commonerrors.UndefinedParameter("filesystem")
		}
		isDir, err := afero.IsDir(fs, path)
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrNotFound, ConvertFileSystemError(err), "could not remove [%v]", path)
		}
		if isDir {
			return commonerrors.Newf(commonerrors.ErrInvalid, "[%v] is a directory", path)
		}
		err = fs.Remove(path)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		return parents.removeEmpty(fs)
	}
}

// CreateDirectory returns an action creating dir. Missing parents are created and recorded in parents.
// It fails if dir already exists.
func CreateDirectory(fs afero.Fs, dir string, parents *Parents) transaction.Action {
	return func() error {
		if fs == nil {
			return commonerrors.UndefinedParameter("filesystem")
		}
		if dir == "" {
			return commonerrors.UndefinedParameter("directory")
		}
		exists, err := afero.Exists(fs, dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if exists {
			return commonerrors.Newf(commonerrors.ErrConflict, "path [%v] already exists", dir)
		}
		err = parents.mkdirAll(fs, filepath.Dir(dir))
		if err != nil {
			return err
		}
		return ConvertFileSystemError(fs.Mkdir(dir, 0755))
	}
}

// RemoveDirectory returns an action removing dir and everything it contains, then the directories recorded in parents which are left empty.
func RemoveDirectory(fs afero.Fs, dir string, parents *Parents) transaction.Action {
	return func() error {
		if fs == nil {
			return commonerrors.UndefinedParameter("filesystem")
		}
		isDir, err := afero.DirExists(fs, dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if !isDir {
			return commonerrors.Newf(commonerrors.ErrNotFound, "directory [%v] does not exist", dir)
		}
		err = fs.RemoveAll(dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		return parents.removeEmpty(fs)
	}
}

// RunScript returns an action running the post-installation script fn. A nil fn only logs the script name.
func RunScript(loggers logs.Loggers, name string, fn func() error) transaction.Action {
	return func() error {
		if loggers != nil {
			loggers.Log(fmt.Sprintf("running script %v", name))
		}
		if fn == nil {
			return nil
		}
		err := fn()
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrCondition, err, "script %v failed", name)
		}
		return nil
	}
}

// VerifyCopy checks that dst holds the same content as src.
func VerifyCopy(fs afero.Fs, src, dst string) func() error {
	return func() error {
		expected, err := afero.ReadFile(fs, src)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		actual, err := afero.ReadFile(fs, dst)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if !bytes.Equal(expected, actual) {
			return commonerrors.Newf(commonerrors.ErrUnexpected, "[%v] differs from [%v]", dst, src)
		}
		return nil
	}
}

// VerifyDirectory checks that dir exists and is empty.
func VerifyDirectory(fs afero.Fs, dir string) func() error {
	return func() error {
		empty, err := afero.IsEmpty(fs, dir)
		if err != nil {
			return ConvertFileSystemError(err)
		}
		if !empty {
			return commonerrors.Newf(commonerrors.ErrUnexpected, "directory [%v] is not empty", dir)
		}
		return nil
	}
}

// Failing returns an action which always fails with err.
func Failing(err error) transaction.Action {
	return func() error {
		if err == nil {
			return commonerrors.ErrUnknown
		}
		return err
	}
}
