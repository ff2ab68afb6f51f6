/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package fsactions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/commonerrors/errortest"
	"github.com/stormogulen/Installer/logs"
)

func newSourceFile(t *testing.T, fs afero.Fs) (path string, content []byte) {
	t.Helper()
	path = filepath.Join("/", faker.Word(), faker.Word()+".txt")
	content = []byte(faker.Paragraph())
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, content, 0600))
	return
}

func TestCopyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	src, content := newSourceFile(t, fs)
	dst := filepath.Join("/opt", faker.Word(), "copy.txt")

	require.NoError(t, CopyFile(fs, src, dst, nil)())
	copied, err := afero.ReadFile(fs, dst)
	require.NoError(t, err)
	assert.Equal(t, content, copied)
	info, err := fs.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	require.NoError(t, VerifyCopy(fs, src, dst)())

	errortest.AssertError(t, CopyFile(fs, src, dst, nil)(), commonerrors.ErrConflict)
	errortest.AssertError(t, CopyFile(fs, "/"+faker.Word(), "/"+faker.Word(), nil)(), commonerrors.ErrNotFound)
	errortest.AssertError(t, CopyFile(nil, src, dst, nil)(), commonerrors.ErrUndefined)

	require.NoError(t, afero.WriteFile(fs, dst, []byte(faker.Sentence()), 0600))
	errortest.AssertError(t, VerifyCopy(fs, src, dst)(), commonerrors.ErrUnexpected)
}

func TestRemoveFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	src, _ := newSourceFile(t, fs)

	errortest.AssertError(t, RemoveFile(fs, filepath.Dir(src), nil)(), commonerrors.ErrInvalid)
	require.NoError(t, RemoveFile(fs, src, nil)())
	exists, err := afero.Exists(fs, src)
	require.NoError(t, err)
	assert.False(t, exists)
	errortest.AssertError(t, RemoveFile(fs, src, nil)(), commonerrors.ErrNotFound)
	errortest.AssertError(t, RemoveFile(nil, src, nil)(), commonerrors.ErrUndefined)
}

func TestDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/", faker.Word(), faker.Word())

	require.NoError(t, CreateDirectory(fs, dir, nil)())
	isDir, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, isDir)
	require.NoError(t, VerifyDirectory(fs, dir)())
	errortest.AssertError(t, CreateDirectory(fs, dir, nil)(), commonerrors.ErrConflict)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "file"), []byte(faker.Word()), 0600))
	errortest.AssertError(t, VerifyDirectory(fs, dir)(), commonerrors.ErrUnexpected)

	require.NoError(t, RemoveDirectory(fs, dir, nil)())
	isDir, err = afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.False(t, isDir)
	errortest.AssertError(t, RemoveDirectory(fs, dir, nil)(), commonerrors.ErrNotFound)

	errortest.AssertError(t, CreateDirectory(fs, "", nil)(), commonerrors.ErrUndefined)
	errortest.AssertError(t, CreateDirectory(nil, dir, nil)(), commonerrors.ErrUndefined)
	errortest.AssertError(t, RemoveDirectory(nil, dir, nil)(), commonerrors.ErrUndefined)
}

func TestParents(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		src, _ := newSourceFile(t, fs)
		root := filepath.Join("/opt", faker.Word())
		dst := filepath.Join(root, "bin", "copy.txt")
		parents := &Parents{}

		require.NoError(t, CopyFile(fs, src, dst, parents)())
		assert.Equal(t, []string{filepath.Join(root, "bin"), root, "/opt"}, parents.Created())
		require.NoError(t, RemoveFile(fs, dst, parents)())
		for _, dir := range []string{filepath.Join(root, "bin"), root, "/opt"} {
			exists, err := afero.Exists(fs, dir)
			require.NoError(t, err)
			assert.False(t, exists, dir)
		}
		assert.Empty(t, parents.Created())
		exists, err := afero.Exists(fs, src)
		require.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		root := filepath.Join("/", faker.Word())
		dir := filepath.Join(root, "data", faker.Word())
		parents := &Parents{}

		require.NoError(t, CreateDirectory(fs, dir, parents)())
		assert.Equal(t, []string{filepath.Dir(dir), root}, parents.Created())
		require.NoError(t, RemoveDirectory(fs, dir, parents)())
		exists, err := afero.Exists(fs, root)
		require.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("existing parent kept", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		root := filepath.Join("/", faker.Word())
		require.NoError(t, fs.MkdirAll(root, 0755))
		dir := filepath.Join(root, faker.Word())
		parents := &Parents{}

		require.NoError(t, CreateDirectory(fs, dir, parents)())
		assert.Empty(t, parents.Created())
		require.NoError(t, RemoveDirectory(fs, dir, parents)())
		exists, err := afero.DirExists(fs, root)
		require.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("parent in use kept", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		root := filepath.Join("/", faker.Word())
		dir := filepath.Join(root, "created")
		parents := &Parents{}

		require.NoError(t, CreateDirectory(fs, dir, parents)())
		other := filepath.Join(root, "other.txt")
		require.NoError(t, afero.WriteFile(fs, other, []byte(faker.Word()), 0600))
		require.NoError(t, RemoveDirectory(fs, dir, parents)())
		exists, err := afero.Exists(fs, other)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []string{root}, parents.Created())
	})
}

func TestRunScript(t *testing.T) {
	loggers, err := logs.NewStringLogger(faker.Word())
	require.NoError(t, err)
	name := faker.Word()

	require.NoError(t, RunScript(loggers, name, nil)())
	assert.Contains(t, loggers.GetLogContent(), "running script "+name)

	cause := errors.New(faker.Sentence())
	err = RunScript(nil, name, func() error { return cause })()
	errortest.AssertError(t, err, commonerrors.ErrCondition)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), name)
	require.NoError(t, RunScript(nil, name, func() error { return nil })())
}

func TestFailing(t *testing.T) {
	cause := errors.New(faker.Sentence())
	assert.Equal(t, cause, Failing(cause)())
	errortest.AssertError(t, Failing(nil)(), commonerrors.ErrUnknown)
}

func TestConvertFileSystemError(t *testing.T) {
	assert.NoError(t, ConvertFileSystemError(nil))
	errortest.AssertError(t, ConvertFileSystemError(os.ErrNotExist), commonerrors.ErrNotFound)
	errortest.AssertError(t, ConvertFileSystemError(os.ErrExist), commonerrors.ErrConflict)
	assert.Equal(t, commonerrors.ErrTimeout, ConvertFileSystemError(commonerrors.ErrTimeout))
}
