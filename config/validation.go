/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/stormogulen/Installer/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			return WrapFieldValidationError(r.Type().Field(i), err)
		}
	}
	return nil
}

// WrapFieldValidationError records which field of a structure failed validation.
func WrapFieldValidationError(field reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	name := field.Name
	if tag, hasTag := field.Tag.Lookup("mapstructure"); hasTag && strings.TrimSpace(tag) != "" {
		name = fmt.Sprintf("%v [%v]", name, strings.ToUpper(tag))
	}
	return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "structure failed validation: %v", name)
}
