/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import "fmt"

type stepIdentifier struct {
	name      string
	namespace string
}

func (i *stepIdentifier) String() string {
	if i.namespace == "" {
		return i.name
	}
	return fmt.Sprintf("%s@%s", i.name, i.namespace)
}

func (i *stepIdentifier) GetName() string {
	return i.name
}

func (i *stepIdentifier) GetNamespace() string {
	return i.namespace
}

func NewStepIdentifier(name, namespace string) IActionIdentifier {
	return &stepIdentifier{
		name:      name,
		namespace: namespace,
	}
}

// Slot is one of the three actions held by a Transaction.
type Slot int

const (
	SlotExecute Slot = iota
	SlotScript
	SlotRollback
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotExecute:
		return "execute"
	case SlotScript:
		return "script"
	case SlotRollback:
		return "rollback"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}
