/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package denorm

import (
	"strconv"

	"github.com/google/uuid"
)

// Record identity is assigned at construction time so that structurally
// identical specs still yield distinguishable records. IDs are derived from
// the sequence kind and position, not from field values, so rebuilding from
// the same input reproduces the same IDs.
var idNamespace = uuid.MustParse("8f0f4f86-5c34-46b5-9f1d-1f9c3a6c7d42")

func slotID(index int) string {
	return uuid.NewSHA1(idNamespace, []byte("slot/"+strconv.Itoa(index))).String()
}

func eventID(index int) string {
	return uuid.NewSHA1(idNamespace, []byte("event/"+strconv.Itoa(index))).String()
}
