// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import "errors"

// ErrConfiguration is returned when a caller supplies a size-mismatched
// vector, or a transition function identifier unknown to the Analyzer's
// Manager, or an invalid stateSize at construction. On this error the
// Analyzer's state is left unchanged.
var ErrConfiguration = errors.New("reach: configuration error")

// ErrInputShape is returned when a query vector's length does not match
// stateSize. On this error the Analyzer's state is left unchanged.
var ErrInputShape = errors.New("reach: input-shape error")
