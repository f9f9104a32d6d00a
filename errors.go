package cpmnet

import "errors"

// ErrLinksShape indicates the links argument fed to one of the parse
// helpers is not one of the four accepted shapes, or its implied
// src/dst slices disagree in length.
var ErrLinksShape = errors.New("cpmnet: links argument is not one of the supported shapes")

// ErrEffortShape indicates a WBS entry carries none of the three
// accepted effort forms, or violates one of a <= m <= b, a <= b,
// mean >= 0, variance >= 0.
var ErrEffortShape = errors.New("cpmnet: activity effort form is invalid")
