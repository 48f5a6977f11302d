package pricing

import "errors"

var (
	// ErrInvalidClassification is returned for an unknown channel/tier
	// combination. The legacy dashboards silently fell back to rate=1 here;
	// that fallback hid misconfigured orders, so it is an error now.
	ErrInvalidClassification = errors.New("pricing: invalid channel/tier classification")

	// ErrInvalidOrderInput is returned for malformed raw fields (negative
	// gross amount or piece count).
	ErrInvalidOrderInput = errors.New("pricing: invalid order input")

	// ErrNonPositiveRate guards against a rules snapshot carrying a zero or
	// negative conversion rate.
	ErrNonPositiveRate = errors.New("pricing: conversion rate must be positive")
)
