// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

// ProgressFunc is an optional progress side channel (spec.md §5). It must
// never be relied on for correctness; Split behaves identically whether or
// not Progress is set.
type ProgressFunc func(stage string, done, total int)

// Options configures Split. Field and FieldValues drive FractureDetector;
// Policy, FieldType and SplitOnDomainBoundary are reserved (spec.md §9) and
// must currently be left at their default values. VolumetricOutputName and
// FractureOutputName are passed through untouched for an I/O collaborator
// and are never interpreted by the core.
type Options struct {
	Field       string
	FieldValues map[int]bool

	// reserved; only the documented defaults are accepted today
	Policy                 string
	FieldType              string
	SplitOnDomainBoundary  bool

	VolumetricOutputName string
	FractureOutputName   string

	Progress ProgressFunc
}

// validate rejects reserved-option values this implementation does not
// (yet) give meaning to, per spec.md §9: "Do not guess; surface as
// unimplemented and reject unexpected values."
func (o Options) validate() error {
	if o.Policy != "" {
		return invalidInput("Options", "policy %q is reserved and not implemented; only \"\" (cell-field-driven detection) is accepted", o.Policy)
	}
	if o.FieldType != "" && o.FieldType != "cell" {
		return invalidInput("Options", "field_type %q is reserved and not implemented; only \"\" or \"cell\" is accepted", o.FieldType)
	}
	if o.SplitOnDomainBoundary {
		return invalidInput("Options", "split_on_domain_boundary=true is reserved and not implemented")
	}
	if o.Field == "" {
		return invalidInput("Options", "field name must not be empty")
	}
	return nil
}

func (o Options) report(stage string, done, total int) {
	if o.Progress != nil {
		o.Progress(stage, done, total)
	}
}
