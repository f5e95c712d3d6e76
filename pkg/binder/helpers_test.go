package binder_test

import (
	"github.com/zhulik/eagerbind/pkg/core"
)

type registration struct {
	Path  string
	Value any
}

type recorder struct {
	registrations []registration
}

type recordedBinding struct {
	recorder *recorder
	path     string
}

func (b recordedBinding) ToConstantValue(value any) {
	b.recorder.registrations = append(b.recorder.registrations, registration{Path: b.path, Value: value})
}

func (r *recorder) Bind(path string) core.Binding {
	return recordedBinding{recorder: r, path: path}
}

func (r *recorder) Paths() []string {
	paths := make([]string, len(r.registrations))
	for i, reg := range r.registrations {
		paths[i] = reg.Path
	}

	return paths
}
