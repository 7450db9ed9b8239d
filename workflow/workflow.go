// Package workflow runs an ordered list of provider-interaction steps for one
// request. Steps accumulate named outputs in a Context; the first failure
// stops the run. Side-effect steps execute at most once: the insurers offer
// no idempotency key, so nothing here retries.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"travelflow/provider"
)

// Context carries step outputs for the lifetime of one run. It accumulates
// strictly: a field, once set, is never overwritten by a later step.
type Context struct {
	fields map[string]any
}

func NewContext() *Context {
	return &Context{fields: make(map[string]any, 8)}
}

// Set records a step output. Overwriting an existing field is a programming
// error in the step list and panics rather than silently corrupting the run.
func (c *Context) Set(key string, value any) {
	if _, ok := c.fields[key]; ok {
		panic(fmt.Sprintf("workflow: field %q set twice", key))
	}
	c.fields[key] = value
}

// Get returns a field set by an earlier step.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// String returns a string field, or "" when absent.
func (c *Context) String(key string) string {
	if v, ok := c.fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Step is one named unit of a workflow.
type Step struct {
	Name string
	Run  func(ctx context.Context, wc *Context) error
}

// Run executes the steps in order against a fresh Context and returns it.
// On the first error the run stops; the error carries the step name, either
// already typed by the step or wrapped here.
func Run(ctx context.Context, steps []Step) (*Context, error) {
	wc := NewContext()
	for _, step := range steps {
		if err := step.Run(ctx, wc); err != nil {
			if pe := asProviderError(err); pe != nil {
				if pe.Step == "" {
					pe.Step = step.Name
				}
				return wc, pe
			}
			return wc, fmt.Errorf("workflow: step %s: %w", step.Name, err)
		}
	}
	return wc, nil
}

func asProviderError(err error) *provider.Error {
	var pe *provider.Error
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
