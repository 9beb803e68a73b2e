package handler

import (
	"encoding/json"
	"fmt"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context bound to an open Datastar event stream. Sends
// are written and flushed in call order.
type StreamContext interface {
	Context

	SendComponent(component TemplComponent, opts ...TemplOption) error
	// SendMultiple stops at the first patch that fails to send.
	SendMultiple(patches ...TemplPatch) error
	// SendSignals merges signals into the page state.
	SendSignals(signals map[string]any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return c.SendMultiple(Patch(component, opts...))
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	for i, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return fmt.Errorf("patch %d: %w", i, err)
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("encode signals: %w", err)
	}
	return c.sse.PatchSignals(data)
}
