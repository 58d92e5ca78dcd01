// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package tracelog implements a jsax.Handler that logs each parser event to a
// go-kit logger before forwarding it to another handler.
//
// Structural events and values are logged at debug level, warnings at warn
// level, and errors at error level, so a level filter on the logger selects
// how much of the event stream is recorded:
//
//	logger := level.NewFilter(log.NewLogfmtLogger(os.Stderr), level.AllowWarn())
//	err := jsax.ParseFile(path, tracelog.New(logger, h))
package tracelog

import (
	"github.com/creachadair/jsax"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Handler is a jsax.Handler that logs events and forwards them.
type Handler struct {
	log  log.Logger
	next jsax.Handler
}

// New constructs a Handler that logs events to logger and forwards them to
// next. If next == nil, events are logged and then discarded.
func New(logger log.Logger, next jsax.Handler) *Handler {
	if next == nil {
		next = jsax.NopHandler{}
	}
	return &Handler{log: logger, next: next}
}

func (h *Handler) debug(event string, keyvals ...any) {
	level.Debug(h.log).Log(append([]any{"event", event}, keyvals...)...)
}

func (h *Handler) report(lg log.Logger, event string, err *jsax.ParseError) {
	lg.Log("event", event, "line", err.Line, "column", err.Column, "offset", err.Offset, "msg", err.Message)
}

func (h *Handler) DocumentStart() { h.debug("DocumentStart"); h.next.DocumentStart() }
func (h *Handler) DocumentEnd()   { h.debug("DocumentEnd"); h.next.DocumentEnd() }
func (h *Handler) ObjectStart()   { h.debug("ObjectStart"); h.next.ObjectStart() }
func (h *Handler) ObjectEnd()     { h.debug("ObjectEnd"); h.next.ObjectEnd() }
func (h *Handler) ArrayStart()    { h.debug("ArrayStart"); h.next.ArrayStart() }
func (h *Handler) ArrayEnd()      { h.debug("ArrayEnd"); h.next.ArrayEnd() }

func (h *Handler) KeyValueSeparator() {
	h.debug("KeyValueSeparator")
	h.next.KeyValueSeparator()
}

func (h *Handler) KeyValuePairSeparator() {
	h.debug("KeyValuePairSeparator")
	h.next.KeyValuePairSeparator()
}

func (h *Handler) ArrayElementSeparator() {
	h.debug("ArrayElementSeparator")
	h.next.ArrayElementSeparator()
}

func (h *Handler) Key(text []byte) {
	h.debug("Key", "text", string(text))
	h.next.Key(text)
}

func (h *Handler) Value(v jsax.Value) {
	h.debug("Value", "kind", v.Kind(), "text", v.String())
	h.next.Value(v)
}

// IgnorableWhiteSpace logs the size of the whitespace run, not its text.
func (h *Handler) IgnorableWhiteSpace(text []byte) {
	h.debug("IgnorableWhiteSpace", "size", len(text))
	h.next.IgnorableWhiteSpace(text)
}

func (h *Handler) Warning(err *jsax.ParseError) {
	h.report(level.Warn(h.log), "Warning", err)
	h.next.Warning(err)
}

func (h *Handler) Error(err *jsax.ParseError) {
	h.report(level.Error(h.log), "Error", err)
	h.next.Error(err)
}

func (h *Handler) FatalError(err *jsax.ParseError) {
	h.report(level.Error(h.log), "FatalError", err)
	h.next.FatalError(err)
}
