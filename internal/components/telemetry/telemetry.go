// Package telemetry routes the diagnostics of the scrapers (broken
// components, warnings, debug traffic and counts) to logs and metrics.
package telemetry

import (
	"fmt"
)

// API is what every component reports through. Tests swap it for a
// RecordingAPI to assert on what was reported.
type API interface {
	// ReportBroken reports a component that failed and needs attention.
	//
	// The id names the component, not the step inside it: a failed request for a
	// collection page is `client.get-page`, with the cause passed as a param. Ids
	// are lowercase, with dashes separating a method from its owner.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something suspicious that is not a failure, such as a
	// length lookup that matched a differently named game.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information only useful when following a single run.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the size of something at this moment. Counts are
	// samples and must not be summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id and message with a namespace, usually the name
// of the package doing the reporting.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
