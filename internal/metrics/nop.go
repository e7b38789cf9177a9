// Package metrics provides the no-op metrics collector used when no
// collector is injected into the engine.
package metrics

import (
	"time"

	"github.com/steveroseik/scribematch/types"
)

// NopCollector implements types.MetricsCollector as a no-op.
type NopCollector struct{}

var _ types.MetricsCollector = (*NopCollector)(nil)

// NewNop returns a collector that records nothing.
func NewNop() *NopCollector { return &NopCollector{} }

func (*NopCollector) SearchCompleted(bool, time.Duration) {}
func (*NopCollector) ValidationFailed(string)             {}
func (*NopCollector) ConflictReportBuilt(int, bool)       {}
