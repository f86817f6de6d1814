// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"excgen.dev/pkg/excgen/internal/controller"
	m "excgen.dev/pkg/excgen/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted when the test
// finishes.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// DisplayShardWritten provides a mock function with given fields: ctx, summary.
func (ui *MockUI) DisplayShardWritten(ctx context.Context, summary m.ShardSummary) {
	ui.Called(ctx, summary)
}

// DisplayStats provides a mock function with given fields: ctx, stats, format.
func (ui *MockUI) DisplayStats(ctx context.Context, stats m.Stats, format controller.Format) error {
	ret := ui.Called(ctx, stats, format)
	return ret.Error(0)
}

// DisplayCheck provides a mock function with given fields: ctx, diffs.
func (ui *MockUI) DisplayCheck(ctx context.Context, diffs []m.ShardDiff) error {
	ret := ui.Called(ctx, diffs)
	return ret.Error(0)
}
