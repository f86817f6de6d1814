// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"excgen.dev/pkg/excgen/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when
// the test finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Print provides a mock function with given fields: ctx, out.
func (m *MockWorkflow) Print(ctx context.Context, out io.Writer) error {
	ret := m.Called(ctx, out)
	return ret.Error(0)
}

// Shard provides a mock function with given fields: ctx, args.
func (m *MockWorkflow) Shard(ctx context.Context, args domain.ShardArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Stats provides a mock function with given fields: ctx, args.
func (m *MockWorkflow) Stats(ctx context.Context, args domain.StatsArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Check provides a mock function with given fields: ctx, args.
func (m *MockWorkflow) Check(ctx context.Context, args domain.ShardArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}
