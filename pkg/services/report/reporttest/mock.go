// Package reporttest provides a testify mock of the report service client.
package reporttest

import (
	"context"

	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

var _ report.Client = (*Client)(nil)

func (m *Client) GenerateReport(
	ctx context.Context,
	payload *preview.Payload,
	filename string,
) (*report.GeneratedReport, error) {
	args := m.Called(ctx, payload, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.GeneratedReport), args.Error(1)
}

func (m *Client) ExtractPDFData(ctx context.Context, name string, content []byte) (*report.Extraction, error) {
	args := m.Called(ctx, name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Extraction), args.Error(1)
}

func (m *Client) ConvertPDFToImage(ctx context.Context, name string, content []byte) ([][]byte, error) {
	args := m.Called(ctx, name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}

func (m *Client) Health(ctx context.Context) (*report.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.HealthStatus), args.Error(1)
}

func (m *Client) Templates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
