// Copyright 2026 The go-athena Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package athena

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/aws/aws-sdk-go/service/athena/athenaiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// service provides an internal abstraction to isolate the Athena API; the
// rest of this package uses this interface instead. The single production
// implementation, *awsService, contains all the knowledge of the AWS SDK.
type service interface {
	submitQuery(ctx context.Context, sql string, conf *submitConf) (string, error)
	queryStatus(ctx context.Context, executionID string) (string, error)
	fetchResultPage(ctx context.Context, executionID, pageToken string) (*resultPage, error)
	stopQuery(ctx context.Context, executionID string) error
	fetchOutputObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// submitConf carries the per-submission execution settings.
type submitConf struct {
	database       string
	outputLocation string
	workGroup      string
}

type columnMeta struct {
	Name string
	Type string
}

// resultPage is one page of raw results. rows holds the textual cells in
// column order; a nil cell is a NULL. columns is the result metadata,
// present on every page the service returns.
type resultPage struct {
	columns   []columnMeta
	rows      [][]*string
	nextToken string
}

type awsService struct {
	athena athenaiface.AthenaAPI
	s3     s3iface.S3API
}

var tracer = otel.Tracer("github.com/dataglade/go-athena")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *awsService) submitQuery(ctx context.Context, sql string, conf *submitConf) (_ string, err error) {
	ctx, span := tracer.Start(ctx, "athena.StartQueryExecution")
	defer func() { endSpan(span, err) }()

	input := &athena.StartQueryExecutionInput{
		QueryString: aws.String(sql),
	}
	if conf.database != "" {
		input.QueryExecutionContext = &athena.QueryExecutionContext{
			Database: aws.String(conf.database),
		}
	}
	if conf.outputLocation != "" {
		input.ResultConfiguration = &athena.ResultConfiguration{
			OutputLocation: aws.String(conf.outputLocation),
		}
	}
	if conf.workGroup != "" {
		input.WorkGroup = aws.String(conf.workGroup)
	}
	out, err := s.athena.StartQueryExecutionWithContext(ctx, input)
	if err != nil {
		return "", err
	}
	return aws.StringValue(out.QueryExecutionId), nil
}

func (s *awsService) queryStatus(ctx context.Context, executionID string) (_ string, err error) {
	ctx, span := tracer.Start(ctx, "athena.GetQueryExecution")
	defer func() { endSpan(span, err) }()

	out, err := s.athena.GetQueryExecutionWithContext(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	})
	if err != nil {
		return "", err
	}
	if out.QueryExecution == nil || out.QueryExecution.Status == nil {
		return "", nil
	}
	return aws.StringValue(out.QueryExecution.Status.State), nil
}

func (s *awsService) fetchResultPage(ctx context.Context, executionID, pageToken string) (_ *resultPage, err error) {
	ctx, span := tracer.Start(ctx, "athena.GetQueryResults")
	defer func() { endSpan(span, err) }()

	input := &athena.GetQueryResultsInput{
		QueryExecutionId: aws.String(executionID),
	}
	if pageToken != "" {
		input.NextToken = aws.String(pageToken)
	}
	out, err := s.athena.GetQueryResultsWithContext(ctx, input)
	if err != nil {
		return nil, err
	}

	page := &resultPage{nextToken: aws.StringValue(out.NextToken)}
	if out.ResultSet == nil {
		return page, nil
	}
	if md := out.ResultSet.ResultSetMetadata; md != nil {
		for _, ci := range md.ColumnInfo {
			page.columns = append(page.columns, columnMeta{
				Name: aws.StringValue(ci.Name),
				Type: aws.StringValue(ci.Type),
			})
		}
	}
	for _, r := range out.ResultSet.Rows {
		cells := make([]*string, 0, len(r.Data))
		for _, d := range r.Data {
			cells = append(cells, d.VarCharValue)
		}
		page.rows = append(page.rows, cells)
	}
	return page, nil
}

func (s *awsService) stopQuery(ctx context.Context, executionID string) (err error) {
	ctx, span := tracer.Start(ctx, "athena.StopQueryExecution")
	defer func() { endSpan(span, err) }()

	_, err = s.athena.StopQueryExecutionWithContext(ctx, &athena.StopQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	})
	return err
}

func (s *awsService) fetchOutputObject(ctx context.Context, bucket, key string) (_ io.ReadCloser, err error) {
	ctx, span := tracer.Start(ctx, "s3.GetObject")
	defer func() { endSpan(span, err) }()

	out, err := s.s3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
