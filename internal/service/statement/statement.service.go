package statement

import (
	"context"
	"errors"
	"extrato-gateway/internal/common/enum"
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/logger"
	"extrato-gateway/internal/service/parser"
	"extrato-gateway/internal/service/statement/model"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	parser     parser.IService
	connectMsg string
}

type IService interface {
	Process(ctx context.Context, files []types.BufferedFile) model.Result
}

// NewService builds the upload handler. parseURL is only used to tell the user
// which port the backend is expected on.
func NewService(p parser.IService, parseURL string) IService {
	return &Service{
		parser:     p,
		connectMsg: connectMessage(parseURL),
	}
}

// Process validates the submitted files, parses each one concurrently and merges the outcomes.
// It always returns a Result; request-level errors become a model.Failure.
func (s *Service) Process(ctx context.Context, files []types.BufferedFile) model.Result {
	batchID, err := helper.GenerateID()
	if err != nil {
		_ = helper.HandleAppError(err, "statement.Process", "GenerateID", false)
		batchID = "-"
	}

	if err := validateFiles(files); err != nil {
		logger.Info.Printf("batch=%s rejected: %v", batchID, err)
		return s.failure(err)
	}

	logger.Info.Printf("batch=%s dispatching %d file(s)", batchID, len(files))

	results, err := s.dispatch(ctx, files)
	if err != nil {
		logger.Error.Printf("batch=%s backend unreachable: %v", batchID, err)
		return s.failure(err)
	}

	result := aggregate(results)
	if f, ok := result.(model.Failure); ok {
		logger.Warning.Printf("batch=%s every file failed: %s", batchID, f.Error)
	} else {
		success := result.(model.Success)
		logger.Info.Printf("batch=%s parsed %d transaction(s) from %d file(s), %d failed",
			batchID, success.TotalTransactions, len(success.FileNames), len(success.Errors))
	}
	return result
}

func (s *Service) failure(err error) model.Failure {
	return model.Failure{
		Error: userMessage(err, s.connectMsg),
		Cause: err,
	}
}

// validateFiles rejects the whole batch when nothing was uploaded or when any name is not a PDF.
func validateFiles(files []types.BufferedFile) error {
	if len(files) == 0 || allEmpty(files) {
		return ErrNoFiles
	}

	var invalid []string
	for i := range files {
		if !enum.PDF.IsValidPDF(&files[i]) {
			invalid = append(invalid, files[i].OriginalName)
		}
	}
	if len(invalid) > 0 {
		return &InvalidExtensionError{Names: invalid}
	}
	return nil
}

func allEmpty(files []types.BufferedFile) bool {
	for _, f := range files {
		if f.Size != 0 {
			return false
		}
	}
	return true
}

// dispatch runs one backend call per file and waits for all of them. A backend HTTP
// error is recorded as a FileFailure; a call that cannot be made fails the whole batch.
// The group has no shared context, so one failure does not cancel the other calls.
func (s *Service) dispatch(ctx context.Context, files []types.BufferedFile) ([]model.FileResult, error) {
	results := make([]model.FileResult, len(files))

	var g errgroup.Group
	for i := range files {
		file := &files[i]
		g.Go(func() error {
			parsed, err := s.parser.Parse(ctx, file)
			if err == nil {
				results[i] = model.FileSuccess{
					FileName:          file.OriginalName,
					Bank:              parsed.Bank,
					Transactions:      parsed.Transactions,
					TotalTransactions: parsed.Total(),
				}
				return nil
			}

			var backendErr *parser.BackendError
			if errors.As(err, &backendErr) {
				results[i] = model.FileFailure{
					FileName: file.OriginalName,
					Error:    backendMessage(backendErr),
				}
				return nil
			}

			return &BackendConnectError{FileName: file.OriginalName, Err: err}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func backendMessage(err *parser.BackendError) string {
	switch {
	case err.Detail != "":
		return err.Detail
	case err.Unreadable:
		return MsgUnknownError
	default:
		return fmt.Sprintf(MsgServerError, err.StatusCode)
	}
}
