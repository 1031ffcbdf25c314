package statement_test

import (
	"context"
	"encoding/json"
	"errors"
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/service/parser"
	"extrato-gateway/internal/service/parser/mocks"
	parserModel "extrato-gateway/internal/service/parser/model"
	"extrato-gateway/internal/service/statement"
	"extrato-gateway/internal/service/statement/model"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parseURL = "http://localhost:8000/api/parse"

type outcome struct {
	resp  *parserModel.ParseResponse
	err   error
	delay time.Duration
}

func pdf(name string, size int) types.BufferedFile {
	return types.BufferedFile{
		MediaType:    "pdf",
		OriginalName: name,
		MimeType:     "application/pdf",
		Size:         size,
		Buffer:       make([]byte, size),
	}
}

func parsed(bank string, n int) *parserModel.ParseResponse {
	txs := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, map[string]any{"bank": bank, "index": i})
	}
	return &parserModel.ParseResponse{Bank: bank, Transactions: txs, TotalTransactions: json.Number(strconv.Itoa(n))}
}

// expectParse answers every Parse call from outcomes, keyed by file name.
func expectParse(m *mocks.MockIService, outcomes map[string]outcome) {
	m.EXPECT().
		Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file *types.BufferedFile) (*parserModel.ParseResponse, error) {
			o := outcomes[file.OriginalName]
			if o.delay > 0 {
				time.Sleep(o.delay)
			}
			return o.resp, o.err
		}).
		Times(len(outcomes))
}

func TestService_Process_Validation(t *testing.T) {
	tests := []struct {
		name      string
		files     []types.BufferedFile
		wantError string
		wantCause func(t *testing.T, err error)
	}{
		{
			name:      "no files",
			files:     nil,
			wantError: "Nenhum arquivo selecionado.",
			wantCause: func(t *testing.T, err error) { assert.ErrorIs(t, err, statement.ErrNoFiles) },
		},
		{
			name:      "only empty files",
			files:     []types.BufferedFile{pdf("a.pdf", 0), pdf("b.pdf", 0)},
			wantError: "Nenhum arquivo selecionado.",
			wantCause: func(t *testing.T, err error) { assert.ErrorIs(t, err, statement.ErrNoFiles) },
		},
		{
			name:      "one invalid extension rejects the batch",
			files:     []types.BufferedFile{pdf("a.pdf", 10), pdf("notes.txt", 10)},
			wantError: "Apenas arquivos PDF são aceitos. Arquivos inválidos: notes.txt",
		},
		{
			name:      "every invalid name is listed in order",
			files:     []types.BufferedFile{pdf("x.doc", 10), pdf("ok.PDF", 10), pdf("y.pdf.png", 3), pdf("z", 1)},
			wantError: "Apenas arquivos PDF são aceitos. Arquivos inválidos: x.doc, y.pdf.png, z",
			wantCause: func(t *testing.T, err error) {
				var extErr *statement.InvalidExtensionError
				require.ErrorAs(t, err, &extErr)
				assert.Equal(t, []string{"x.doc", "y.pdf.png", "z"}, extErr.Names)
			},
		},
		{
			name:      "empty file with a bad name still counts as no files",
			files:     []types.BufferedFile{pdf("", 0)},
			wantError: "Nenhum arquivo selecionado.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := statement.NewService(mocks.NewMockIService(ctrl), parseURL)
			result := svc.Process(context.Background(), tt.files)

			failure, ok := result.(model.Failure)
			require.True(t, ok, "expected a failure, got %#v", result)
			assert.False(t, result.IsSuccess())
			assert.Equal(t, tt.wantError, failure.Error)
			if tt.wantCause != nil {
				tt.wantCause(t, failure.Cause)
			}
		})
	}
}

func TestService_Process_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"itau.pdf":   {resp: parsed("itau", 3)},
		"nubank.pdf": {resp: parsed("nubank", 2)},
		"itau2.pdf":  {resp: parsed("itau", 1)},
	})

	svc := statement.NewService(m, parseURL)
	result := svc.Process(context.Background(), []types.BufferedFile{
		pdf("itau.pdf", 10), pdf("nubank.pdf", 10), pdf("itau2.pdf", 10),
	})

	success, ok := result.(model.Success)
	require.True(t, ok, "expected success, got %#v", result)
	assert.Equal(t, []string{"itau", "nubank"}, success.Banks)
	assert.Equal(t, []string{"itau.pdf", "nubank.pdf", "itau2.pdf"}, success.FileNames)
	assert.Equal(t, 6, success.TotalTransactions)
	assert.Len(t, success.Transactions, success.TotalTransactions)
	assert.Nil(t, success.Errors)
}

func TestService_Process_KeepsSubmissionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"slow.pdf": {resp: parsed("inter", 2), delay: 50 * time.Millisecond},
		"fast.pdf": {resp: parsed("nubank", 1)},
	})

	svc := statement.NewService(m, parseURL)
	result := svc.Process(context.Background(), []types.BufferedFile{pdf("slow.pdf", 1), pdf("fast.pdf", 1)})

	success, ok := result.(model.Success)
	require.True(t, ok)
	require.Len(t, success.Transactions, 3)
	assert.Equal(t, "inter", success.Transactions[0]["bank"])
	assert.Equal(t, "inter", success.Transactions[1]["bank"])
	assert.Equal(t, "nubank", success.Transactions[2]["bank"])
	assert.Equal(t, []string{"inter", "nubank"}, success.Banks)
	assert.Equal(t, []string{"slow.pdf", "fast.pdf"}, success.FileNames)
}

func TestService_Process_CallsRunConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const delay = 200 * time.Millisecond
	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"a.pdf": {resp: parsed("itau", 1), delay: delay},
		"b.pdf": {resp: parsed("itau", 1), delay: delay},
		"c.pdf": {resp: parsed("itau", 1), delay: delay},
	})

	svc := statement.NewService(m, parseURL)
	start := time.Now()
	result := svc.Process(context.Background(), []types.BufferedFile{pdf("a.pdf", 1), pdf("b.pdf", 1), pdf("c.pdf", 1)})

	assert.True(t, result.IsSuccess())
	assert.Less(t, time.Since(start), 3*delay)
}

func TestService_Process_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"good.pdf": {resp: parsed("itau", 4)},
		"bad.pdf":  {err: &parser.BackendError{StatusCode: 500, Detail: "bad format"}},
	})

	svc := statement.NewService(m, parseURL)
	result := svc.Process(context.Background(), []types.BufferedFile{pdf("bad.pdf", 10), pdf("good.pdf", 10)})

	success, ok := result.(model.Success)
	require.True(t, ok, "one file parsed, the batch must succeed")
	assert.Equal(t, []string{"bad.pdf: bad format"}, success.Errors)
	assert.Equal(t, []string{"good.pdf"}, success.FileNames)
	assert.Equal(t, []string{"itau"}, success.Banks)
	assert.Equal(t, 4, success.TotalTransactions)
}

func TestService_Process_BackendErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     *parser.BackendError
		wantMsg string
	}{
		{
			name:    "detail is used as is",
			err:     &parser.BackendError{StatusCode: 422, Detail: "Could not detect bank"},
			wantMsg: "only.pdf: Could not detect bank",
		},
		{
			name:    "missing detail falls back to the status",
			err:     &parser.BackendError{StatusCode: 500},
			wantMsg: "only.pdf: Erro do servidor: 500",
		},
		{
			name:    "unreadable body",
			err:     &parser.BackendError{StatusCode: 502, Unreadable: true},
			wantMsg: "only.pdf: Erro desconhecido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks.NewMockIService(ctrl)
			expectParse(m, map[string]outcome{"only.pdf": {err: tt.err}})

			result := statement.NewService(m, parseURL).Process(context.Background(), []types.BufferedFile{pdf("only.pdf", 5)})

			failure, ok := result.(model.Failure)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, failure.Error)
			assert.ErrorIs(t, failure.Cause, statement.ErrAllFailed)
		})
	}
}

func TestService_Process_AllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"a.pdf": {err: &parser.BackendError{StatusCode: 500, Detail: "bad format"}},
		"b.pdf": {err: &parser.BackendError{StatusCode: 400, Detail: "Empty file."}},
	})

	result := statement.NewService(m, parseURL).Process(context.Background(), []types.BufferedFile{pdf("a.pdf", 1), pdf("b.pdf", 0)})

	failure, ok := result.(model.Failure)
	require.True(t, ok)
	assert.Equal(t, "a.pdf: bad format; b.pdf: Empty file.", failure.Error)
}

func TestService_Process_BackendUnreachable(t *testing.T) {
	tests := []struct {
		name     string
		parseURL string
		wantMsg  string
	}{
		{
			name:     "default endpoint",
			parseURL: parseURL,
			wantMsg:  "Não foi possível conectar ao servidor de processamento. Verifique se o backend está rodando na porta 8000.",
		},
		{
			name:     "https endpoint without port",
			parseURL: "https://parser.example.com/api/parse",
			wantMsg:  "Não foi possível conectar ao servidor de processamento. Verifique se o backend está rodando na porta 443.",
		},
		{
			name:     "unparseable endpoint",
			parseURL: "::",
			wantMsg:  "Não foi possível conectar ao servidor de processamento. Verifique se o backend está rodando.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			refused := &helper.RequestError{URL: tt.parseURL, Err: errors.New("connection refused")}
			m := mocks.NewMockIService(ctrl)
			expectParse(m, map[string]outcome{
				"a.pdf": {resp: parsed("itau", 1)},
				"b.pdf": {err: errors.Join(parser.ErrUnavailable, refused)},
			})

			result := statement.NewService(m, tt.parseURL).Process(context.Background(), []types.BufferedFile{pdf("a.pdf", 1), pdf("b.pdf", 1)})

			failure, ok := result.(model.Failure)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, failure.Error)

			var connErr *statement.BackendConnectError
			require.ErrorAs(t, failure.Cause, &connErr)
			assert.Equal(t, "b.pdf", connErr.FileName)
			assert.ErrorIs(t, failure.Cause, parser.ErrUnavailable)
		})
	}
}

func TestService_Process_DispatchesEmptyFilesAlongsideOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIService(ctrl)
	expectParse(m, map[string]outcome{
		"full.pdf":  {resp: parsed("inter", 2)},
		"empty.pdf": {err: &parser.BackendError{StatusCode: 400, Detail: "Empty file."}},
	})

	result := statement.NewService(m, parseURL).Process(context.Background(), []types.BufferedFile{pdf("full.pdf", 7), pdf("empty.pdf", 0)})

	success, ok := result.(model.Success)
	require.True(t, ok)
	assert.Equal(t, []string{"empty.pdf: Empty file."}, success.Errors)
}

func TestService_Process_IsDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	outcomes := map[string]outcome{
		"a.pdf": {resp: parsed("itau", 2), delay: 20 * time.Millisecond},
		"b.pdf": {resp: parsed("nubank", 3)},
		"c.pdf": {err: &parser.BackendError{StatusCode: 500, Detail: "boom"}, delay: 10 * time.Millisecond},
	}
	m := mocks.NewMockIService(ctrl)
	m.EXPECT().
		Parse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file *types.BufferedFile) (*parserModel.ParseResponse, error) {
			o := outcomes[file.OriginalName]
			time.Sleep(o.delay)
			return o.resp, o.err
		}).
		Times(3 * len(outcomes))

	svc := statement.NewService(m, parseURL)
	files := []types.BufferedFile{pdf("a.pdf", 1), pdf("b.pdf", 1), pdf("c.pdf", 1)}

	first := svc.Process(context.Background(), files)
	for i := 0; i < 2; i++ {
		assert.Equal(t, first, svc.Process(context.Background(), files))
	}
}
