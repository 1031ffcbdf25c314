package model

import "encoding/json"

// Transaction is one record as returned by the parsing backend; its keys are not interpreted.
type Transaction = map[string]any

// FileResult is the outcome of sending one file to the backend: FileSuccess or FileFailure.
type FileResult interface {
	Name() string
	isFileResult()
}

type FileSuccess struct {
	FileName          string
	Bank              string
	Transactions      []Transaction
	TotalTransactions int
}

type FileFailure struct {
	FileName string
	Error    string
}

func (r FileSuccess) Name() string { return r.FileName }
func (r FileFailure) Name() string { return r.FileName }

func (FileSuccess) isFileResult() {}
func (FileFailure) isFileResult() {}

// Result is the aggregated outcome of one submission: Success or Failure.
type Result interface {
	IsSuccess() bool
	isResult()
}

type Success struct {
	Banks             []string      `json:"banks"`
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"totalTransactions"`
	FileNames         []string      `json:"fileNames"`
	// Errors is nil unless some files failed.
	Errors []string `json:"errors"`
}

type Failure struct {
	Error string `json:"error"`
	// Cause is the typed error behind Error.
	Cause error `json:"-"`
}

func (Success) IsSuccess() bool { return true }
func (Failure) IsSuccess() bool { return false }

func (Success) isResult() {}
func (Failure) isResult() {}

func (s Success) MarshalJSON() ([]byte, error) {
	type alias Success
	return json.Marshal(struct {
		Success bool `json:"success"`
		alias
	}{true, alias(s)})
}

func (f Failure) MarshalJSON() ([]byte, error) {
	type alias Failure
	return json.Marshal(struct {
		Success bool `json:"success"`
		alias
	}{false, alias(f)})
}
