package statement

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	MsgNoFiles          = "Nenhum arquivo selecionado."
	MsgInvalidExtension = "Apenas arquivos PDF são aceitos. Arquivos inválidos: "
	MsgUnknownError     = "Erro desconhecido"
	MsgServerError      = "Erro do servidor: %d"
	MsgConnect          = "Não foi possível conectar ao servidor de processamento."
	MsgConnectHintPort  = " Verifique se o backend está rodando na porta %s."
	MsgConnectHint      = " Verifique se o backend está rodando."
)

var (
	// ErrNoFiles: the submission has no file, or only empty ones.
	ErrNoFiles = errors.New("no files selected")

	// ErrAllFailed: every file was rejected by the backend.
	ErrAllFailed = errors.New("every file failed")
)

// InvalidExtensionError lists every submitted name that does not end in .pdf.
type InvalidExtensionError struct {
	Names []string
}

func (e *InvalidExtensionError) Error() string {
	return "invalid file extension: " + strings.Join(e.Names, ", ")
}

// BackendConnectError means an outbound call could not be completed at all.
type BackendConnectError struct {
	FileName string
	Err      error
}

func (e *BackendConnectError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.FileName, e.Err)
}

func (e *BackendConnectError) Unwrap() error {
	return e.Err
}

// userMessage renders the Portuguese message shown for a request-level error.
func userMessage(err error, connectMsg string) string {
	var extErr *InvalidExtensionError
	var connErr *BackendConnectError
	switch {
	case errors.Is(err, ErrNoFiles):
		return MsgNoFiles
	case errors.As(err, &extErr):
		return MsgInvalidExtension + strings.Join(extErr.Names, ", ")
	case errors.As(err, &connErr):
		return connectMsg
	default:
		return MsgUnknownError
	}
}

// connectMessage names the backend port when the endpoint makes it known.
func connectMessage(parseURL string) string {
	u, err := url.Parse(parseURL)
	if err != nil || u.Host == "" {
		return MsgConnect + MsgConnectHint
	}
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		default:
			return MsgConnect + MsgConnectHint
		}
	}
	return MsgConnect + fmt.Sprintf(MsgConnectHintPort, port)
}
