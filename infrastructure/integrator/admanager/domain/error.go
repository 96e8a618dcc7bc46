package gamdomain

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind identifica a categoria de uma falha na integração com o Ad Manager
type FailureKind string

const (
	KindConfigMissing   FailureKind = "CONFIG_MISSING"
	KindAuthFailure     FailureKind = "AUTH_FAILURE"
	KindTimeout         FailureKind = "TIMEOUT"
	KindDownloadFailure FailureKind = "DOWNLOAD_FAILURE"
	KindParseFailure    FailureKind = "PARSE_FAILURE"
	KindRequestFailure  FailureKind = "REQUEST_FAILURE"
	KindUnknown         FailureKind = "UNKNOWN"
)

// Failure é um erro etiquetado produzido no ponto da falha, para que os
// chamadores decidam pelo Kind em vez de inspecionar o texto da mensagem.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func NewFailure(kind FailureKind, message string, cause error) *Failure {
	return &Failure{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Cause)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// KindOf retorna a categoria do erro, ou KindUnknown quando o erro não foi
// produzido pela integração.
func KindOf(err error) FailureKind {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return KindUnknown
}

// IsAuthRelated indica se a falha aparenta ser de credencial ou configuração.
// Para erros não etiquetados mantém a heurística legada de substring sobre a
// mensagem ("auth"/"credential", sensível a maiúsculas).
func IsAuthRelated(err error) bool {
	if err == nil {
		return false
	}

	switch KindOf(err) {
	case KindConfigMissing, KindAuthFailure:
		return true
	case KindUnknown:
		msg := err.Error()
		return strings.Contains(msg, "auth") || strings.Contains(msg, "credential")
	}

	return false
}
