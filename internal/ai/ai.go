// Package ai is the bridge to the hosted text-generation service. A single
// combined prompt (role preamble + data snapshot + user question) goes out,
// exactly once per call; no retries, no streaming, no cancellation.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gymflow/gymflow-golang/internal/store"
)

// ErrMissingAPIKey means no credentials were configured; the service is
// never called in that case.
var ErrMissingAPIKey = errors.New("gemini api key not configured")

// ErrEmptyResponse means the service answered but produced no text.
var ErrEmptyResponse = errors.New("empty response from model")

// Fixed display strings. Failures never reach the chat panel as errors; they
// are converted to one of these at the conversation boundary.
const (
	MissingKeyText    = "Erro: Chave de API não configurada (GEMINI_API_KEY)."
	EmptyResponseText = "Desculpe, não consegui processar sua solicitação no momento."
	FailureText       = "Ocorreu um erro ao conectar com a IA. Verifique sua conexão ou a chave de API."
)

// Service holds the Gemini client and the model it talks to.
type Service struct {
	client *genai.Client
	model  string
}

// NewService initializes the Gemini client. An empty apiKey is not an
// error: the service comes up degraded and every Send short-circuits with
// ErrMissingAPIKey, so the rest of the dashboard keeps working.
func NewService(ctx context.Context, apiKey, model string) (*Service, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if apiKey == "" {
		return &Service{model: model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Service{client: client, model: model}, nil
}

// Send forwards the user's question plus the data snapshot and returns the
// assistant's text. The result is a plain success/error pair; converting
// errors to display strings is the caller's job (see FallbackText).
func (s *Service) Send(ctx context.Context, message string, snapshot store.Snapshot) (string, error) {
	if s.client == nil {
		return "", ErrMissingAPIKey
	}

	prompt, err := BuildPrompt(message, snapshot)
	if err != nil {
		return "", err
	}

	model := s.client.GenerativeModel(s.model)
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error sending message: %w", err)
	}

	text := extractText(res)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// BuildPrompt assembles the one combined prompt: the fixed GymFlow IA role
// preamble, a JSON dump of the current students and transactions, and the
// user's question.
func BuildPrompt(message string, snapshot store.Snapshot) (string, error) {
	students, err := json.Marshal(snapshot.Students)
	if err != nil {
		return "", err
	}
	transactions, err := json.Marshal(snapshot.Transactions)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Você é o GymFlow IA, um assistente financeiro especializado para donos de academia.

CONTEXTO DE DADOS ATUAL:
Alunos: %s
Transações (Receitas e Despesas): %s

SUAS FUNÇÕES:
1. Analisar os dados fornecidos acima.
2. Responder perguntas sobre faturamento, lucro, e inadimplência.
3. Se o usuário pedir para "Listar inadimplentes", liste os nomes e telefones.
4. Se o usuário pedir "Lucro", calcule (Soma das entradas - Soma das saídas).
5. Seja direto, use emojis, e fale português do Brasil.
6. Mantenha um tom prestativo e profissional, mas simples.

PERGUNTA DO USUÁRIO:
%s`, students, transactions, message), nil
}

// FallbackText maps a Send failure to the fixed string the chat panel shows.
// The chat always receives displayable text, whatever went wrong.
func FallbackText(err error) string {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return MissingKeyText
	case errors.Is(err, ErrEmptyResponse):
		return EmptyResponseText
	default:
		return FailureText
	}
}

func extractText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
