package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/llm"
)

const codegenSystemPrompt = `You are an expert JavaScript developer specializing in Three.js 3D programming and IoT device integration.
Generate clean, working JavaScript code that can be directly injected into a Three.js scene.
Always include proper error handling and comments.
Focus on creating interactive, visually appealing 3D experiences.`

const llmCallTimeout = 30 * time.Second

// CodeContext lleva los datos opcionales de hardware que acompanan al prompt.
type CodeContext struct {
	Board   string
	Sensors []string
}

// CodeGenService elige una plantilla estatica por keyword y, si no hay
// match y hay credencial configurada, delega en el modelo externo. La
// delegacion es best-effort: cualquier falla cae al placeholder.
type CodeGenService struct {
	logger    *zap.Logger
	llmClient llm.Client
}

// NewCodeGenService crea el servicio; llmClient nil deshabilita la
// delegacion externa.
func NewCodeGenService(logger *zap.Logger, llmClient llm.Client) *CodeGenService {
	return &CodeGenService{logger: logger, llmClient: llmClient}
}

// Generate devuelve el snippet para el prompt dado.
func (s *CodeGenService) Generate(ctx context.Context, prompt string, codeCtx *CodeContext) string {
	if template, ok := matchTemplate(prompt); ok {
		return template
	}

	if s.llmClient == nil {
		return fallbackCode(prompt)
	}

	callCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()

	reply, err := s.llmClient.Generate(callCtx, buildSystemPrompt(codeCtx), "Generate JavaScript code for: "+prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("llm code generation failed", zap.Error(err))
		}
		return fallbackCode(prompt)
	}
	return extractFencedCode(reply)
}

func matchTemplate(prompt string) (string, bool) {
	promptLower := strings.ToLower(prompt)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(promptLower, kw) {
				return codeTemplates[rule.template], true
			}
		}
	}
	return "", false
}

func buildSystemPrompt(codeCtx *CodeContext) string {
	systemPrompt := codegenSystemPrompt
	if codeCtx != nil {
		if codeCtx.Board != "" {
			systemPrompt += fmt.Sprintf("\nTarget device: %s.", codeCtx.Board)
		}
		if len(codeCtx.Sensors) > 0 {
			systemPrompt += fmt.Sprintf("\nConnected sensors: %s.", strings.Join(codeCtx.Sensors, ", "))
		}
	}
	return systemPrompt
}

// fallbackCode es el placeholder de baja fidelidad que referencia el
// prompt original verbatim.
func fallbackCode(prompt string) string {
	return fmt.Sprintf(`
// AI-Generated code for: %s
console.log('AI processing: %s');
// This is a placeholder - external code generation is not configured
`, prompt, prompt)
}
