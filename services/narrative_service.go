package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tawthiqproject/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// TextGenerator is the external generative-text boundary. One request per
// report view; the response is consumed verbatim or discarded.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator wraps the Gemini API as a TextGenerator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini generation failed: %w", err)
	}
	return resp.Text(), nil
}

// NarrativeService produces the performance-analysis text for the report.
// It is total: any failure of the external service is masked by the
// deterministic local summarizer, so a report always carries a narrative.
type NarrativeService interface {
	Generate(ctx context.Context, profile models.EmployeeProfile, objectives []models.Objective) string
}

type narrativeService struct {
	generator TextGenerator
	logger    *zap.Logger
}

// NewNarrativeService builds the narrative service. A nil generator is
// allowed and means fallback-only operation.
func NewNarrativeService(generator TextGenerator, logger *zap.Logger) NarrativeService {
	return &narrativeService{
		generator: generator,
		logger:    logger,
	}
}

func (s *narrativeService) Generate(ctx context.Context, profile models.EmployeeProfile, objectives []models.Objective) string {
	if s.generator != nil {
		prompt := buildNarrativePrompt(profile, objectives)
		text, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			// Diagnostics only; the caller never sees the failure.
			s.logger.Warn("narrative generation failed, using local summarizer", zap.Error(err))
		} else if strings.TrimSpace(text) != "" {
			return text
		}
	}
	return AnalyzePerformance(objectives)
}

// buildNarrativePrompt embeds the profile and the objectives tree into the
// Arabic analysis prompt sent to the generative service.
func buildNarrativePrompt(profile models.EmployeeProfile, objectives []models.Objective) string {
	type promptResult struct {
		Name    string   `json:"name"`
		Actual  string   `json:"actual"`
		Targets []string `json:"targets"`
	}
	type promptObjective struct {
		Text    string         `json:"text"`
		Results []promptResult `json:"results"`
	}

	payload := make([]promptObjective, 0, len(objectives))
	for _, obj := range objectives {
		po := promptObjective{Text: obj.Text, Results: make([]promptResult, 0, len(obj.Results))}
		for _, res := range obj.Results {
			po.Results = append(po.Results, promptResult{
				Name:    res.Name,
				Actual:  res.ActualPerformance,
				Targets: []string{res.TargetLow, res.TargetExpected, res.TargetHigh},
			})
		}
		payload = append(payload, po)
	}
	encoded, _ := json.Marshal(payload)

	var b strings.Builder
	b.WriteString("أنت خبير في تقييم الأداء المهني في نظام \"إجادة\" بوزارة التربية والتعليم بسلطنة عُمان.\n")
	b.WriteString("الرجاء تحليل بيانات الأداء التالية وتقديم تقرير مهني مفصل باللغة العربية.\n")
	b.WriteString("البيانات:\n")
	b.WriteString("الموظف: " + profile.Name + "\n")
	b.WriteString("الوظيفة: " + profile.JobTitle + "\n")
	b.WriteString("الأهداف: " + string(encoded) + "\n\n")
	b.WriteString("المطلوب في التقرير:\n")
	b.WriteString("1. ملخص عام للأداء.\n")
	b.WriteString("2. نقاط القوة التفصيلية لكل هدف بناءً على النتائج المحققة.\n")
	b.WriteString("3. مجالات التحسين المقترحة لكل هدف لضمان الاستمرارية.\n")
	b.WriteString("4. توصية ختامية مهنية.\n")
	b.WriteString("اجعل الأسلوب رسمياً، مشجعاً، ومنظماً باستخدام نقاط واضحة.")
	return b.String()
}

// AnalyzePerformance is the deterministic local summarizer: a pure function
// of the objectives tree, byte-identical for identical input.
func AnalyzePerformance(objectives []models.Objective) string {
	if len(objectives) == 0 {
		return "لا توجد بيانات كافية للتحليل."
	}

	var b strings.Builder
	b.WriteString("تحليل الأداء المهني الشامل:\n\n")

	for i, obj := range objectives {
		evidenceCount := 0
		for _, res := range obj.Results {
			evidenceCount += len(res.Evidence)
		}

		fmt.Fprintf(&b, "الهدف %d (%s):\n", i+1, obj.Text)
		fmt.Fprintf(&b, "- نقاط القوة: التزام واضح بتحقيق المستهدفات مع توفير %d دليل(أدلة) ملموسة.\n", evidenceCount)
		b.WriteString("- فرص التحسين: يمكن تعزيز هذا الهدف من خلال تنويع مصادر الأدلة الرقمية ورفع سقف التوقعات في النتائج القادمة.\n\n")
	}

	b.WriteString("التوصية العامة: الاستمرار في نهج التوثيق الرقمي المنظم لضمان دقة قياس مؤشرات الأداء الوظيفي.")
	return b.String()
}
