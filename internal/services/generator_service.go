package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/studyquiz/back/internal/clients"
	"github.com/studyquiz/back/internal/models"
)

// プロンプトに埋め込む教材テキストの上限（文脈長対策）
const generationContentCap = 12000

const generationSystemPrompt = `You are a quiz generator for study materials. You create clear, factual quiz questions strictly grounded in the source material provided by the user. You always respond with a JSON array only: no markdown fences, no commentary, no surrounding prose.`

// GeneratorService は教材テキストからクイズ問題を生成する
type GeneratorService interface {
	GenerateQuestions(ctx context.Context, content string, questionType models.QuestionType, count int) ([]models.GeneratedQuestion, error)
}

type generatorService struct {
	client clients.CompletionClient
	split  MixedSplitPolicy
}

func NewGeneratorService(client clients.CompletionClient, split MixedSplitPolicy) GeneratorService {
	return &generatorService{
		client: client,
		split:  split,
	}
}

// 生成結果がJSON配列として解釈できなかった場合のエラー。診断用に生のレスポンスを保持する
type MalformedResponseError struct {
	RawResponse string
	Err         error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse generated questions: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func IsMalformedResponseError(err error) bool {
	_, ok := err.(*MalformedResponseError)
	return ok
}

// mixed生成時のタイプ配分（パーセント指定、合計100）
type MixedSplitPolicy struct {
	MultipleChoice int
	Identification int
	TrueFalse      int
}

var defaultMixedSplit = MixedSplitPolicy{MultipleChoice: 50, Identification: 25, TrueFalse: 25}

// MIXED_SPLIT環境変数（例: "50,25,25"）から配分を読み込む。不正な値はデフォルトに戻す
func MixedSplitFromEnv() MixedSplitPolicy {
	raw := os.Getenv("MIXED_SPLIT")
	if raw == "" {
		return defaultMixedSplit
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		fmt.Printf("⚠️ MIXED_SPLITの形式が不正です（%s）。デフォルトの50,25,25を使用します\n", raw)
		return defaultMixedSplit
	}

	values := make([]int, 3)
	sum := 0
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			fmt.Printf("⚠️ MIXED_SPLITの形式が不正です（%s）。デフォルトの50,25,25を使用します\n", raw)
			return defaultMixedSplit
		}
		values[i] = value
		sum += value
	}

	if sum != 100 {
		fmt.Printf("⚠️ MIXED_SPLITの合計が100になりません（%s）。デフォルトの50,25,25を使用します\n", raw)
		return defaultMixedSplit
	}

	return MixedSplitPolicy{MultipleChoice: values[0], Identification: values[1], TrueFalse: values[2]}
}

// countを3タイプに分配する。端数はtrue_falseが吸収する
func (p MixedSplitPolicy) split(count int) (multipleChoice, identification, trueFalse int) {
	multipleChoice = count * p.MultipleChoice / 100
	identification = count * p.Identification / 100
	trueFalse = count - multipleChoice - identification
	return multipleChoice, identification, trueFalse
}

func (s *generatorService) GenerateQuestions(ctx context.Context, content string, questionType models.QuestionType, count int) ([]models.GeneratedQuestion, error) {
	capped := capContent(content)

	userPrompt := s.buildUserPrompt(capped, questionType, count)

	fmt.Printf("🤖 問題生成開始 - タイプ: %s, 問題数: %d, 教材: %d文字\n", questionType, count, len(capped))

	// 生成1回につき呼び出しは1回だけ。失敗してもリトライしない
	response, err := s.client.GenerateCompletion(ctx, generationSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	questions, err := s.parseQuestions(response, questionType, count)
	if err != nil {
		return nil, err
	}

	fmt.Printf("✅ 問題生成完了 - %d問（要求: %d問）\n", len(questions), count)
	return questions, nil
}

func (s *generatorService) buildUserPrompt(content string, questionType models.QuestionType, count int) string {
	var rules string
	switch questionType {
	case models.QuestionTypeMultipleChoice:
		rules = multipleChoiceRules(count)
	case models.QuestionTypeIdentification:
		rules = identificationRules(count)
	case models.QuestionTypeTrueFalse:
		rules = trueFalseRules(count)
	case models.QuestionTypeMixed:
		multipleChoice, identification, trueFalse := s.split.split(count)
		var blocks []string
		if multipleChoice > 0 {
			blocks = append(blocks, multipleChoiceRules(multipleChoice))
		}
		if identification > 0 {
			blocks = append(blocks, identificationRules(identification))
		}
		if trueFalse > 0 {
			blocks = append(blocks, trueFalseRules(trueFalse))
		}
		rules = strings.Join(blocks, "\n\n") + "\n\nReturn all questions together in one combined JSON array."
	}

	return fmt.Sprintf(`Generate quiz questions from the source material below.

%s

Every question must be answerable from the source material alone. Quote or closely paraphrase the relevant part of the source material in "explanation".

Respond with a JSON array only. No markdown, no code fences, no prose before or after the array. Each element must have the keys "type", "question_text", "options", "correct_answer", and "explanation".

Source material:
---
%s
---`, rules, content)
}

func multipleChoiceRules(count int) string {
	return fmt.Sprintf(`Create exactly %d multiple choice questions ("type": "multiple_choice").
- Each question has exactly 4 options.
- Exactly one option is correct, and "correct_answer" must match that option string exactly.
- The other 3 options must be plausible but wrong according to the source material.`, count)
}

func identificationRules(count int) string {
	return fmt.Sprintf(`Create exactly %d identification questions ("type": "identification").
- No options: omit the "options" key.
- "correct_answer" is the short exact term or phrase being asked for.`, count)
}

func trueFalseRules(count int) string {
	return fmt.Sprintf(`Create exactly %d true or false questions ("type": "true_false").
- "options" must be exactly ["True", "False"].
- "correct_answer" must be "True" or "False".`, count)
}

func (s *generatorService) parseQuestions(raw string, questionType models.QuestionType, count int) ([]models.GeneratedQuestion, error) {
	cleaned := stripCodeFence(raw)

	var elements []map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		preview := raw
		if len(preview) > 300 {
			preview = preview[:300] + "..."
		}
		fmt.Printf("❌ 生成結果のJSON解析に失敗しました: %v\n", err)
		fmt.Printf("📝 Raw response preview: %s\n", preview)
		return nil, &MalformedResponseError{RawResponse: raw, Err: err}
	}

	// 要求数を超えた分は切り捨てる。足りない分は埋めない
	questions := make([]models.GeneratedQuestion, 0, len(elements))
	for i, element := range elements {
		if len(questions) >= count {
			break
		}
		questions = append(questions, coerceQuestion(element, i, questionType))
	}

	return questions, nil
}

// 欠けているフィールドを補いながらGeneratedQuestionに変換する
func coerceQuestion(element map[string]interface{}, index int, selector models.QuestionType) models.GeneratedQuestion {
	question := models.GeneratedQuestion{
		Type:          models.QuestionType(stringField(element, "type")),
		QuestionText:  stringField(element, "question_text"),
		Options:       stringSliceField(element, "options"),
		CorrectAnswer: stringField(element, "correct_answer"),
		Explanation:   stringField(element, "explanation"),
	}

	if question.Type == "" {
		if selector == models.QuestionTypeMixed {
			// mixedでは型のデフォルトが決められないため選択肢の形から推定する
			question.Type = inferQuestionType(question)
		} else {
			question.Type = selector
		}
	}

	if question.QuestionText == "" {
		question.QuestionText = fmt.Sprintf("Question %d", index+1)
	}

	if question.Type == models.QuestionTypeTrueFalse && len(question.Options) == 0 {
		question.Options = []string{"True", "False"}
	}

	return question
}

func inferQuestionType(question models.GeneratedQuestion) models.QuestionType {
	if len(question.Options) == 0 {
		return models.QuestionTypeIdentification
	}
	if isTrueFalseOptions(question.Options) {
		return models.QuestionTypeTrueFalse
	}
	return models.QuestionTypeMultipleChoice
}

func isTrueFalseOptions(options []string) bool {
	if len(options) != 2 {
		return false
	}
	return (strings.EqualFold(options[0], "true") && strings.EqualFold(options[1], "false")) ||
		(strings.EqualFold(options[0], "false") && strings.EqualFold(options[1], "true"))
}

// コードフェンス付きで返ってくることがあるため、構造解析の前に剥がす
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}

	cleaned = strings.TrimSpace(cleaned)
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	return strings.TrimSpace(cleaned)
}

func capContent(content string) string {
	if len(content) <= generationContentCap {
		return content
	}
	limit := generationContentCap
	// ルーンの途中で切らない
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit]
}

func stringField(element map[string]interface{}, key string) string {
	if value, ok := element[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func stringSliceField(element map[string]interface{}, key string) []string {
	raw, ok := element[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if text, ok := item.(string); ok {
			values = append(values, text)
		} else {
			values = append(values, fmt.Sprintf("%v", item))
		}
	}
	return values
}
