package ai

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go_vi_dict/internal/model"
)

// PromptVersion はプロンプトを変更したら上げる。キャッシュキーの一部
const PromptVersion = "v1"

const maxWordRunes = 30

// IsLikelyWord は前後の空白を除いた text が空白を含まず30文字以下なら単語とみなします
func IsLikelyWord(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxWordRunes {
		return false
	}
	return strings.IndexFunc(trimmed, unicode.IsSpace) < 0
}

// BuildPrompt は単語モード/文章モードのプロンプトを組み立てます
func BuildPrompt(req Request) string {
	tmpl := sentencePromptTemplate
	if req.IsWord {
		tmpl = wordPromptTemplate
	}
	r := strings.NewReplacer(
		"{{TEXT}}", req.Text,
		"{{SOURCE}}", model.LanguageName(req.SourceLanguage),
		"{{TARGET}}", model.LanguageName(req.TargetLanguage),
		"{{EXAMPLES}}", sentenceExamples(req.SourceLanguage, req.TargetLanguage),
	)
	return r.Replace(tmpl)
}

func sentenceExamples(source, target string) string {
	switch {
	case source == model.LanguageVietnamese && target == model.LanguageEnglish:
		return viToEnExamples
	case source == model.LanguageEnglish && target == model.LanguageVietnamese:
		return enToViExamples
	default:
		return ""
	}
}

const wordPromptTemplate = `You are a professional bilingual dictionary. Provide a comprehensive dictionary entry for the word "{{TEXT}}" from {{SOURCE}} to {{TARGET}}.

Format your response EXACTLY as follows:

**{{TEXT}}**

**Phonetic:** [Provide IPA phonetic transcription, e.g., /ˈwɜːrd/]

**Part of Speech:** [noun/verb/adjective/adverb/etc.]

**Definitions:**

1. **[Direct translation in {{TARGET}}]** - [Brief explanation or context if needed]
   - Example 1: [Example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 1 in {{TARGET}}]

   - Example 2: [Another example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 2 in {{TARGET}}]

2. **[Alternative translation in {{TARGET}}]** - [Brief explanation or context if needed]
   - Example 1: [Example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 1 in {{TARGET}}]

   - Example 2: [Another example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 2 in {{TARGET}}]

3. **[Another translation/meaning in {{TARGET}}]** - [Brief explanation or context if needed]
   - Example 1: [Example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 1 in {{TARGET}}]

   - Example 2: [Another example sentence in {{SOURCE}}]
     → Translation: [Translation of Example 2 in {{TARGET}}]

TRANSLATION DIRECTION: {{SOURCE}} → {{TARGET}}

TRANSLATION RULES:
- START with the direct, simple translation in BOLD (e.g., "**cầu lông**" for "badminton")
- DO NOT write long explanatory definitions as the main translation
- The bold text must be the actual translated word/phrase, NOT a definition
- After the bold translation, you can add " - " followed by a brief context if needed
- Example CORRECT format: "1. **cầu lông** - một môn thể thao dùng vợt"
- Example WRONG format: "1. **một môn thể thao trong nhà hoặc ngoài trời...**"
- THE ENTIRE LINE (both bold translation AND explanation after dash) MUST be in {{TARGET}}
- DO NOT mix languages in the definition line

OTHER REQUIREMENTS:
- Provide at least 2-3 different translations/meanings when applicable
- Each definition should have 2 examples with translations
- Include different contexts when the word has multiple uses
- The most common translation is listed first
- Phonetic transcription is accurate and in IPA format
- Examples must be natural and practical
- Keep explanations brief and clear
- Do NOT include a "Usage Notes" section`

const sentencePromptTemplate = `You are a professional translator. Translate this {{SOURCE}} text to natural, idiomatic {{TARGET}}: "{{TEXT}}"

TRANSLATION RULES:
- Provide ONLY the translated text - no explanations, no thinking process, no additional formatting
- The translation must sound NATURAL and NATIVE in {{TARGET}}
- PRESERVE the original formatting: new lines, line breaks, paragraph structure, spacing, etc.
- If the source has multiple lines or paragraphs, the translation MUST maintain the same structure
- Match the tone, register, and context of the original text (formal/informal, casual/professional)
- Use idiomatic expressions appropriate to the context, NOT literal word-for-word translation

EXAMPLES OF NATURAL VS LITERAL TRANSLATION:
{{EXAMPLES}}

OUTPUT: Just the natural {{TARGET}} translation, nothing else.`

const viToEnExamples = `- Vietnamese: "hôm nay tôi muốn đi chơi"
  LITERAL (too childish): "Today I want to go out and play"
  NATURAL: "I want to go out today" or "I feel like going out today"

- Vietnamese: "ăn cơm chưa?"
  LITERAL: "Have you eaten rice yet?"
  NATURAL: "Have you eaten?" or "Did you eat?"

- Vietnamese multi-line:
  "Hôm nay tôi buồn

  tôi muốn đi chơi"
  WRONG (lost formatting): "I'm feeling sad today, I want to go out."
  CORRECT (preserves structure):
  "I'm feeling sad today

  I want to go out"`

const enToViExamples = `- English: "How's it going?"
  LITERAL: "Nó đang đi như thế nào?"
  NATURAL: "Thế nào rồi?" or "Dạo này thế nào?"

- English: "I'm heading out"
  LITERAL: "Tôi đang hướng ra ngoài"
  NATURAL: "Tôi đi đây" or "Tôi ra ngoài đây"

- English multi-line:
  "I'm feeling tired

  I need a break"
  WRONG (lost formatting): "Tôi cảm thấy mệt, tôi cần nghỉ ngơi."
  CORRECT (preserves structure):
  "Tôi cảm thấy mệt

  Tôi cần nghỉ ngơi"`
