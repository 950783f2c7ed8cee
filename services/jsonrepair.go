package services

import (
	"encoding/json"
	"strings"
)

// RepairJSON : LLM 응답에서 JSON 복구
// 1) 마크다운 펜스 제거 → 2) 바로 파싱 → 3) 첫 {...} 구간 추출 → 4) 괄호 균형 맞추기
// 전부 실패하면 두 번째 반환값이 false (호출부는 기본값으로 대체).
func RepairJSON(text string) (json.RawMessage, bool) {
	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, false
	}

	// 바로 파싱 시도
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), true
	}

	// 첫 여는 괄호부터 마지막 닫는 괄호까지 잘라서 시도
	if span := extractObjectSpan(cleaned); span != "" && json.Valid([]byte(span)) {
		return json.RawMessage(span), true
	}

	// 잘린 응답: 괄호 균형을 맞춰 마지막 완결 구간까지 복구
	if balanced := balanceBrackets(cleaned); balanced != "" && json.Valid([]byte(balanced)) {
		return json.RawMessage(balanced), true
	}

	return nil, false
}

// DecodeRepaired : 복구된 JSON을 대상 구조체로 디코딩
func DecodeRepaired(text string, target interface{}) bool {
	raw, ok := RepairJSON(text)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, target) == nil
}

// StripCodeFences : ```json ... ``` 마크다운 펜스 제거
func StripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	lower := strings.ToLower(cleaned)
	if idx := strings.Index(lower, "```json"); idx >= 0 {
		cleaned = cleaned[:idx] + cleaned[idx+len("```json"):]
	}
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// extractObjectSpan : 첫 '{'부터 마지막 '}'까지 (없으면 빈 문자열)
func extractObjectSpan(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// balanceBrackets : 명시적 상태 기계로 괄호 균형 맞추기
// 문자열 내부/이스케이프를 추적하면서 {}/[] 스택을 유지하고,
// 입력이 끝나면 마지막 완결 지점까지 자른 뒤 열린 괄호를 순서대로 닫는다.
func balanceBrackets(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		start = strings.IndexByte(text, '[')
	}
	if start < 0 {
		return ""
	}
	text = text[start:]

	var stack []byte
	inString := false
	escaped := false
	lastComplete := -1 // 스택이 균형 잡힌 마지막 위치 (그 위치 포함)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
				lastComplete = i
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) == 0 || stack[len(stack)-1] != '{' {
				// 구조가 깨짐: 직전 완결 구간까지만 사용
				return truncateAndClose(text, lastComplete, stack)
			}
			stack = stack[:len(stack)-1]
		case ']':
			if len(stack) == 0 || stack[len(stack)-1] != '[' {
				return truncateAndClose(text, lastComplete, stack)
			}
			stack = stack[:len(stack)-1]
		}

		if !inString && len(stack) == 0 {
			// 루트가 닫힘: 여기까지가 완전한 JSON
			return text[:i+1]
		}
		if !inString {
			lastComplete = i
		}
	}

	// 문자열 도중이거나 괄호가 열린 채로 끝남
	return truncateAndClose(text, lastComplete, stack)
}

// truncateAndClose : 마지막 완결 지점까지 자르고 열린 괄호를 닫는다
func truncateAndClose(text string, lastComplete int, stack []byte) string {
	if lastComplete < 0 {
		return ""
	}
	prefix := text[:lastComplete+1]

	// 잘린 꼬리의 쉼표/콜론 정리 ({"a":1, 같은 형태)
	prefix = strings.TrimRight(prefix, " \t\r\n")
	prefix = strings.TrimRight(prefix, ",")
	if strings.HasSuffix(prefix, ":") {
		// 값이 잘려나간 키는 키째로 버린다
		if idx := strings.LastIndexByte(prefix, '"'); idx >= 0 {
			if open := strings.LastIndexByte(prefix[:idx], '"'); open >= 0 {
				prefix = strings.TrimRight(prefix[:open], " \t\r\n")
				prefix = strings.TrimRight(prefix, ",")
			}
		}
	}

	var closers strings.Builder
	closers.WriteString(prefix)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			closers.WriteByte('}')
		} else {
			closers.WriteByte(']')
		}
	}
	return closers.String()
}
