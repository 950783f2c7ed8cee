package services

import (
	"testing"
)

func TestRepairJSONFencedResponse(t *testing.T) {
	t.Parallel()

	raw := "Here is the score:\n```json\n{\"score\": 4, \"reasoning\": \"Good balance\"}\n```\nLet me know!"

	var result struct {
		Score     int    `json:"score"`
		Reasoning string `json:"reasoning"`
	}
	if !DecodeRepaired(raw, &result) {
		t.Fatal("fenced response should decode")
	}
	if result.Score != 4 || result.Reasoning != "Good balance" {
		t.Fatalf("decoded = %+v", result)
	}
}

func TestRepairJSONProseAroundObject(t *testing.T) {
	t.Parallel()

	raw := `Sure! {"calories": 250, "protein": 6.5} hope that helps.`

	var result struct {
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
	}
	if !DecodeRepaired(raw, &result) {
		t.Fatal("object with surrounding prose should decode")
	}
	if result.Calories != 250 || result.Protein != 6.5 {
		t.Fatalf("decoded = %+v", result)
	}
}

func TestRepairJSONTruncatedString(t *testing.T) {
	t.Parallel()

	// 문자열 값 도중에 잘린 응답: 잘린 키는 버리고 앞부분을 살린다
	raw := `{"score": 4, "reasoning": "the meal was grea`

	var result struct {
		Score int `json:"score"`
	}
	if !DecodeRepaired(raw, &result) {
		t.Fatal("truncated response should recover the complete prefix")
	}
	if result.Score != 4 {
		t.Fatalf("score = %d, want 4", result.Score)
	}
}

func TestRepairJSONTruncatedArray(t *testing.T) {
	t.Parallel()

	raw := `{"recommendations": [{"title": "Hydrate", "description": "Drink more wat`

	var result struct {
		Recommendations []struct {
			Title string `json:"title"`
		} `json:"recommendations"`
	}
	if !DecodeRepaired(raw, &result) {
		t.Fatal("truncated array should recover")
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Title != "Hydrate" {
		t.Fatalf("decoded = %+v", result.Recommendations)
	}
}

func TestRepairJSONUnrecoverable(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"no json here at all",
		"```json\n```",
	}
	for _, raw := range cases {
		if _, ok := RepairJSON(raw); ok {
			t.Errorf("RepairJSON(%q) = ok, want failure", raw)
		}
	}
}

func TestRepairJSONNeverPanics(t *testing.T) {
	t.Parallel()

	cases := []string{
		"}{",
		`{"a": "unterminated`,
		`[[[{{{`,
		`{"a": [1, 2,`,
		"```json{```",
		`{"key":`,
	}
	for _, raw := range cases {
		var target map[string]interface{}
		// 결과와 무관하게 패닉 없이 bool만 돌려주면 된다
		_ = DecodeRepaired(raw, &target)
	}
}

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {} ", "{}"},
	}
	for _, tc := range cases {
		if got := StripCodeFences(tc.in); got != tc.want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
