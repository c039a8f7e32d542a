package leaguegen

import (
	"fmt"
	"log"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// suggestionCeiling is the most suggestions any analysis may return.
const suggestionCeiling = 5

// verifyAnalysis checks the invariants every analysis response must hold:
// a bounded, deterministic, well-labeled suggestion list consistent with
// the stored profile.
func verifyAnalysis(target string, first, second *model.AnalysisResult, profile *model.TeamProfile, verbose bool) error {
	if first.Target != target {
		return fmt.Errorf("result target %q does not match requested %q", first.Target, target)
	}
	if len(first.Suggestions) > suggestionCeiling {
		return fmt.Errorf("got %d suggestions, ceiling is %d", len(first.Suggestions), suggestionCeiling)
	}
	if len(first.Suggestions) == 0 && first.Reason == "" {
		return fmt.Errorf("empty suggestion list carries no reason code")
	}

	seen := make(map[string]bool, len(first.Suggestions))
	for i := range first.Suggestions {
		s := &first.Suggestions[i]
		if err := verifySuggestion(target, s); err != nil {
			return err
		}
		sig := s.Signature()
		if seen[sig] {
			return fmt.Errorf("duplicate suggestion %s", sig)
		}
		seen[sig] = true
	}
	for i := 1; i < len(first.Suggestions); i++ {
		if first.Suggestions[i].Score > first.Suggestions[i-1].Score {
			return fmt.Errorf("suggestions not sorted by score at index %d", i)
		}
	}

	if err := verifyDeterminism(first, second); err != nil {
		return err
	}

	if profile != nil && profile.Team != target {
		return fmt.Errorf("profile team %q does not match %q", profile.Team, target)
	}

	if verbose {
		displaySuggestions(target, first)
	}
	log.Printf("verified %s: %d suggestions", target, len(first.Suggestions))
	return nil
}

func verifySuggestion(target string, s *model.TradeCandidate) error {
	if s.Partner == "" || s.Partner == target {
		return fmt.Errorf("suggestion has invalid partner %q", s.Partner)
	}
	if len(s.Outgoing) == 0 || len(s.Incoming) == 0 {
		return fmt.Errorf("suggestion with %s has an empty side", s.Partner)
	}
	switch s.Confidence {
	case model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceSpeculative:
	default:
		return fmt.Errorf("suggestion with %s has unknown confidence %q", s.Partner, s.Confidence)
	}
	return nil
}

// verifyDeterminism requires two runs over the same snapshot to agree on
// every suggestion, score and label.
func verifyDeterminism(first, second *model.AnalysisResult) error {
	if len(first.Suggestions) != len(second.Suggestions) {
		return fmt.Errorf("runs disagree on suggestion count: %d vs %d",
			len(first.Suggestions), len(second.Suggestions))
	}
	for i := range first.Suggestions {
		a, b := &first.Suggestions[i], &second.Suggestions[i]
		if a.Signature() != b.Signature() {
			return fmt.Errorf("runs disagree at rank %d: %s vs %s", i, a.Signature(), b.Signature())
		}
		if a.Score != b.Score {
			return fmt.Errorf("runs disagree on score at rank %d: %.4f vs %.4f", i, a.Score, b.Score)
		}
		if a.Confidence != b.Confidence {
			return fmt.Errorf("runs disagree on confidence at rank %d: %s vs %s", i, a.Confidence, b.Confidence)
		}
	}
	return nil
}

func displaySuggestions(target string, result *model.AnalysisResult) {
	log.Printf("suggestions for %s:", target)
	for i := range result.Suggestions {
		s := &result.Suggestions[i]
		log.Printf("   %d. with %s  score=%.2f net=%.1f gain=%.1f confidence=%s",
			i+1, s.Partner, s.Score, s.NetValue, s.CategoryGain, s.Confidence)
	}
}
