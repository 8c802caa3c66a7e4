package classifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tm-intent-classifier/internal/classify/classifier"
	"tm-intent-classifier/internal/topics"
)

func TestLLMClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Reply", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			`{"is_talent_management": true, "confidence": 0.92, "topic": "recruitment"}`,
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		res, err := cls.Classify(ctx, "how do I open a job requisition?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Topic != "recruitment" || !res.IsTalentManagement {
			t.Errorf("unexpected result: %+v", res)
		}
		if res.Confidence != 0.92 {
			t.Errorf("expected confidence 0.92, got %v", res.Confidence)
		}
		if hub.calls != 1 {
			t.Errorf("expected a single attempt, got %d", hub.calls)
		}
	})

	t.Run("Fenced Reply", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			"```json\n{\"is_talent_management\": true, \"confidence\": 0.8, \"topic\": \"time_attendance\"}\n```",
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		res, err := cls.Classify(ctx, "book time off")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Topic != "time_attendance" {
			t.Errorf("unexpected topic: %s", res.Topic)
		}
	})

	t.Run("Null Topic Means None", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			`{"is_talent_management": false, "confidence": 0.97, "topic": null}`,
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		res, err := cls.Classify(ctx, "what's for lunch?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Topic != topics.TopicNone || res.IsTalentManagement {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("Inconsistent Verdict Normalized", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			`{"is_talent_management": true, "confidence": 0.5, "topic": "none"}`,
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		res, err := cls.Classify(ctx, "hmm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsTalentManagement {
			t.Error("a none topic must force a non-TM verdict")
		}
	})

	t.Run("Transport Error", func(t *testing.T) {
		hub := &mockHub{err: errors.New("connection refused")}
		cls := classifier.NewLLM(hub, &mockLogger{})

		if _, err := cls.Classify(ctx, "anything"); err == nil {
			t.Fatal("expected transport error to surface")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		hub := &mockHub{response: hubReply(`The topic is recruitment, I think.`)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		_, err := cls.Classify(ctx, "anything")
		if !errors.Is(err, classifier.ErrMalformedReply) {
			t.Fatalf("expected ErrMalformedReply, got %v", err)
		}
	})

	t.Run("Missing Confidence", func(t *testing.T) {
		hub := &mockHub{response: hubReply(`{"is_talent_management": true, "topic": "recruitment"}`)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		_, err := cls.Classify(ctx, "anything")
		if !errors.Is(err, classifier.ErrMalformedReply) {
			t.Fatalf("expected ErrMalformedReply, got %v", err)
		}
	})

	t.Run("Confidence Out Of Range", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			`{"is_talent_management": true, "confidence": 1.7, "topic": "recruitment"}`,
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		_, err := cls.Classify(ctx, "anything")
		if !errors.Is(err, classifier.ErrConfidenceOutOfRange) {
			t.Fatalf("expected ErrConfidenceOutOfRange, got %v", err)
		}
	})

	t.Run("Unknown Topic", func(t *testing.T) {
		hub := &mockHub{response: hubReply(
			`{"is_talent_management": true, "confidence": 0.9, "topic": "payroll_migration"}`,
		)}
		cls := classifier.NewLLM(hub, &mockLogger{})

		_, err := cls.Classify(ctx, "anything")
		if !errors.Is(err, classifier.ErrUnknownTopic) {
			t.Fatalf("expected ErrUnknownTopic, got %v", err)
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		hub := &mockHub{response: hubReply("")}
		hub.response.Choices = nil
		cls := classifier.NewLLM(hub, &mockLogger{})

		_, err := cls.Classify(ctx, "anything")
		if !errors.Is(err, classifier.ErrMalformedReply) {
			t.Fatalf("expected ErrMalformedReply, got %v", err)
		}
	})

	t.Run("Name", func(t *testing.T) {
		cls := classifier.NewLLM(&mockHub{}, &mockLogger{})
		if !strings.HasPrefix(cls.Name(), "genaihub/") {
			t.Errorf("unexpected name: %s", cls.Name())
		}
	})
}
