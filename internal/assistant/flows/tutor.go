package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/catalog"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
)

const (
	ModeLearn     = "learn"
	ModeQuiz      = "quiz"
	ModeTeachBack = "teach_back"
)

// TutorFlow runs the study-session conversation: pick a topic from the
// loaded set, then switch between learn, quiz, and teach-back modes. It
// keeps no durable state; a session lives and dies in memory.
type TutorFlow struct {
	topics []catalog.Topic
	topic  *catalog.Topic
	mode   string
}

func NewTutorFlow(topics []catalog.Topic) *TutorFlow {
	return &TutorFlow{topics: topics}
}

// Topic returns the currently selected topic, or nil.
func (f *TutorFlow) Topic() *catalog.Topic {
	return f.topic
}

// Mode returns the current study mode, or "" before one is chosen.
func (f *TutorFlow) Mode() string {
	return f.mode
}

func (f *TutorFlow) topicList() string {
	parts := make([]string, 0, len(f.topics))
	for _, t := range f.topics {
		parts = append(parts, fmt.Sprintf("%s (%s)", t.ID, t.Title))
	}
	return strings.Join(parts, ", ")
}

func (f *TutorFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.topic = nil
	f.mode = ""
	greeting := "Welcome to your study session."
	if name != "" {
		greeting = fmt.Sprintf("Welcome to your study session, %s.", name)
	}
	return model.Response{
		Text:   fmt.Sprintf("%s Available topics are: %s. Which one shall we dig into?", greeting, f.topicList()),
		Status: model.StatusOK,
	}, nil
}

// SelectTopic picks the topic to study. Unknown topics are rejected and the
// available set is repeated.
func (f *TutorFlow) SelectTopic(ctx context.Context, id string) (model.Response, error) {
	t := catalog.FindTopic(f.topics, id)
	if t == nil {
		return model.Response{
			Text:   fmt.Sprintf("I don't have a topic called '%s'. Available topics are: %s.", strings.TrimSpace(id), f.topicList()),
			Status: model.StatusInvalid,
		}, nil
	}
	f.topic = t
	f.mode = ""
	return model.Response{
		Text:   fmt.Sprintf("Great choice. We'll study %s. Do you want to learn, take a quiz, or teach it back to me?", t.Title),
		Status: model.StatusUpdated,
		Ref:    t.ID,
	}, nil
}

// SetMode switches the study mode for the selected topic.
func (f *TutorFlow) SetMode(ctx context.Context, mode string) (model.Response, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case ModeLearn, ModeQuiz, ModeTeachBack:
	default:
		return model.Response{
			Text:   fmt.Sprintf("I don't know the mode '%s'. You can learn, quiz, or teach_back.", mode),
			Status: model.StatusInvalid,
		}, nil
	}
	if f.topic == nil {
		return model.Response{
			Text:   fmt.Sprintf("Pick a topic first. Available topics are: %s.", f.topicList()),
			Status: model.StatusInvalid,
		}, nil
	}
	f.mode = mode

	var text string
	switch mode {
	case ModeLearn:
		text = fmt.Sprintf("Let's learn about %s. %s", f.topic.Title, f.topic.Summary)
	case ModeQuiz:
		text = fmt.Sprintf("Quiz time on %s. Here's one to start: %s", f.topic.Title, f.topic.SampleQuestion)
	case ModeTeachBack:
		text = fmt.Sprintf("Your turn. Teach me about %s in your own words, and I'll listen for the key ideas.", f.topic.Title)
	}
	return model.Response{Text: text, Status: model.StatusUpdated, Ref: f.topic.ID}, nil
}

// Finalize recaps the session.
func (f *TutorFlow) Finalize(ctx context.Context) (model.Response, error) {
	if f.topic == nil {
		return model.Response{
			Text:   "We didn't settle on a topic this time. Come back whenever you want to study.",
			Status: model.StatusOK,
		}, nil
	}
	text := fmt.Sprintf("Good session. We covered %s.", f.topic.Title)
	if f.mode != "" {
		text = fmt.Sprintf("Good session. We covered %s in %s mode.", f.topic.Title, f.mode)
	}
	return model.Response{Text: text, Status: model.StatusOK, Ref: f.topic.ID}, nil
}

func (f *TutorFlow) Restart(ctx context.Context) (model.Response, error) {
	f.topic = nil
	f.mode = ""
	return model.Response{
		Text:   fmt.Sprintf("Clean slate. Available topics are: %s. What shall we study?", f.topicList()),
		Status: model.StatusOK,
	}, nil
}

func (f *TutorFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	text := strings.ToLower(strings.TrimSpace(in.Text))
	switch text {
	case "":
		return model.Response{
			Text:   "Say a topic name, or a mode: learn, quiz, or teach_back.",
			Status: model.StatusUnresolved,
		}, nil
	case ModeLearn, ModeQuiz, ModeTeachBack:
		return f.SetMode(ctx, text)
	}
	if t := catalog.FindTopic(f.topics, text); t != nil {
		return f.SelectTopic(ctx, text)
	}
	return model.Response{
		Text:   fmt.Sprintf("I didn't catch a topic or a mode there. Available topics are: %s.", f.topicList()),
		Status: model.StatusUnresolved,
	}, nil
}

var _ Assistant = (*TutorFlow)(nil)
