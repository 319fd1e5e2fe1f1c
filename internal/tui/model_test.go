package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/stockchat/internal/api"
	"github.com/diogo/stockchat/internal/models"
)

func newReadyModel(mock *api.MockQueryClient) Model {
	if mock == nil {
		mock = &api.MockQueryClient{EndpointVal: "https://example.com/query"}
	}
	m := NewChatModel(mock)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestNewChatModel_SeedsGreeting(t *testing.T) {
	m := NewChatModel(&api.MockQueryClient{})

	msgs := m.session.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 seeded message, got %d", len(msgs))
	}
	if msgs[0].Content != models.Greeting {
		t.Errorf("Expected greeting, got %q", msgs[0].Content)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := NewChatModel(&api.MockQueryClient{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	typed := updated.(Model)

	if typed.width != 100 || typed.height != 40 {
		t.Errorf("Dimensions not updated: %dx%d", typed.width, typed.height)
	}
	if !typed.ready {
		t.Error("Model should be ready after first WindowSizeMsg")
	}
}

func TestUpdate_EnterWithEmptyInput_NoOp(t *testing.T) {
	mock := &api.MockQueryClient{}
	m := newReadyModel(mock)
	m.textarea.SetValue("   ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	if typed.session.Len() != 1 {
		t.Errorf("Blank submit mutated the transcript: %d messages", typed.session.Len())
	}
	if typed.session.Busy() {
		t.Error("Blank submit set the busy flag")
	}
	if mock.QueryCalled != 0 {
		t.Error("Blank submit must not send a request")
	}
}

func TestUpdate_EnterSubmits(t *testing.T) {
	mock := &api.MockQueryClient{QueryVal: "$230.15"}
	m := newReadyModel(mock)
	m.textarea.SetValue("What is Apple's price?")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	if !typed.session.Busy() {
		t.Error("Session should be busy while the request is in flight")
	}
	if typed.session.Len() != 2 {
		t.Errorf("Expected user message appended, got %d messages", typed.session.Len())
	}
	if typed.textarea.Value() != "" {
		t.Error("Input buffer should clear on accepted submit")
	}
	if cmd == nil {
		t.Fatal("Expected a command to run the request")
	}
}

func TestUpdate_EnterWhileBusy_NoOp(t *testing.T) {
	mock := &api.MockQueryClient{QueryVal: "ok"}
	m := newReadyModel(mock)
	m.textarea.SetValue("first")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// Second submission attempted while the first is unresolved
	m.textarea.SetValue("second")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed := updated.(Model)

	if typed.session.Len() != 2 {
		t.Errorf("Busy submit mutated the transcript: %d messages", typed.session.Len())
	}
	if typed.textarea.Value() != "second" {
		t.Error("Rejected submit should not clear the input buffer")
	}
}

func TestUpdate_ResponseMsg_ResolvesTurn(t *testing.T) {
	m := newReadyModel(&api.MockQueryClient{})
	m.session.Begin("What is Apple's price?")

	updated, _ := m.Update(responseMsg{reply: "$230.15"})
	typed := updated.(Model)

	if typed.session.Busy() {
		t.Error("Session should be idle after the response arrives")
	}
	last := typed.session.Last()
	if last.Role != models.RoleAssistant || last.Content != "$230.15" {
		t.Errorf("Unexpected last message: %+v", last)
	}
}

func TestUpdate_ErrMsg_AppendsFallback(t *testing.T) {
	m := newReadyModel(&api.MockQueryClient{})
	m.session.Begin("What is Apple's price?")

	updated, _ := m.Update(errMsg{err: errors.New("upstream 500")})
	typed := updated.(Model)

	if typed.session.Busy() {
		t.Error("Session should be idle after a failed turn")
	}
	if got := typed.session.Last().Content; got != models.Fallback {
		t.Errorf("Expected fallback message, got %q", got)
	}
}

func TestSendMessage_MapsResultToMsg(t *testing.T) {
	mock := &api.MockQueryClient{QueryVal: "$230.15"}
	m := NewChatModel(mock)

	msg := m.sendMessage("question")()
	resp, ok := msg.(responseMsg)
	if !ok {
		t.Fatalf("Expected responseMsg, got %T", msg)
	}
	if resp.reply != "$230.15" {
		t.Errorf("Unexpected reply: %q", resp.reply)
	}

	mock.QueryErr = errors.New("boom")
	mock.QueryVal = ""
	msg = m.sendMessage("question")()
	if _, ok := msg.(errMsg); !ok {
		t.Fatalf("Expected errMsg, got %T", msg)
	}
}

func TestView_NotReady(t *testing.T) {
	m := NewChatModel(&api.MockQueryClient{})
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("Expected initializing placeholder before first WindowSizeMsg")
	}
}

func TestView_ShowsTranscript(t *testing.T) {
	m := newReadyModel(&api.MockQueryClient{EndpointVal: "https://example.com/query"})
	m.session.Begin("What is Apple's price?")
	m.session.Finish("$230.15", nil)
	m.updateViewport()

	view := m.View()
	if !strings.Contains(view, "Stock Assistant") {
		t.Error("Expected header in view")
	}
	if !strings.Contains(view, "What is Apple's price?") {
		t.Error("Expected user message in view")
	}
}

func TestUpdateViewport_OrderOldestFirst(t *testing.T) {
	m := newReadyModel(&api.MockQueryClient{})
	m.session.Begin("first question")
	m.session.Finish("first answer", nil)
	m.session.Begin("second question")
	m.session.Finish("second answer", nil)
	m.updateViewport()

	var roles []string
	for _, msg := range m.session.Messages() {
		roles = append(roles, msg.Role)
	}
	want := []string{
		models.RoleAssistant,
		models.RoleUser, models.RoleAssistant,
		models.RoleUser, models.RoleAssistant,
	}
	if strings.Join(roles, ",") != strings.Join(want, ",") {
		t.Errorf("Transcript order mismatch: %v", roles)
	}
}
