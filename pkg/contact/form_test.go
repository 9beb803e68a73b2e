package contact_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/async"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

type shown struct {
	text string
	typ  notifications.Type
}

type recordingNotifier struct {
	mu    sync.Mutex
	shown []shown
}

func (n *recordingNotifier) Notify(_ context.Context, text string, typ notifications.Type) notifications.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, shown{text: text, typ: typ})
	return notifications.Notification{Generation: uint64(len(n.shown)), Message: text, Type: typ}
}

func (n *recordingNotifier) all() []shown {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shown(nil), n.shown...)
}

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, msg contact.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// syncView guards recordingView for use from the submission goroutine.
type syncView struct {
	mu sync.Mutex
	v  *recordingView
}

func newSyncView() *syncView { return &syncView{v: newRecordingView()} }

func (s *syncView) SetFieldError(name, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.SetFieldError(name, message)
}

func (s *syncView) ClearFieldError(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.ClearFieldError(name)
}

func (s *syncView) SetPending(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.SetPending(p)
}

func (s *syncView) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Reset()
}

func (s *syncView) snapshot() recordingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.v
	cp.pending = append([]bool(nil), s.v.pending...)
	return cp
}

func validFields() []contact.Field {
	return []contact.Field{
		{Name: "name", Value: "Al", Required: true},
		{Name: "email", Value: "al@example.com", Required: true},
		{Name: "message", Value: "Hello there!", Required: true},
	}
}

func TestForm_SubmitSent(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	release := make(chan struct{})
	var got contact.Message
	submitter := contact.SubmitterFunc(func(_ context.Context, m contact.Message) error {
		got = m
		<-release
		return nil
	})

	form := contact.NewForm(notifier, submitter, view)
	future := form.Submit(context.Background(), validFields())

	assert.True(t, form.Pending())
	assert.Equal(t, []bool{true}, view.snapshot().pending)
	assert.Empty(t, notifier.all(), "nothing is shown before the submission completes")

	close(release)
	outcome, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, contact.OutcomeSent, outcome)

	assert.False(t, form.Pending())
	snap := view.snapshot()
	assert.Equal(t, []bool{true, false}, snap.pending)
	assert.Equal(t, 1, snap.resets)
	assert.Equal(t, []shown{{text: "Message sent successfully! I'll get back to you soon.", typ: notifications.TypeSuccess}}, notifier.all())
	assert.Equal(t, contact.Message{Name: "Al", Email: "al@example.com", Body: "Hello there!"}, got)
}

func TestForm_SubmitInvalid(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	submitter := &mockSubmitter{}

	form := contact.NewForm(notifier, submitter, view)
	fields := validFields()
	fields[0].Value = "A"

	outcome, err := form.Submit(context.Background(), fields).Await()
	require.NoError(t, err)
	assert.Equal(t, contact.OutcomeInvalid, outcome)

	submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	assert.False(t, form.Pending())

	snap := view.snapshot()
	assert.Equal(t, "Name must be at least 2 characters long.", snap.errors["name"])
	assert.Empty(t, snap.pending, "pending state is never entered")
	assert.Zero(t, snap.resets)
	assert.Equal(t, []shown{{text: "Please fill in all required fields correctly.", typ: notifications.TypeError}}, notifier.all())
}

func TestForm_SubmitFailed(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	boom := errors.New("backend down")
	submitter := &mockSubmitter{}
	submitter.On("Submit", mock.Anything, contact.Message{Name: "Al", Email: "al@example.com", Body: "Hello there!"}).Return(boom).Once()

	form := contact.NewForm(notifier, submitter, view)
	outcome, err := form.Submit(context.Background(), validFields()).Await()

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, contact.OutcomeFailed, outcome)
	submitter.AssertExpectations(t)

	snap := view.snapshot()
	assert.Equal(t, []bool{true, false}, snap.pending)
	assert.Zero(t, snap.resets, "fields are kept on failure")
	assert.Equal(t, []shown{{text: contact.MsgFailed, typ: notifications.TypeError}}, notifier.all())
	assert.False(t, form.Pending())
}

func TestForm_SubmitterPanics(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	submitter := &mockSubmitter{}
	submitter.On("Submit", mock.Anything, mock.Anything).Panic("mail relay exploded").Once()

	form := contact.NewForm(notifier, submitter, view)
	outcome, err := form.Submit(context.Background(), validFields()).AwaitWithTimeout(time.Second)

	require.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "mail relay exploded")
	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.Equal(t, []bool{true, false}, view.snapshot().pending)
	assert.Equal(t, []shown{{text: contact.MsgFailed, typ: notifications.TypeError}}, notifier.all())
	assert.False(t, form.Pending(), "a panicking submitter still releases the form")
}

func TestForm_SubmitBusy(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	release := make(chan struct{})
	calls := 0
	submitter := contact.SubmitterFunc(func(context.Context, contact.Message) error {
		calls++
		<-release
		return nil
	})

	form := contact.NewForm(notifier, submitter, newSyncView())
	first := form.Submit(context.Background(), validFields())

	outcome, err := form.Submit(context.Background(), validFields()).Await()
	require.NoError(t, err)
	assert.Equal(t, contact.OutcomeBusy, outcome)

	close(release)
	outcome, err = first.Await()
	require.NoError(t, err)
	assert.Equal(t, contact.OutcomeSent, outcome)
	assert.Equal(t, 1, calls)
	assert.Len(t, notifier.all(), 1)

	outcome, err = form.Submit(context.Background(), validFields()).Await()
	require.NoError(t, err)
	assert.Equal(t, contact.OutcomeSent, outcome, "a new submission is accepted once the previous one finished")
}

func TestForm_CancelledContext(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	form := contact.NewForm(notifier, contact.SimulatedSubmitter{Latency: time.Hour}, view)

	ctx, cancel := context.WithCancel(context.Background())
	future := form.Submit(ctx, validFields())
	cancel()

	outcome, err := future.AwaitWithTimeout(time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.False(t, form.Pending(), "pending is released even when the context is cancelled")
	assert.Equal(t, []bool{true, false}, view.snapshot().pending)
}

func TestForm_BlurAndInput(t *testing.T) {
	t.Parallel()

	view := newSyncView()
	form := contact.NewForm(nil, nil, view)

	res := form.Blur(contact.Field{Name: "email", Value: "bad", Required: true})
	assert.False(t, res.Valid)
	assert.Equal(t, contact.MsgInvalidEmail, view.snapshot().errors["email"])

	form.Input("email")
	assert.Empty(t, view.snapshot().errors)

	res = form.Blur(contact.Field{Name: "email", Value: "al@example.com", Required: true})
	assert.True(t, res.Valid)
	assert.Empty(t, view.snapshot().errors)
}

func TestForm_Translator(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	view := newSyncView()
	translate := func(key, fallback string) string {
		switch key {
		case contact.KeyRequired:
			return "To pole jest wymagane."
		case contact.KeyFormInvalid:
			return "Popraw formularz."
		}
		return fallback
	}

	form := contact.NewForm(notifier, &mockSubmitter{}, view, contact.WithTranslator(translate))
	outcome, _ := form.Submit(context.Background(), []contact.Field{
		{Name: "name", Value: "", Required: true},
		{Name: "email", Value: "bad", Required: true},
	}).Await()

	assert.Equal(t, contact.OutcomeInvalid, outcome)
	snap := view.snapshot()
	assert.Equal(t, "To pole jest wymagane.", snap.errors["name"])
	assert.Equal(t, contact.MsgInvalidEmail, snap.errors["email"], "untranslated keys keep the default text")
	assert.Equal(t, "Popraw formularz.", notifier.all()[0].text)
}

func TestSimulatedSubmitter(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after latency", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		err := contact.SimulatedSubmitter{Latency: 20 * time.Millisecond}.Submit(context.Background(), contact.Message{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("default latency is two seconds", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err := contact.SimulatedSubmitter{}.Submit(ctx, contact.Message{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 2*time.Second, contact.DefaultLatency)
	})
}

func TestMessageFromFields(t *testing.T) {
	t.Parallel()
	got := contact.MessageFromFields([]contact.Field{
		{Name: "name", Value: "  Al "},
		{Name: "email", Value: "al@example.com"},
		{Name: "message", Value: "Hi\n"},
		{Name: "other", Value: "ignored"},
	})
	assert.Equal(t, contact.Message{Name: "Al", Email: "al@example.com", Body: "Hi"}, got)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "invalid", contact.OutcomeInvalid.String())
	assert.Equal(t, "sent", contact.OutcomeSent.String())
	assert.Equal(t, "failed", contact.OutcomeFailed.String())
	assert.Equal(t, "busy", contact.OutcomeBusy.String())
	assert.Equal(t, "unknown", contact.Outcome(42).String())
}
