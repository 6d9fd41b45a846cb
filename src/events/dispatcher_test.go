package events_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designpatterns/src/events"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Handle(e events.Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Category)+":"+e.Payload)
}

type panicker struct{}

func (p *panicker) Handle(events.Event) { panic("boom") }

func TestPublishOrderAndUnsubscribe(t *testing.T) {
	var calls []string
	l1 := &recorder{name: "L1", log: &calls}
	l2 := &recorder{name: "L2", log: &calls}
	l3 := &recorder{name: "L3", log: &calls}

	d := events.NewDispatcher("k")
	d.Subscribe("k", l1).Subscribe("k", l2).Subscribe("k", l3)
	d.Publish("k", "x")
	assert.Equal(t, []string{"L1:k:x", "L2:k:x", "L3:k:x"}, calls)

	calls = nil
	d.Unsubscribe("k", l2)
	d.Publish("k", "y")
	assert.Equal(t, []string{"L1:k:y", "L3:k:y"}, calls)
}

func TestFileEventScenario(t *testing.T) {
	var calls []string
	a := &recorder{name: "A", log: &calls}
	b := &recorder{name: "B", log: &calls}

	d := events.NewDispatcher(events.CategoryOpen, events.CategorySave, events.CategoryModify)
	d.Subscribe(events.CategoryOpen, a).
		Subscribe(events.CategoryModify, a).
		Subscribe(events.CategoryModify, b)

	d.Publish(events.CategoryOpen, "opened")
	assert.Equal(t, []string{"A:open:opened"}, calls)

	calls = nil
	d.Publish(events.CategoryModify, "changed")
	assert.Equal(t, []string{"A:modify:changed", "B:modify:changed"}, calls)
}

func TestUnknownCategoryIsNoop(t *testing.T) {
	var calls []string
	l := &recorder{name: "L", log: &calls}
	d := events.NewDispatcher(events.CategoryOpen)

	assert.NotPanics(t, func() {
		d.Subscribe("missing", l).Unsubscribe("missing", l)
		d.Publish("missing", "nothing")
	})
	assert.Empty(t, calls)
	assert.False(t, d.Known("missing"))
	assert.Zero(t, d.Subscribers("missing"))
	assert.Equal(t, []events.Category{events.CategoryOpen}, d.Categories())
}

func TestDuplicateSubscriptionsDeliverTwice(t *testing.T) {
	var calls []string
	l := &recorder{name: "L", log: &calls}
	d := events.NewDispatcher("k")
	d.Subscribe("k", l).Subscribe("k", l)
	d.Publish("k", "p")
	assert.Len(t, calls, 2)

	d.Unsubscribe("k", l)
	assert.Equal(t, 1, d.Subscribers("k"))
	calls = nil
	d.Publish("k", "p")
	assert.Len(t, calls, 1)
}

func TestUnsubscribeAbsentListener(t *testing.T) {
	var calls []string
	l := &recorder{name: "L", log: &calls}
	other := &recorder{name: "O", log: &calls}
	d := events.NewDispatcher("k")
	d.Subscribe("k", l)
	d.Unsubscribe("k", other)
	assert.Equal(t, 1, d.Subscribers("k"))
}

func TestPanickingListenerIsIsolated(t *testing.T) {
	var calls []string
	var logs bytes.Buffer
	after := &recorder{name: "after", log: &calls}

	d := events.NewDispatcher("k")
	d.SetLogger(zerolog.New(&logs))
	d.Subscribe("k", &panicker{}).Subscribe("k", after)

	require.NotPanics(t, func() { d.Publish("k", "p") })
	assert.Equal(t, []string{"after:k:p"}, calls)
	assert.Contains(t, logs.String(), "listener panicked")
}

func TestListenerMayUnsubscribeDuringPublish(t *testing.T) {
	d := events.NewDispatcher("k")
	var calls []string
	tail := &recorder{name: "tail", log: &calls}
	self := &selfRemover{d: d}
	d.Subscribe("k", self).Subscribe("k", tail)

	d.Publish("k", "first")
	d.Publish("k", "second")
	assert.Equal(t, 1, self.count)
	assert.Equal(t, []string{"tail:k:first", "tail:k:second"}, calls)
}

type selfRemover struct {
	d     *events.Dispatcher
	count int
}

func (s *selfRemover) Handle(e events.Event) {
	s.count++
	s.d.Unsubscribe(e.Category, s)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, events.Demo(&out))
	text := out.String()

	assert.Equal(t, 2, strings.Count(text, "Email Listener received"))
	assert.Equal(t, 1, strings.Count(text, "Push Notifications Listener received"))
	assert.Equal(t, 3, strings.Count(text, "Logger Listener received"))
	assert.True(t, strings.HasPrefix(text, "Email Listener received an event:\n    Type:   open \n    Value:  File opened \n\n"))
}

type sliceListener struct {
	tags []string
	log  *[]string
}

func (s sliceListener) Handle(e events.Event) {
	*s.log = append(*s.log, "slice:"+e.Payload)
}

func TestUnsubscribeUncomparableListener(t *testing.T) {
	var calls []string
	d := events.NewDispatcher("k")
	values := sliceListener{tags: []string{"a"}, log: &calls}
	fn := events.ListenerFunc(func(e events.Event) { calls = append(calls, "fn:"+e.Payload) })
	tail := &recorder{name: "tail", log: &calls}
	d.Subscribe("k", values).Subscribe("k", fn).Subscribe("k", tail)

	d.Publish("k", "x")
	assert.Equal(t, []string{"slice:x", "fn:x", "tail:k:x"}, calls)

	require.NotPanics(t, func() {
		d.Unsubscribe("k", values)
		d.Unsubscribe("k", fn)
	})
	assert.Equal(t, 3, d.Subscribers("k"))

	require.NotPanics(t, func() { d.Unsubscribe("k", tail) })
	assert.Equal(t, 2, d.Subscribers("k"))

	calls = nil
	d.Publish("k", "y")
	assert.Equal(t, []string{"slice:y", "fn:y"}, calls)
}
