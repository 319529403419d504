package eventbus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe("audit.invocation")

	bus.Publish("audit.invocation", "payload-1")

	select {
	case evt := <-ch:
		if evt.Topic != "audit.invocation" || evt.Payload != "payload-1" {
			t.Errorf("event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	bus := New()
	bus.Publish("nobody.listening", 42) // must not panic or block
}

func TestPublish_TopicsAreIsolated(t *testing.T) {
	bus := New()
	audit := bus.Subscribe("audit.invocation")
	other := bus.Subscribe("other.topic")

	bus.Publish("audit.invocation", "x")

	select {
	case <-audit:
	case <-time.After(time.Second):
		t.Fatal("subscriber on the published topic got nothing")
	}
	select {
	case evt := <-other:
		t.Errorf("unrelated topic received %+v", evt)
	default:
	}
}

func TestPublish_FullBufferDropsNotBlocks(t *testing.T) {
	bus := New()
	bus.Subscribe("audit.invocation") // never consumed

	done := make(chan struct{})
	go func() {
		for i := 0; i < defaultBufferSize*2; i++ {
			bus.Publish("audit.invocation", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}
}

func TestSubscribe_MultipleFanOut(t *testing.T) {
	bus := New()
	a := bus.Subscribe("audit.invocation")
	b := bus.Subscribe("audit.invocation")

	bus.Publish("audit.invocation", "fan-out")

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case evt := <-ch:
			if evt.Payload != "fan-out" {
				t.Errorf("%s: payload = %v", name, evt.Payload)
			}
		case <-time.After(time.Second):
			t.Fatalf("%s: event not delivered", name)
		}
	}
}
