package notify

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	applied := &ConditionApplied{ActorName: "Valeros", Label: "Frightened 2", Description: "-X penalty."}
	assert.Equal(t, "Valeros: Frightened 2\n-X penalty.", applied.Message())

	removed := &ConditionRemoved{ActorName: "Valeros", Name: "Frightened"}
	assert.Equal(t, "Valeros: Frightened removed", removed.Message())

	decremented := &ConditionDecremented{ActorName: "Valeros", Label: "Frightened 1"}
	assert.Equal(t, "Valeros: Frightened 1 (end of turn)", decremented.Message())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.Notify(&ConditionApplied{ActorName: "Seelah", Label: "Clumsy 1", Description: "-X to DEX."})

	assert.Equal(t, "[ConditionApplied] Seelah: Clumsy 1 | -X to DEX.\n", buf.String())
}

func TestFanoutAndRecorder(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	var calls int
	fan := Fanout{first, second, SinkFunc(func(Event) { calls++ }), Discard}

	fan.Notify(&ConditionRemoved{Name: "Slowed"})
	fan.Notify(&ConditionApplied{Label: "Slowed 1"})

	assert.Equal(t, []EventType{EventConditionRemoved, EventConditionApplied}, first.Types())
	assert.Len(t, second.Events, 2)
	assert.Equal(t, 2, calls)

	first.Reset()
	assert.Empty(t, first.Events)
}
