package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/service"
	"github.com/usherd/usher/internal/tts"
)

// stubService claims every utterance with a fixed candidate.
type stubService struct {
	name      string
	score     float64
	exclusive bool
	reply     string
	err       error
	ran       bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Evaluate(ctx context.Context, tokens []message.Token) *service.Candidate {
	if s.score < 0 {
		return nil
	}
	return &service.Candidate{
		Service:   s.name,
		Score:     s.score,
		Exclusive: s.exclusive,
		Action: func(context.Context) (string, error) {
			s.ran = true
			return s.reply, s.err
		},
	}
}

// stubSynthesizer returns canned audio.
type stubSynthesizer struct {
	err    error
	called bool
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string, opts tts.SynthesizeOpts) (*tts.SynthesizeResult, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return &tts.SynthesizeResult{Audio: []byte("RIFF....WAVE"), ContentType: "audio/wav"}, nil
}

func (s *stubSynthesizer) Close() error { return nil }

func textMessage(text string) *message.Message {
	return &message.Message{ID: "m1", Source: "test", Text: text, ResponseMode: message.ResponseModeText}
}

func TestHandleExecutesHighestScore(t *testing.T) {
	low := &stubService{name: "low", score: 0.4, reply: "low wins"}
	high := &stubService{name: "high", score: 0.9, reply: "high wins"}
	d := New([]service.Service{low, high}, nil)

	res, err := d.Handle(context.Background(), textMessage("do the thing"))
	require.NoError(t, err)

	assert.True(t, res.Handled)
	assert.Equal(t, "high", res.Service)
	assert.Equal(t, "high wins", res.ResponseText)
	assert.True(t, high.ran)
	assert.False(t, low.ran)
}

func TestHandleExclusiveOutranksScore(t *testing.T) {
	strong := &stubService{name: "strong", score: 0.95}
	exclusive := &stubService{name: "exclusive", score: 0.5, exclusive: true, reply: "mine"}
	d := New([]service.Service{strong, exclusive}, nil)

	res, err := d.Handle(context.Background(), textMessage("do the thing"))
	require.NoError(t, err)

	assert.Equal(t, "exclusive", res.Service)
	assert.True(t, res.Exclusive)
	assert.True(t, exclusive.ran)
	assert.False(t, strong.ran)
}

func TestHandleNoClaimants(t *testing.T) {
	quiet := &stubService{name: "quiet", score: -1}
	d := New([]service.Service{quiet}, nil)

	res, err := d.Handle(context.Background(), textMessage("gibberish"))
	require.NoError(t, err)

	assert.False(t, res.Handled)
	assert.Empty(t, res.Error)
	assert.Empty(t, res.ResponseText)
}

func TestHandleEmptyMessage(t *testing.T) {
	d := New(nil, nil)

	res, err := d.Handle(context.Background(), textMessage(""))
	require.NoError(t, err)

	assert.False(t, res.Handled)
	assert.NotEmpty(t, res.Error)
}

func TestHandleActionFailure(t *testing.T) {
	broken := &stubService{name: "broken", score: 1, err: errors.New("device gone")}
	d := New([]service.Service{broken}, nil)

	res, err := d.Handle(context.Background(), textMessage("do the thing"))
	require.NoError(t, err)

	assert.False(t, res.Handled)
	assert.Contains(t, res.Error, "device gone")
}

func TestHandleSynthesizesAudioResponses(t *testing.T) {
	svc := &stubService{name: "svc", score: 1, reply: "done"}
	synth := &stubSynthesizer{}
	d := New([]service.Service{svc}, synth)

	msg := textMessage("do the thing")
	msg.ResponseMode = message.ResponseModeTextAudio

	res, err := d.Handle(context.Background(), msg)
	require.NoError(t, err)

	assert.True(t, synth.called)
	assert.Equal(t, "done", res.ResponseText)
	assert.Equal(t, "audio/wav", res.ResponseContentType)
	assert.NotEmpty(t, res.ResponseAudio)
}

func TestHandleSynthesisFailureIsNotFatal(t *testing.T) {
	svc := &stubService{name: "svc", score: 1, reply: "done"}
	synth := &stubSynthesizer{err: errors.New("piper down")}
	d := New([]service.Service{svc}, synth)

	msg := textMessage("do the thing")
	msg.ResponseMode = message.ResponseModeTextAudio

	res, err := d.Handle(context.Background(), msg)
	require.NoError(t, err)

	assert.True(t, res.Handled)
	assert.Equal(t, "done", res.ResponseText)
	assert.Empty(t, res.ResponseAudio)
}

func TestHandleDefaultsResponseMode(t *testing.T) {
	svc := &stubService{name: "svc", score: 1, reply: "done"}
	synth := &stubSynthesizer{}
	d := New([]service.Service{svc}, synth)

	msg := textMessage("do the thing")
	msg.ResponseMode = ""

	res, err := d.Handle(context.Background(), msg)
	require.NoError(t, err)

	// With TTS available the default is text+audio.
	assert.Equal(t, "done", res.ResponseText)
	assert.True(t, synth.called)
}

func TestArbitrate(t *testing.T) {
	c := func(score float64, exclusive bool) *service.Candidate {
		return &service.Candidate{Score: score, Exclusive: exclusive}
	}

	assert.Nil(t, arbitrate(nil))
	assert.Nil(t, arbitrate([]*service.Candidate{nil, nil}))

	best := arbitrate([]*service.Candidate{c(0.2, false), c(0.8, false), c(0.5, false)})
	assert.Equal(t, 0.8, best.Score)

	best = arbitrate([]*service.Candidate{c(0.9, false), c(0.1, true)})
	assert.True(t, best.Exclusive)

	// First claimant wins ties.
	first := c(0.5, false)
	assert.Same(t, first, arbitrate([]*service.Candidate{first, c(0.5, false)}))
}
