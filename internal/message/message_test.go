package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("play shape of you")
	assert.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Equal(t, 1.0, tok.Confidence)
		assert.True(t, tok.IsFinal)
	}
	assert.Equal(t, []string{"play", "shape", "of", "you"}, Words(tokens))

	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   \t  "))
}

func TestTokenSequencePrefersExplicitTokens(t *testing.T) {
	msg := &Message{
		Text:   "text path",
		Tokens: []Token{{Text: "voice", Confidence: 0.7, IsFinal: true}},
	}
	assert.Equal(t, []string{"voice"}, Words(msg.TokenSequence()))

	msg = &Message{Text: "stop the music"}
	assert.Equal(t, []string{"stop", "the", "music"}, Words(msg.TokenSequence()))
}

func TestSetResponseAudioBytes(t *testing.T) {
	var r DispatchResult
	r.SetResponseAudioBytes(nil)
	assert.Empty(t, r.ResponseAudio)

	r.SetResponseAudioBytes([]byte{0x52, 0x49, 0x46, 0x46})
	assert.Equal(t, "UklGRg==", r.ResponseAudio)
}
