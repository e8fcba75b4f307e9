package canned

import (
	"context"
	"testing"
	"time"

	"ask-astro/internal/domain/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultPool(t *testing.T) {
	p := DefaultPool()
	assert.NotEmpty(t, p.Generic)
	for _, name := range []string{"love", "career", "mood", "week", "future"} {
		assert.NotEmpty(t, p.Topics[name].Responses, name)
		assert.NotEmpty(t, p.Topics[name].Keywords, name)
	}
}

func TestParsePool_Errors(t *testing.T) {
	_, err := ParsePool([]byte("generic: []"))
	assert.Error(t, err)

	_, err = ParsePool([]byte("generic: [hi]\ntopics:\n  love:\n    keywords: [love]\n"))
	assert.Error(t, err)

	_, err = ParsePool([]byte("generic: ["))
	assert.Error(t, err)
}

func TestProvider_Reply_ByTopic(t *testing.T) {
	pool := DefaultPool()
	p := NewProvider(pool, WithSeed(7))

	reply, err := p.Reply(context.Background(), chat.Prompt{UserID: "u-1", Text: "Will I get the PROMOTION?"})
	require.NoError(t, err)
	assert.Contains(t, pool.Topics["career"].Responses, reply)

	reply, err = p.Reply(context.Background(), chat.Prompt{UserID: "u-1", Text: "what is the meaning of it all"})
	require.NoError(t, err)
	assert.Contains(t, pool.Generic, reply)
}

func TestProvider_Reply_Personalized(t *testing.T) {
	pool := Pool{Generic: []string{"Trust the process."}}
	p := NewProvider(pool)

	reply, err := p.Reply(context.Background(), chat.Prompt{Text: "hi", FirstName: "Ana", Sign: "Leo"})
	require.NoError(t, err)
	assert.Equal(t, "Ana, as a Leo: Trust the process.", reply)
}

func TestProvider_Reply_SeedIsDeterministic(t *testing.T) {
	pool := DefaultPool()
	a := NewProvider(pool, WithSeed(42))
	b := NewProvider(pool, WithSeed(42))

	for i := 0; i < 5; i++ {
		ra, _ := a.Reply(context.Background(), chat.Prompt{Text: "tell me something"})
		rb, _ := b.Reply(context.Background(), chat.Prompt{Text: "tell me something"})
		assert.Equal(t, ra, rb)
	}
}

func TestProvider_Reply_DelayHonorsContext(t *testing.T) {
	p := NewProvider(DefaultPool(), WithDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Reply(ctx, chat.Prompt{Text: "hello"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestProvider_Reply_Delay(t *testing.T) {
	p := NewProvider(DefaultPool(), WithDelay(10*time.Millisecond))

	start := time.Now()
	_, err := p.Reply(context.Background(), chat.Prompt{Text: "hello"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
