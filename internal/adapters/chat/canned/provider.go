package canned

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"ask-astro/internal/domain/chat"

	"gopkg.in/yaml.v3"
)

//go:embed responses.yaml
var defaultPool []byte

type topic struct {
	Keywords  []string `yaml:"keywords"`
	Responses []string `yaml:"responses"`
}

// Pool es el catálogo de respuestas. Se carga de YAML.
type Pool struct {
	Topics  map[string]topic `yaml:"topics"`
	Generic []string         `yaml:"generic"`
}

func ParsePool(raw []byte) (Pool, error) {
	var p Pool
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Pool{}, fmt.Errorf("canned: parse pool: %w", err)
	}
	if len(p.Generic) == 0 {
		return Pool{}, errors.New("canned: pool needs at least one generic response")
	}
	for name, t := range p.Topics {
		if len(t.Responses) == 0 {
			return Pool{}, fmt.Errorf("canned: topic %q has no responses", name)
		}
	}
	return p, nil
}

func DefaultPool() Pool {
	p, err := ParsePool(defaultPool)
	if err != nil {
		panic(err)
	}
	return p
}

// Provider simula al astrólogo: elige una respuesta al azar, con una
// demora opcional de "escribiendo...". Implementa chat.ResponseProvider.
type Provider struct {
	pool  Pool
	delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Provider)

func WithDelay(d time.Duration) Option {
	return func(p *Provider) { p.delay = d }
}

// WithSeed fija la secuencia aleatoria (tests).
func WithSeed(seed uint64) Option {
	return func(p *Provider) { p.rnd = rand.New(rand.NewPCG(seed, seed)) }
}

func NewProvider(pool Pool, opts ...Option) *Provider {
	p := &Provider{
		pool: pool,
		rnd:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Provider) Reply(ctx context.Context, in chat.Prompt) (string, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}

	candidates := p.candidates(in.Text)

	p.mu.Lock()
	reply := candidates[p.rnd.IntN(len(candidates))]
	p.mu.Unlock()

	if in.FirstName != "" && in.Sign != "" {
		reply = fmt.Sprintf("%s, as a %s: %s", in.FirstName, in.Sign, reply)
	}
	return reply, nil
}

// candidates devuelve las respuestas del primer topic cuyo keyword aparece en el texto.
// Los topics se recorren en orden alfabético para que el resultado sea estable.
func (p *Provider) candidates(text string) []string {
	text = strings.ToLower(text)

	names := make([]string, 0, len(p.pool.Topics))
	for name := range p.pool.Topics {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		t := p.pool.Topics[name]
		for _, kw := range t.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return t.Responses
			}
		}
	}
	return p.pool.Generic
}
