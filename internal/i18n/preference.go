package i18n

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/clbp/clbp/internal/logging"
	"github.com/clbp/clbp/internal/store"
)

// ChangedTopic carries the new language code each time the preference changes.
const ChangedTopic = "language.changed"

// Preference is the persisted display language. Changes are written to the
// KV store under store.LanguageKey and broadcast to subscribers.
type Preference struct {
	kv     store.KV
	pubsub *gochannel.GoChannel

	mu      sync.RWMutex
	current Language
	stored  bool
}

// NewPreference loads the stored language. A missing or unreadable value
// falls back to fallback.
func NewPreference(ctx context.Context, kv store.KV, fallback Language) *Preference {
	p := &Preference{
		kv: kv,
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 4,
		}, logging.Watermill(log.Logger)),
		current: fallback,
	}
	if fallback == "" {
		p.current = Default
	}

	raw, ok, err := kv.Get(ctx, store.LanguageKey)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("component", "i18n").Msg("read language preference")
	case ok:
		if l, err := ParseLanguage(string(raw)); err == nil {
			p.current = l
			p.stored = true
		} else {
			log.Debug().Str("component", "i18n").Str("value", string(raw)).Msg("ignoring stored language")
		}
	}
	return p
}

// Stored reports whether a language has ever been chosen, as opposed to
// running on the fallback.
func (p *Preference) Stored() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stored
}

// Current returns the active language.
func (p *Preference) Current() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set persists lang and notifies subscribers. Setting the current language
// again still persists it but publishes nothing.
func (p *Preference) Set(ctx context.Context, lang Language) error {
	lang, err := ParseLanguage(string(lang))
	if err != nil {
		return err
	}
	if err := p.kv.Put(ctx, store.LanguageKey, []byte(lang)); err != nil {
		return errors.Wrap(err, "save language")
	}

	p.mu.Lock()
	changed := p.current != lang
	p.current = lang
	p.stored = true
	p.mu.Unlock()

	if !changed {
		return nil
	}
	msg := message.NewMessage(watermill.NewUUID(), message.Payload(lang))
	return errors.Wrap(p.pubsub.Publish(ChangedTopic, msg), "publish language change")
}

// Toggle switches between English and Persian.
func (p *Preference) Toggle(ctx context.Context) (Language, error) {
	next := p.Current().Other()
	if err := p.Set(ctx, next); err != nil {
		return p.Current(), err
	}
	return next, nil
}

// Subscribe returns a channel of language changes. The channel closes when
// ctx is done or the preference is closed.
func (p *Preference) Subscribe(ctx context.Context) (<-chan Language, error) {
	msgs, err := p.pubsub.Subscribe(ctx, ChangedTopic)
	if err != nil {
		return nil, errors.Wrap(err, "subscribe to language changes")
	}

	out := make(chan Language, 1)
	go func() {
		defer close(out)
		for msg := range msgs {
			lang := Parse(string(msg.Payload))
			msg.Ack()
			select {
			case out <- lang:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close stops delivery to all subscribers.
func (p *Preference) Close() error {
	return p.pubsub.Close()
}
