package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okitolabs/demopass/internal/web/domain"
	"github.com/okitolabs/demopass/internal/web/store"
	"github.com/okitolabs/demopass/pkg/cryptox"
	"github.com/okitolabs/demopass/pkg/idx"
	"github.com/okitolabs/demopass/pkg/passgen"
	"github.com/okitolabs/demopass/pkg/slogx"
)

// Defaults and bounds for credential generation requests.
const (
	DefaultMaxLength = 128
	MaxBatchCount    = 50
)

var (
	ErrInvalidLength = errors.New("invalid_length")
	ErrInvalidCount  = errors.New("invalid_count")
)

// GenerateParams describes one generation request.
type GenerateParams struct {
	Length    int
	Count     int    // defaults to 1
	Hash      bool   // also return an Argon2id PHC hash per credential
	Source    string // domain.SourceAPI or domain.SourceCLI
	RequestID string // empty outside HTTP
}

// GeneratedCredential pairs a credential with its optional hash.
type GeneratedCredential struct {
	Value string
	Hash  string
}

// GeneratorService wraps the core generator with request validation, optional
// hashing and audit recording. The audit log stores metadata only.
type GeneratorService struct {
	Store     store.Store
	MaxLength int // 0 means DefaultMaxLength
}

// Generate validates params, produces Count credentials and records one audit
// event per credential. Audit failures are logged but do not fail the
// generation; the caller already holds a valid credential at that point.
func (s *GeneratorService) Generate(ctx context.Context, params GenerateParams) ([]GeneratedCredential, error) {
	maxLength := s.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	if params.Length < passgen.MinLength || params.Length > maxLength {
		return nil, ErrInvalidLength
	}

	count := params.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxBatchCount {
		return nil, ErrInvalidCount
	}

	log := slogx.FromContext(ctx)

	creds := make([]GeneratedCredential, 0, count)
	for range count {
		value, err := passgen.Generate(params.Length)
		if err != nil {
			// Length was validated above, so this is a random source failure.
			return nil, fmt.Errorf("credential generation failed: %w", err)
		}

		cred := GeneratedCredential{Value: value}
		if params.Hash {
			hash, err := cryptox.HashCredential(value)
			if err != nil {
				return nil, fmt.Errorf("credential hashing failed: %w", err)
			}
			cred.Hash = hash
		}
		creds = append(creds, cred)

		if s.Store == nil {
			continue
		}
		ev := domain.GenerationEvent{
			ID:        idx.New().String(),
			Length:    params.Length,
			Hashed:    params.Hash,
			Source:    params.Source,
			RequestID: params.RequestID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Store.GenerationEvents().Insert(ctx, ev); err != nil {
			log.Warn("failed to record generation event", "err", err)
		}
	}

	return creds, nil
}
